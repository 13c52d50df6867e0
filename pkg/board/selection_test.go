package board

import (
	"testing"

	"feature-feedback-board/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	features := sampleBoard()
	var sel Selection

	_, ok := sel.Resolve(features)
	assert.False(t, ok, "zero selection resolves to nothing")

	sel.Select("f3")
	got, ok := sel.Resolve(features)
	assert.True(t, ok)
	assert.Equal(t, "Mobile responsive layout", got.Title)

	id, set := sel.Id()
	assert.True(t, set)
	assert.Equal(t, "f3", id)

	sel.Clear()
	_, ok = sel.Resolve(features)
	assert.False(t, ok)
	_, set = sel.Id()
	assert.False(t, set)
}

func TestSelectionDanglingId(t *testing.T) {
	var sel Selection
	sel.Select("missing")

	_, ok := sel.Resolve(sampleBoard())
	assert.False(t, ok)

	id, set := sel.Id()
	assert.True(t, set, "select never checks existence")
	assert.Equal(t, "missing", id)
}

func TestSelectionReflectsUpdates(t *testing.T) {
	features := sampleBoard()
	var sel Selection
	sel.Select("f2")

	features[1].Votes++
	features[1].Status = entity.FeatureStatusPlanned

	got, ok := sel.Resolve(features)
	assert.True(t, ok)
	assert.Equal(t, 16, got.Votes)
	assert.Equal(t, entity.FeatureStatusPlanned, got.Status)
}
