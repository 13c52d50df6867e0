package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("f")
	assert.Equal(t, "f1", g.NewId())
	assert.Equal(t, "f2", g.NewId())
	assert.Equal(t, "f3", g.NewId())
}

func TestUUIDGeneratorUnique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.NewId()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFromStrategy(t *testing.T) {
	tests := []struct {
		strategy string
		wantType Generator
		wantErr  bool
	}{
		{"", &UUIDGenerator{}, false},
		{"uuid", &UUIDGenerator{}, false},
		{"Sequence", &SequenceGenerator{}, false},
		{"clock", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			g, err := FromStrategy(tt.strategy)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, g)
		})
	}
}
