// FILE: pkg/board/selection.go
// PURPOSE: Which feature the detail view is showing

package board

import "feature-feedback-board/internal/entity"

// Selection holds only a feature id, never the feature, so Resolve always
// reflects the latest votes and status.
type Selection struct {
	id  string
	set bool
}

// Select does not check that id exists; the store changes independently.
func (s *Selection) Select(id string) {
	s.id = id
	s.set = true
}

func (s *Selection) Clear() {
	s.id = ""
	s.set = false
}

func (s *Selection) Id() (string, bool) {
	return s.id, s.set
}

// Resolve looks the selected id up in features. A dangling id resolves to nothing.
func (s *Selection) Resolve(features []entity.Feature) (entity.Feature, bool) {
	if !s.set {
		return entity.Feature{}, false
	}
	for _, f := range features {
		if f.Id == s.id {
			return f, true
		}
	}
	return entity.Feature{}, false
}
