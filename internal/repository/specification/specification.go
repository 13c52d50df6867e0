package specification

import "feature-feedback-board/internal/entity"

// Specification is a predicate over stored features
type Specification interface {
	IsSatisfiedBy(feature entity.Feature) bool
}

// SatisfiesAll reports whether feature matches every spec. No specs matches everything.
func SatisfiesAll(feature entity.Feature, specs ...Specification) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(feature) {
			return false
		}
	}
	return true
}
