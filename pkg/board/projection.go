// FILE: pkg/board/projection.go
// PURPOSE: Filtered and sorted view of the feature collection

package board

import (
	"slices"

	"feature-feedback-board/internal/entity"
)

// Project filters and sorts features into a new slice. The input is never modified,
// the sort is stable, and an empty result is an empty (non-nil) slice.
// An unknown sort order keeps the filtered input order.
func Project(features []entity.Feature, filter Filter, order SortOrder) []entity.Feature {
	out := make([]entity.Feature, 0, len(features))
	for _, f := range features {
		if filter.Matches(f) {
			out = append(out, f)
		}
	}

	if compare := comparator(order); compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Projection is a projected list plus the counts a list view uses for its
// "Showing N of M" line and its empty states.
type Projection struct {
	Items   []entity.Feature
	Filter  Filter
	Sort    SortOrder
	Total   int
	Matched int
}

func Summarize(features []entity.Feature, filter Filter, order SortOrder) Projection {
	items := Project(features, filter, order)
	return Projection{
		Items:   items,
		Filter:  filter,
		Sort:    order,
		Total:   len(features),
		Matched: len(items),
	}
}

// BoardEmpty is true when no features exist at all.
func (p Projection) BoardEmpty() bool {
	return p.Total == 0
}

// FilteredOut is true when features exist but none pass the filter.
func (p Projection) FilteredOut() bool {
	return p.Total > 0 && p.Matched == 0
}
