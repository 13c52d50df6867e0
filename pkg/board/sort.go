// FILE: pkg/board/sort.go
// PURPOSE: Sort orders and comparators for the feature list

package board

import (
	"cmp"
	"fmt"
	"strings"

	"feature-feedback-board/internal/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortVotesDesc SortOrder = "votes-desc"
	SortVotesAsc  SortOrder = "votes-asc"
	SortRecency   SortOrder = "recency" // newest first
	SortOldest    SortOrder = "oldest"
	SortTitle     SortOrder = "title"
)

var SortOrders = []SortOrder{SortVotesDesc, SortVotesAsc, SortRecency, SortOldest, SortTitle}

var sortAliases = map[string]SortOrder{
	"votes":  SortVotesDesc,
	"newest": SortRecency,
	"recent": SortRecency,
}

func ParseSortOrder(raw string) (SortOrder, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for _, o := range SortOrders {
		if key == string(o) {
			return o, nil
		}
	}
	if o, ok := sortAliases[key]; ok {
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q", raw)
}

func (o SortOrder) String() string {
	return string(o)
}

// newTitleCollator orders titles the way a browser's localeCompare does for English.
// Collators keep internal buffers, so every projection builds its own.
func newTitleCollator() *collate.Collator {
	return collate.New(language.English)
}

// comparator returns the ordering for o, or nil when o keeps insertion order.
func comparator(o SortOrder) func(a, b entity.Feature) int {
	titles := newTitleCollator()
	byTitle := func(a, b entity.Feature) int {
		return titles.CompareString(a.Title, b.Title)
	}

	switch o {
	case SortVotesDesc:
		return func(a, b entity.Feature) int {
			if c := cmp.Compare(b.Votes, a.Votes); c != 0 {
				return c
			}
			return byTitle(a, b)
		}
	case SortVotesAsc:
		return func(a, b entity.Feature) int {
			if c := cmp.Compare(a.Votes, b.Votes); c != 0 {
				return c
			}
			return byTitle(a, b)
		}
	case SortRecency:
		return func(a, b entity.Feature) int {
			return cmp.Compare(b.Seq, a.Seq)
		}
	case SortOldest:
		return func(a, b entity.Feature) int {
			return cmp.Compare(a.Seq, b.Seq)
		}
	case SortTitle:
		return byTitle
	}
	return nil
}
