// FILE: pkg/board/filter.go
// PURPOSE: Status filter for the feature list

package board

import (
	"fmt"
	"strings"

	"feature-feedback-board/internal/entity"
)

const filterAllName = "all"

// Filter is either "show all" or "show exactly one status". The zero value shows all.
type Filter struct {
	status entity.FeatureStatus
	only   bool
}

func ShowAll() Filter {
	return Filter{}
}

func OnlyStatus(status entity.FeatureStatus) Filter {
	return Filter{status: status, only: true}
}

// ParseFilter accepts "all" or a status name, both case-insensitive.
func ParseFilter(raw string) (Filter, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, filterAllName) {
		return ShowAll(), nil
	}
	status, err := entity.ParseFeatureStatus(trimmed)
	if err != nil {
		return Filter{}, fmt.Errorf("invalid filter: %w", err)
	}
	return OnlyStatus(status), nil
}

func (f Filter) IsAll() bool {
	return !f.only
}

// Status returns the status being filtered on, ok is false for "show all".
func (f Filter) Status() (status entity.FeatureStatus, ok bool) {
	return f.status, f.only
}

func (f Filter) Matches(feature entity.Feature) bool {
	return !f.only || feature.Status == f.status
}

func (f Filter) String() string {
	if !f.only {
		return filterAllName
	}
	return f.status.String()
}
