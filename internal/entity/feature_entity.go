// FILE: internal/entity/feature_entity.go
// Domain entity for feature requests on the board
package entity

import (
	"fmt"
	"strings"
)

type FeatureStatus string

const (
	FeatureStatusOpen      FeatureStatus = "Open"
	FeatureStatusPlanned   FeatureStatus = "Planned"
	FeatureStatusCompleted FeatureStatus = "Completed"
)

// FeatureStatuses lists every status in display order
var FeatureStatuses = []FeatureStatus{
	FeatureStatusOpen,
	FeatureStatusPlanned,
	FeatureStatusCompleted,
}

func (s FeatureStatus) IsValid() bool {
	switch s {
	case FeatureStatusOpen, FeatureStatusPlanned, FeatureStatusCompleted:
		return true
	}
	return false
}

func (s FeatureStatus) String() string {
	return string(s)
}

// ParseFeatureStatus matches a status name case-insensitively and returns its canonical form.
func ParseFeatureStatus(raw string) (FeatureStatus, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range FeatureStatuses {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown feature status %q", raw)
}

// Feature is a user-submitted request. Id and Seq are owned by the store.
type Feature struct {
	Id          string
	Title       string
	Description string
	Status      FeatureStatus
	Votes       int
	Seq         uint64 // Insertion order, newest has the highest value
}
