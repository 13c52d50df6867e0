package specification

import "feature-feedback-board/internal/entity"

// ByID filters by feature Id
type ByID struct {
	ID string
}

func (s ByID) IsSatisfiedBy(feature entity.Feature) bool {
	return feature.Id == s.ID
}

// ByStatus filters by status
type ByStatus struct {
	Status entity.FeatureStatus
}

func (s ByStatus) IsSatisfiedBy(feature entity.Feature) bool {
	return feature.Status == s.Status
}

// MinVotes keeps features with at least Votes votes
type MinVotes struct {
	Votes int
}

func (s MinVotes) IsSatisfiedBy(feature entity.Feature) bool {
	return feature.Votes >= s.Votes
}
