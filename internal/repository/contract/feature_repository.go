// FILE: internal/repository/contract/feature_repository.go
// Store interface for the feature board
package contract

import (
	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"
	"feature-feedback-board/internal/repository/specification"
)

// FeatureStore is the single source of truth for the feature collection.
// Vote and SetStatus report whether a record was found; a miss is not an error.
type FeatureStore interface {
	Create(req dto.CreateFeatureRequest) (entity.Feature, error)
	Import(reqs []dto.ImportFeatureRequest) ([]entity.Feature, error)
	Vote(id string) bool
	SetStatus(id string, status entity.FeatureStatus) bool
	All() []entity.Feature
	FindOne(specs ...specification.Specification) (entity.Feature, bool)
	FindAll(specs ...specification.Specification) []entity.Feature
	Count() int
	Revision() uint64
}
