// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature entity <-> dto conversion
package mapper

import (
	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToResponse(feature entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:          feature.Id,
		Title:       feature.Title,
		Description: feature.Description,
		Status:      feature.Status,
		Votes:       feature.Votes,
	}
}

func (m *FeatureMapper) ToResponses(features []entity.Feature) []*dto.FeatureResponse {
	responses := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		responses = append(responses, m.ToResponse(f))
	}
	return responses
}
