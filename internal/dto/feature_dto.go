// FILE: internal/dto/feature_dto.go
// DTOs for the feature board
package dto

import "feature-feedback-board/internal/entity"

// --- Submission DTOs ---

// CreateFeatureRequest is the validated payload handed to the store
type CreateFeatureRequest struct {
	Title       string               `json:"title" validate:"required,min=3,max=100"`
	Description string               `json:"description" validate:"required,min=10,max=500"`
	Status      entity.FeatureStatus `json:"status" validate:"required,oneof=Open Planned Completed"`
}

// ImportFeatureRequest carries a fixture record, votes included
type ImportFeatureRequest struct {
	CreateFeatureRequest
	Votes int `json:"votes" validate:"gte=0"`
}

type SetStatusRequest struct {
	Id     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// --- Response DTOs ---

type FeatureResponse struct {
	Id          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      entity.FeatureStatus `json:"status"`
	Votes       int                  `json:"votes"`
}

// FeatureListResponse is the current projection plus the counts a list view needs
// to tell "board is empty" apart from "nothing matches the filter".
type FeatureListResponse struct {
	Features []*FeatureResponse `json:"features"`
	Filter   string             `json:"filter"`
	Sort     string             `json:"sort"`
	Total    int                `json:"total"`
	Matched  int                `json:"matched"`
}

func (r *FeatureListResponse) IsBoardEmpty() bool {
	return r.Total == 0
}

func (r *FeatureListResponse) IsFilteredOut() bool {
	return r.Total > 0 && r.Matched == 0
}
