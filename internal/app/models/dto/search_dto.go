package dto

import "github.com/rbvitales/yearbook-api/internal/app/models"

// UnifiedSearchResponse returns the two result collections of the unified
// search. Albums and students are independently ordered and never
// interleaved or ranked against each other.
type UnifiedSearchResponse struct {
	Query    string           `json:"query"`
	Albums   []models.Album   `json:"albums"`
	Students []models.Student `json:"students"`
}
