package services

import (
	"context"
	"errors"

	"easytax-service/internal/models"
)

// RecommendationProvider supplies the narrative layer for generated reports.
// Implementations must be fail-soft: they return fallback text instead of an
// error, with the bool reporting whether the static fallback was used.
type RecommendationProvider interface {
	ITRRecommendations(ctx context.Context, profile models.TaxProfile, report *models.ITRReport) (string, bool)
	GSTRecommendations(ctx context.Context, profile models.GSTProfile, report *models.GSTReport) (string, bool)
}

// Input validation errors surfaced before any computation
var (
	ErrMissingName         = errors.New("legal name is required")
	ErrMissingBusinessName = errors.New("business name is required")
	ErrInvalidGSTIN        = errors.New("GSTIN is malformed")
)
