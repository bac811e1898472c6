package service

import (
	"fmt"

	"travel-journal-server/internal/models"
)

// Validation errors raised before any storage call. All of them wrap
// models.ErrInvalidInput so the handler layer maps them to one status.
var (
	ErrMissingFields      = fmt.Errorf("%w: all fields are required", models.ErrInvalidInput)
	ErrMissingSearchQuery = fmt.Errorf("%w: search query is required", models.ErrInvalidInput)
	ErrMissingDateBounds  = fmt.Errorf("%w: start and end dates are required", models.ErrInvalidInput)
)
