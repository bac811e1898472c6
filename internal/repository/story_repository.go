package repository

import (
	"context"
	"time"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
)

// StoryRepository defines persistence for travel stories. All single-record
// operations take both the story id and the owner id; an id that exists but
// belongs to another owner behaves exactly like a missing one
// (models.ErrNotFound), so callers can never probe for foreign records.
//
// Multi-record reads return favourites first; ties are broken by creation
// time, newest first.
type StoryRepository interface {
	Create(ctx context.Context, story *models.TravelStory) error
	GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.TravelStory, error)
	Replace(ctx context.Context, story *models.TravelStory) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error)
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error)
	ListByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*models.TravelStory, error)
}
