package mocks

import (
	"context"
	"time"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock StoryRepository
type StoryRepository struct {
	mock.Mock
}

func (m *StoryRepository) Create(ctx context.Context, story *models.TravelStory) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *StoryRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.TravelStory, error) {
	args := m.Called(ctx, id, ownerID)
	story, _ := args.Get(0).(*models.TravelStory)
	return story, args.Error(1)
}

func (m *StoryRepository) Replace(ctx context.Context, story *models.TravelStory) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *StoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *StoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}

func (m *StoryRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, query)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}

func (m *StoryRepository) ListByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, start, end)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}
