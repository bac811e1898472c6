package mocks

import (
	"context"

	"travel-journal-server/internal/models"
	"travel-journal-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock StoryService
type StoryService struct {
	mock.Mock
}

func (m *StoryService) Create(ctx context.Context, ownerID uuid.UUID, in service.CreateStoryInput) (*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, in)
	story, _ := args.Get(0).(*models.TravelStory)
	return story, args.Error(1)
}

func (m *StoryService) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, in service.UpdateStoryInput) (*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, id, in)
	story, _ := args.Get(0).(*models.TravelStory)
	return story, args.Error(1)
}

func (m *StoryService) SetFavourite(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, favourite bool) (*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, id, favourite)
	story, _ := args.Get(0).(*models.TravelStory)
	return story, args.Error(1)
}

func (m *StoryService) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *StoryService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}

func (m *StoryService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, query)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}

func (m *StoryService) FilterByDateRange(ctx context.Context, ownerID uuid.UUID, startMillis, endMillis int64) ([]*models.TravelStory, error) {
	args := m.Called(ctx, ownerID, startMillis, endMillis)
	stories, _ := args.Get(0).([]*models.TravelStory)
	return stories, args.Error(1)
}
