package service

import (
	"context"
	"time"

	"travel-journal-server/internal/imagestore"
	"travel-journal-server/internal/models"
	"travel-journal-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateStoryInput carries the caller-supplied fields for a new story.
// VisitedDateMillis is epoch milliseconds, converted to a date on create.
type CreateStoryInput struct {
	Title             string
	Story             string
	VisitedLocations  []string
	ImageURL          string
	VisitedDateMillis int64
}

// UpdateStoryInput carries the replacement fields for an edit. Unlike
// create, ImageURL is optional: empty or equal to the placeholder keeps the
// currently stored image reference.
type UpdateStoryInput struct {
	Title             string
	Story             string
	VisitedLocations  []string
	ImageURL          string
	VisitedDateMillis int64
}

// StoryService is the story lifecycle and query surface. Every operation is
// scoped to the authenticated owner; a story id belonging to another user is
// indistinguishable from a missing one.
type StoryService interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateStoryInput) (*models.TravelStory, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, in UpdateStoryInput) (*models.TravelStory, error)
	SetFavourite(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, favourite bool) (*models.TravelStory, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error)
	FilterByDateRange(ctx context.Context, ownerID uuid.UUID, startMillis, endMillis int64) ([]*models.TravelStory, error)
}

type storyServiceImpl struct {
	storyRepo repository.StoryRepository
	images    imagestore.Store
	logger    *zap.Logger
}

// NewStoryService creates a new instance of StoryService.
func NewStoryService(storyRepo repository.StoryRepository, images imagestore.Store, logger *zap.Logger) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		images:    images,
		logger:    logger.Named("StoryService"),
	}
}

func (s *storyServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateStoryInput) (*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String()), zap.String("title", in.Title)}
	s.logger.Info("Creating travel story", logFields...)

	if in.Title == "" || in.Story == "" || in.ImageURL == "" || in.VisitedDateMillis <= 0 {
		s.logger.Warn("Missing required fields on create", logFields...)
		return nil, ErrMissingFields
	}

	locations := in.VisitedLocations
	if locations == nil {
		locations = []string{}
	}

	story := &models.TravelStory{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            in.Title,
		Story:            in.Story,
		VisitedLocations: locations,
		ImageURL:         in.ImageURL,
		VisitedDate:      time.UnixMilli(in.VisitedDateMillis).UTC(),
		IsFavourite:      false,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		s.logger.Error("Failed to create travel story in repository", append(logFields, zap.Error(err))...)
		return nil, err
	}

	s.logger.Info("Travel story created", append(logFields, zap.String("storyID", story.ID.String()))...)
	return story, nil
}

func (s *storyServiceImpl) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, in UpdateStoryInput) (*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String()), zap.String("storyID", id.String())}
	s.logger.Info("Updating travel story", logFields...)

	// ImageURL is intentionally absent from this check: an edit may omit it
	// to keep the current image.
	if in.Title == "" || in.Story == "" || in.VisitedDateMillis <= 0 {
		s.logger.Warn("Missing required fields on update", logFields...)
		return nil, ErrMissingFields
	}

	story, err := s.storyRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		s.logger.Warn("Travel story not found for update", append(logFields, zap.Error(err))...)
		return nil, err
	}

	locations := in.VisitedLocations
	if locations == nil {
		locations = []string{}
	}

	story.Title = in.Title
	story.Story = in.Story
	story.VisitedLocations = locations
	story.VisitedDate = time.UnixMilli(in.VisitedDateMillis).UTC()
	// The placeholder reference means "no new image picked"; overwriting a
	// real image with it would lose the upload.
	if in.ImageURL != "" && in.ImageURL != s.images.PlaceholderURL() {
		story.ImageURL = in.ImageURL
	}

	if err := s.storyRepo.Replace(ctx, story); err != nil {
		s.logger.Error("Failed to replace travel story in repository", append(logFields, zap.Error(err))...)
		return nil, err
	}

	s.logger.Info("Travel story updated", logFields...)
	return story, nil
}

func (s *storyServiceImpl) SetFavourite(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, favourite bool) (*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String()), zap.String("storyID", id.String()), zap.Bool("favourite", favourite)}
	s.logger.Info("Setting favourite flag", logFields...)

	story, err := s.storyRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		s.logger.Warn("Travel story not found for favourite toggle", append(logFields, zap.Error(err))...)
		return nil, err
	}

	story.IsFavourite = favourite
	if err := s.storyRepo.Replace(ctx, story); err != nil {
		s.logger.Error("Failed to persist favourite flag", append(logFields, zap.Error(err))...)
		return nil, err
	}

	s.logger.Info("Favourite flag updated", logFields...)
	return story, nil
}

func (s *storyServiceImpl) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String()), zap.String("storyID", id.String())}
	s.logger.Info("Deleting travel story", logFields...)

	story, err := s.storyRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		s.logger.Warn("Travel story not found for delete", append(logFields, zap.Error(err))...)
		return err
	}

	if err := s.storyRepo.Delete(ctx, id, ownerID); err != nil {
		s.logger.Error("Failed to delete travel story in repository", append(logFields, zap.Error(err))...)
		return err
	}

	// Best-effort cleanup of the image file. The record deletion is the
	// durable outcome; a failed unlink is logged and never surfaced.
	if err := s.images.Remove(ctx, story.ImageURL); err != nil {
		s.logger.Warn("Failed to remove story image during delete",
			append(logFields, zap.String("imageURL", story.ImageURL), zap.Error(err))...)
	}

	s.logger.Info("Travel story deleted", logFields...)
	return nil
}

func (s *storyServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error) {
	s.logger.Debug("Listing travel stories", zap.String("ownerID", ownerID.String()))
	return s.storyRepo.ListByOwner(ctx, ownerID)
}

func (s *storyServiceImpl) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String()), zap.String("query", query)}
	s.logger.Debug("Searching travel stories", logFields...)

	if query == "" {
		s.logger.Warn("Empty search query", logFields...)
		return nil, ErrMissingSearchQuery
	}

	return s.storyRepo.SearchByOwner(ctx, ownerID, query)
}

func (s *storyServiceImpl) FilterByDateRange(ctx context.Context, ownerID uuid.UUID, startMillis, endMillis int64) ([]*models.TravelStory, error) {
	logFields := []zap.Field{
		zap.String("ownerID", ownerID.String()),
		zap.Int64("startMillis", startMillis),
		zap.Int64("endMillis", endMillis),
	}
	s.logger.Debug("Filtering travel stories by date range", logFields...)

	if startMillis <= 0 || endMillis <= 0 {
		s.logger.Warn("Missing date range bounds", logFields...)
		return nil, ErrMissingDateBounds
	}

	start := time.UnixMilli(startMillis).UTC()
	end := time.UnixMilli(endMillis).UTC()
	// start > end is a valid, simply empty range; the store query matches
	// nothing without special-casing it.
	return s.storyRepo.ListByOwnerAndDateRange(ctx, ownerID, start, end)
}
