package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Compile-time check
var _ StoryRepository = (*mongoStoryRepository)(nil)

const storiesCollection = "travel_stories"

// storyDocument is the BSON shape of a travel story. IDs are stored as
// canonical UUID strings.
type storyDocument struct {
	ID               string    `bson:"_id"`
	OwnerID          string    `bson:"owner_id"`
	Title            string    `bson:"title"`
	Story            string    `bson:"story"`
	VisitedLocations []string  `bson:"visited_locations"`
	ImageURL         string    `bson:"image_url"`
	VisitedDate      time.Time `bson:"visited_date"`
	IsFavourite      bool      `bson:"is_favourite"`
	CreatedAt        time.Time `bson:"created_at"`
}

func toStoryDocument(story *models.TravelStory) *storyDocument {
	return &storyDocument{
		ID:               story.ID.String(),
		OwnerID:          story.OwnerID.String(),
		Title:            story.Title,
		Story:            story.Story,
		VisitedLocations: story.VisitedLocations,
		ImageURL:         story.ImageURL,
		VisitedDate:      story.VisitedDate,
		IsFavourite:      story.IsFavourite,
		CreatedAt:        story.CreatedAt,
	}
}

func (d *storyDocument) toModel() (*models.TravelStory, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed story id %q: %w", d.ID, err)
	}
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("malformed owner id %q: %w", d.OwnerID, err)
	}
	locations := d.VisitedLocations
	if locations == nil {
		locations = []string{}
	}
	return &models.TravelStory{
		ID:               id,
		OwnerID:          ownerID,
		Title:            d.Title,
		Story:            d.Story,
		VisitedLocations: locations,
		ImageURL:         d.ImageURL,
		VisitedDate:      d.VisitedDate,
		IsFavourite:      d.IsFavourite,
		CreatedAt:        d.CreatedAt,
	}, nil
}

type mongoStoryRepository struct {
	stories *mongo.Collection
	logger  *zap.Logger
}

// NewMongoStoryRepository creates the MongoDB-backed story repository.
func NewMongoStoryRepository(db *mongo.Database, logger *zap.Logger) StoryRepository {
	return &mongoStoryRepository{
		stories: db.Collection(storiesCollection),
		logger:  logger.Named("MongoStoryRepo"),
	}
}

// EnsureStoryIndexes creates the owner index used by every list query.
func EnsureStoryIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(storiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create owner index on %s: %w", storiesCollection, err)
	}
	return nil
}

// favouriteFirstOrder sorts favourites before the rest; creation time breaks
// ties so the order is stable between calls.
func favouriteFirstOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "is_favourite", Value: -1},
		{Key: "created_at", Value: -1},
	})
}

func (r *mongoStoryRepository) Create(ctx context.Context, story *models.TravelStory) error {
	logFields := []zap.Field{zap.String("storyID", story.ID.String()), zap.String("ownerID", story.OwnerID.String())}
	r.logger.Debug("Creating travel story", logFields...)

	if _, err := r.stories.InsertOne(ctx, toStoryDocument(story)); err != nil {
		r.logger.Error("Failed to create travel story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to insert travel story: %w", err)
	}
	r.logger.Info("Travel story created successfully", logFields...)
	return nil
}

// GetByID is the guarded lookup used by every per-record operation: the
// filter matches both _id and owner_id, so a story owned by someone else is
// reported as not found.
func (r *mongoStoryRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("storyID", id.String()), zap.String("ownerID", ownerID.String())}
	r.logger.Debug("Getting travel story by ID", logFields...)

	filter := bson.M{"_id": id.String(), "owner_id": ownerID.String()}
	var doc storyDocument
	if err := r.stories.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Warn("Travel story not found by ID for owner", logFields...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get travel story by ID", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to get travel story %s: %w", id, err)
	}
	return doc.toModel()
}

func (r *mongoStoryRepository) Replace(ctx context.Context, story *models.TravelStory) error {
	logFields := []zap.Field{zap.String("storyID", story.ID.String()), zap.String("ownerID", story.OwnerID.String())}
	r.logger.Debug("Replacing travel story", logFields...)

	filter := bson.M{"_id": story.ID.String(), "owner_id": story.OwnerID.String()}
	res, err := r.stories.ReplaceOne(ctx, filter, toStoryDocument(story))
	if err != nil {
		r.logger.Error("Failed to replace travel story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to replace travel story %s: %w", story.ID, err)
	}
	if res.MatchedCount == 0 {
		r.logger.Warn("Travel story not found for replace", logFields...)
		return models.ErrNotFound
	}
	r.logger.Info("Travel story replaced successfully", logFields...)
	return nil
}

func (r *mongoStoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	logFields := []zap.Field{zap.String("storyID", id.String()), zap.String("ownerID", ownerID.String())}
	r.logger.Debug("Deleting travel story", logFields...)

	filter := bson.M{"_id": id.String(), "owner_id": ownerID.String()}
	res, err := r.stories.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.Error("Failed to delete travel story", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to delete travel story %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		r.logger.Warn("Travel story not found for delete", logFields...)
		return models.ErrNotFound
	}
	r.logger.Info("Travel story deleted successfully", logFields...)
	return nil
}

func (r *mongoStoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.TravelStory, error) {
	filter := bson.M{"owner_id": ownerID.String()}
	return r.find(ctx, ownerID, filter)
}

func (r *mongoStoryRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.TravelStory, error) {
	// Substring match, not relevance ranking: the query is quoted so regex
	// metacharacters in user input match literally.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"owner_id": ownerID.String(),
		"$or": []bson.M{
			{"title": pattern},
			{"story": pattern},
			{"visited_locations": pattern},
		},
	}
	return r.find(ctx, ownerID, filter)
}

func (r *mongoStoryRepository) ListByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*models.TravelStory, error) {
	// Inclusive on both ends; an inverted range simply matches nothing.
	filter := bson.M{
		"owner_id":     ownerID.String(),
		"visited_date": bson.M{"$gte": start, "$lte": end},
	}
	return r.find(ctx, ownerID, filter)
}

func (r *mongoStoryRepository) find(ctx context.Context, ownerID uuid.UUID, filter bson.M) ([]*models.TravelStory, error) {
	logFields := []zap.Field{zap.String("ownerID", ownerID.String())}

	cursor, err := r.stories.Find(ctx, filter, favouriteFirstOrder())
	if err != nil {
		r.logger.Error("Failed to query travel stories", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to query travel stories: %w", err)
	}
	defer cursor.Close(ctx)

	stories := make([]*models.TravelStory, 0)
	for cursor.Next(ctx) {
		var doc storyDocument
		if err := cursor.Decode(&doc); err != nil {
			r.logger.Error("Failed to decode travel story document", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("failed to decode travel story: %w", err)
		}
		story, err := doc.toModel()
		if err != nil {
			r.logger.Error("Failed to convert travel story document", append(logFields, zap.Error(err))...)
			return nil, err
		}
		stories = append(stories, story)
	}
	if err := cursor.Err(); err != nil {
		r.logger.Error("Cursor error while listing travel stories", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	r.logger.Debug("Travel stories retrieved", append(logFields, zap.Int("count", len(stories)))...)
	return stories, nil
}
