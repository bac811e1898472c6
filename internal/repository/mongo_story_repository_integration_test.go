package repository_test

import (
	"context"
	"testing"
	"time"

	"travel-journal-server/internal/models"
	"travel-journal-server/internal/repository"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MongoRepositorySuite struct {
	suite.Suite
	ctx         context.Context
	container   *mongodb.MongoDBContainer
	mongoClient *mongo.Client
	db          *mongo.Database
	storyRepo   repository.StoryRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

func (s *MongoRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err, "Failed to create logger for tests")

	s.container, err = mongodb.Run(s.ctx, "mongo:7")
	require.NoError(s.T(), err, "Failed to start mongo container")

	connStr, err := s.container.ConnectionString(s.ctx)
	require.NoError(s.T(), err, "Failed to get mongo connection string")

	s.mongoClient, err = mongo.Connect(s.ctx, options.Client().ApplyURI(connStr))
	require.NoError(s.T(), err, "Failed to connect to test mongo")
	require.NoError(s.T(), s.mongoClient.Ping(s.ctx, nil), "Failed to ping test mongo")

	s.db = s.mongoClient.Database("travel_journal_test")
	require.NoError(s.T(), repository.EnsureStoryIndexes(s.ctx, s.db))
	require.NoError(s.T(), repository.EnsureUserIndexes(s.ctx, s.db))

	s.storyRepo = repository.NewMongoStoryRepository(s.db, s.logger)
	s.userRepo = repository.NewMongoUserRepository(s.db, s.logger)
}

func (s *MongoRepositorySuite) TearDownSuite() {
	if s.mongoClient != nil {
		_ = s.mongoClient.Disconnect(s.ctx)
	}
	if s.container != nil {
		if err := s.container.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate mongo container", zap.Error(err))
		}
	}
}

func (s *MongoRepositorySuite) SetupTest() {
	// Each test starts from empty collections. Indexes survive the purge.
	require.NoError(s.T(), s.db.Collection("travel_stories").Drop(s.ctx))
	require.NoError(s.T(), s.db.Collection("users").Drop(s.ctx))
	require.NoError(s.T(), repository.EnsureStoryIndexes(s.ctx, s.db))
	require.NoError(s.T(), repository.EnsureUserIndexes(s.ctx, s.db))
}

func TestMongoRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		t.Skipf("Docker client init error: %v. Ensure Docker is running and accessible.", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		t.Skipf("Docker daemon is not running or accessible: %v", err)
	}
	cli.Close()

	suite.Run(t, new(MongoRepositorySuite))
}

func (s *MongoRepositorySuite) newStory(ownerID uuid.UUID, title string) *models.TravelStory {
	return &models.TravelStory{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            title,
		Story:            "A story about " + title + ".",
		VisitedLocations: []string{"Porto", "Douro Valley"},
		ImageURL:         "http://localhost:8000/uploads/" + uuid.NewString() + ".png",
		VisitedDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *MongoRepositorySuite) TestCreateAndGetByID() {
	t := s.T()
	ownerID := uuid.New()
	story := s.newStory(ownerID, "Porto")

	require.NoError(t, s.storyRepo.Create(s.ctx, story))

	got, err := s.storyRepo.GetByID(s.ctx, story.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, story.ID, got.ID)
	require.Equal(t, story.Title, got.Title)
	require.Equal(t, story.VisitedLocations, got.VisitedLocations)
	require.True(t, story.VisitedDate.Equal(got.VisitedDate))
}

func (s *MongoRepositorySuite) TestGetByIDMasksForeignStories() {
	t := s.T()
	ownerID := uuid.New()
	story := s.newStory(ownerID, "Porto")
	require.NoError(t, s.storyRepo.Create(s.ctx, story))

	// The story exists, but another account cannot tell.
	got, err := s.storyRepo.GetByID(s.ctx, story.ID, uuid.New())
	require.Nil(t, got)
	require.ErrorIs(t, err, models.ErrNotFound)

	got, err = s.storyRepo.GetByID(s.ctx, uuid.New(), ownerID)
	require.Nil(t, got)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func (s *MongoRepositorySuite) TestListByOwnerFavouritesFirst() {
	t := s.T()
	ownerID := uuid.New()

	oldest := s.newStory(ownerID, "Oldest")
	oldest.CreatedAt = time.Now().UTC().Add(-3 * time.Hour).Truncate(time.Millisecond)
	newest := s.newStory(ownerID, "Newest")
	newest.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	favourite := s.newStory(ownerID, "Favourite")
	favourite.IsFavourite = true
	favourite.CreatedAt = time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Millisecond)

	for _, st := range []*models.TravelStory{oldest, newest, favourite} {
		require.NoError(t, s.storyRepo.Create(s.ctx, st))
	}
	// A story of another account never shows up.
	require.NoError(t, s.storyRepo.Create(s.ctx, s.newStory(uuid.New(), "Foreign")))

	got, err := s.storyRepo.ListByOwner(s.ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Favourite", got[0].Title)
	require.Equal(t, "Newest", got[1].Title)
	require.Equal(t, "Oldest", got[2].Title)
}

func (s *MongoRepositorySuite) TestListByOwnerEmptyIsNotNil() {
	t := s.T()

	got, err := s.storyRepo.ListByOwner(s.ctx, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func (s *MongoRepositorySuite) TestSearchByOwner() {
	t := s.T()
	ownerID := uuid.New()

	byTitle := s.newStory(ownerID, "Hiking in Madeira")
	byStory := s.newStory(ownerID, "Beach day")
	byStory.Story = "We found a quiet MADEIRA viewpoint."
	byLocation := s.newStory(ownerID, "Wine tour")
	byLocation.VisitedLocations = []string{"Funchal", "Madeira"}
	unrelated := s.newStory(ownerID, "City break")
	unrelated.Story = "Museums and coffee."
	unrelated.VisitedLocations = []string{"Berlin"}

	for _, st := range []*models.TravelStory{byTitle, byStory, byLocation, unrelated} {
		require.NoError(t, s.storyRepo.Create(s.ctx, st))
	}

	got, err := s.storyRepo.SearchByOwner(s.ctx, ownerID, "madeira")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, st := range got {
		require.NotEqual(t, "City break", st.Title)
	}
}

func (s *MongoRepositorySuite) TestSearchTreatsQueryLiterally() {
	t := s.T()
	ownerID := uuid.New()

	dotted := s.newStory(ownerID, "A.B")
	plain := s.newStory(ownerID, "AxB")
	require.NoError(t, s.storyRepo.Create(s.ctx, dotted))
	require.NoError(t, s.storyRepo.Create(s.ctx, plain))

	// "A.B" must match only the literal dot, not any character.
	got, err := s.storyRepo.SearchByOwner(s.ctx, ownerID, "A.B")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "A.B", got[0].Title)
}

func (s *MongoRepositorySuite) TestListByOwnerAndDateRange() {
	t := s.T()
	ownerID := uuid.New()

	makeOn := func(title string, day time.Time) *models.TravelStory {
		st := s.newStory(ownerID, title)
		st.VisitedDate = day
		return st
	}

	jan := makeOn("January", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	mar := makeOn("March", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	jul := makeOn("July", time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC))
	for _, st := range []*models.TravelStory{jan, mar, jul} {
		require.NoError(t, s.storyRepo.Create(s.ctx, st))
	}

	// Bounds are inclusive on both ends.
	got, err := s.storyRepo.ListByOwnerAndDateRange(s.ctx, ownerID,
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// An inverted range matches nothing and is not an error.
	got, err = s.storyRepo.ListByOwnerAndDateRange(s.ctx, ownerID,
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func (s *MongoRepositorySuite) TestReplaceScopedToOwner() {
	t := s.T()
	ownerID := uuid.New()
	story := s.newStory(ownerID, "Original title")
	require.NoError(t, s.storyRepo.Create(s.ctx, story))

	story.Title = "Edited title"
	require.NoError(t, s.storyRepo.Replace(s.ctx, story))

	got, err := s.storyRepo.GetByID(s.ctx, story.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, "Edited title", got.Title)

	// Replace through a foreign owner id must not touch the record.
	foreign := *story
	foreign.OwnerID = uuid.New()
	foreign.Title = "Hijacked"
	err = s.storyRepo.Replace(s.ctx, &foreign)
	require.ErrorIs(t, err, models.ErrNotFound)

	got, err = s.storyRepo.GetByID(s.ctx, story.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, "Edited title", got.Title)
}

func (s *MongoRepositorySuite) TestDeleteScopedToOwner() {
	t := s.T()
	ownerID := uuid.New()
	story := s.newStory(ownerID, "Doomed")
	require.NoError(t, s.storyRepo.Create(s.ctx, story))

	err := s.storyRepo.Delete(s.ctx, story.ID, uuid.New())
	require.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.storyRepo.Delete(s.ctx, story.ID, ownerID))

	_, err = s.storyRepo.GetByID(s.ctx, story.ID, ownerID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func (s *MongoRepositorySuite) TestUserUniqueEmail() {
	t := s.T()

	first := &models.User{
		ID:           uuid.New(),
		FullName:     "Jamie Doe",
		Email:        "jamie@example.com",
		PasswordHash: "hash-one",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.userRepo.Create(s.ctx, first))

	second := &models.User{
		ID:           uuid.New(),
		FullName:     "Other Jamie",
		Email:        "jamie@example.com",
		PasswordHash: "hash-two",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.userRepo.Create(s.ctx, second)
	require.ErrorIs(t, err, models.ErrEmailAlreadyExists)

	got, err := s.userRepo.GetByEmail(s.ctx, "jamie@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	byID, err := s.userRepo.GetByID(s.ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.Email, byID.Email)

	_, err = s.userRepo.GetByEmail(s.ctx, "nobody@example.com")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}
