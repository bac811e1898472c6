package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Compile-time check
var _ UserRepository = (*mongoUserRepository)(nil)

const usersCollection = "users"

type userDocument struct {
	ID           string    `bson:"_id"`
	FullName     string    `bson:"full_name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d *userDocument) toModel() (*models.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed user id %q: %w", d.ID, err)
	}
	return &models.User{
		ID:           id,
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}, nil
}

type mongoUserRepository struct {
	users  *mongo.Collection
	logger *zap.Logger
}

// NewMongoUserRepository creates the MongoDB-backed user repository.
func NewMongoUserRepository(db *mongo.Database, logger *zap.Logger) UserRepository {
	return &mongoUserRepository{
		users:  db.Collection(usersCollection),
		logger: logger.Named("MongoUserRepo"),
	}
}

// EnsureUserIndexes creates the unique email index. Duplicate registrations
// rely on this constraint rather than a find-then-insert race.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index on %s: %w", usersCollection, err)
	}
	return nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	logFields := []zap.Field{zap.String("userID", user.ID.String()), zap.String("email", user.Email)}
	r.logger.Debug("Creating user", logFields...)

	doc := userDocument{
		ID:           user.ID.String(),
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("User with this email already exists", logFields...)
			return models.ErrEmailAlreadyExists
		}
		r.logger.Error("Failed to create user", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to insert user: %w", err)
	}
	r.logger.Info("User created successfully", logFields...)
	return nil
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.logger.Debug("Getting user by email", zap.String("email", email))

	var doc userDocument
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Warn("User not found by email", zap.String("email", email))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return doc.toModel()
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.logger.Debug("Getting user by ID", zap.String("userID", id.String()))

	var doc userDocument
	if err := r.users.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Warn("User not found by ID", zap.String("userID", id.String()))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by ID", zap.String("userID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return doc.toModel()
}
