package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-journal-server/internal/config"
	"travel-journal-server/internal/models"
	"travel-journal-server/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration, login and token verification.
// Access tokens are stateless HS256 JWTs; there is no revocation store.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (*models.User, *models.TokenDetails, error)
	Login(ctx context.Context, email, password string) (*models.User, *models.TokenDetails, error)
	VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	logger   *zap.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger.Named("AuthService"),
	}
}

func (s *authServiceImpl) Register(ctx context.Context, fullName, email, password string) (*models.User, *models.TokenDetails, error) {
	logFields := []zap.Field{zap.String("email", email)}
	s.logger.Info("Registering user", logFields...)

	if fullName == "" || email == "" || password == "" {
		return nil, nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", append(logFields, zap.Error(err))...)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrEmailAlreadyExists) {
			s.logger.Warn("Registration with existing email", logFields...)
			return nil, nil, err
		}
		s.logger.Error("Failed to create user", append(logFields, zap.Error(err))...)
		return nil, nil, err
	}

	tokens, err := s.issueAccessToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to issue access token after registration", append(logFields, zap.Error(err))...)
		return nil, nil, err
	}

	s.logger.Info("User registered", append(logFields, zap.String("userID", user.ID.String()))...)
	return user, tokens, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, *models.TokenDetails, error) {
	logFields := []zap.Field{zap.String("email", email)}
	s.logger.Info("Logging in user", logFields...)

	if email == "" || password == "" {
		return nil, nil, ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Login for unknown email", logFields...)
			return nil, nil, models.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user for login", append(logFields, zap.Error(err))...)
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login with wrong password", logFields...)
		return nil, nil, models.ErrInvalidCredentials
	}

	tokens, err := s.issueAccessToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to issue access token", append(logFields, zap.Error(err))...)
		return nil, nil, err
	}

	s.logger.Info("User logged in", append(logFields, zap.String("userID", user.ID.String()))...)
	return user, tokens, nil
}

func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.AccessTokenSecret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, models.ErrTokenMalformed
		default:
			return nil, models.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, models.ErrTokenInvalid
	}
	if claims.UserID == uuid.Nil {
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *authServiceImpl) issueAccessToken(userID uuid.UUID) (*models.TokenDetails, error) {
	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.AccessTokenSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &models.TokenDetails{
		AccessToken: signed,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}
