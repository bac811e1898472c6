package mocks

import (
	"context"

	"travel-journal-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock AuthService
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, fullName, email, password string) (*models.User, *models.TokenDetails, error) {
	args := m.Called(ctx, fullName, email, password)
	user, _ := args.Get(0).(*models.User)
	tokens, _ := args.Get(1).(*models.TokenDetails)
	return user, tokens, args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenDetails, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	tokens, _ := args.Get(1).(*models.TokenDetails)
	return user, tokens, args.Error(2)
}

func (m *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	args := m.Called(ctx, tokenString)
	claims, _ := args.Get(0).(*models.Claims)
	return claims, args.Error(1)
}

func (m *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
