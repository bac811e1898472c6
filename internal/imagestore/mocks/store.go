package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// Mock imagestore.Store
type Store struct {
	mock.Mock
}

func (m *Store) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalFilename, r)
	return args.String(0), args.Error(1)
}

func (m *Store) Remove(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *Store) PlaceholderURL() string {
	args := m.Called()
	return args.String(0)
}
