package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expensey/internal/domain"
)

// MockExtractor is a mock implementation of port.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, text string) *domain.Extraction {
	args := m.Called(ctx, text)
	return args.Get(0).(*domain.Extraction)
}
