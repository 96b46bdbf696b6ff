package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expensey/internal/domain"
)

// MockExpenseParser is a mock implementation of port.ExpenseParser.
type MockExpenseParser struct {
	mock.Mock
}

func (m *MockExpenseParser) Parse(ctx context.Context, text string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
