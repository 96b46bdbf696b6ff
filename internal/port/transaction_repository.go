package port

import (
	"context"

	"expensey/internal/domain"
)

// TransactionRepository persists confirmed expense entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}
