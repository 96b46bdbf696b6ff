package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"expensey/internal/domain"
	"expensey/internal/port"
)

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	tx.ID = uuid.New()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO transactions (id, user_id, amount, currency, merchant, category, user_note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.Amount, tx.Currency, tx.Merchant, tx.Category, tx.UserNote, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("transactionRepo.Create: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (r *transactionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := r.db.SelectContext(ctx, &txs,
		`SELECT * FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.ListRecent: %w: %w", domain.ErrPersistence, err)
	}
	return txs, nil
}
