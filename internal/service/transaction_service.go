package service

import (
	"context"
	"math"
	"strings"
	"time"

	"expensey/internal/domain"
	"expensey/internal/port"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// CreateTransactionInput is the payload for saving a confirmed expense entry.
type CreateTransactionInput struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	UserNote *string `json:"userNote"`
	DateISO  string  `json:"dateISO"`
}

// TransactionService validates and persists confirmed expense entries.
type TransactionService interface {
	Create(ctx context.Context, userID string, input CreateTransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

type transactionService struct {
	repo port.TransactionRepository
}

// NewTransactionService creates a TransactionService implementation.
func NewTransactionService(repo port.TransactionRepository) TransactionService {
	return &transactionService{repo: repo}
}

func (s *transactionService) Create(ctx context.Context, userID string, input CreateTransactionInput) (*domain.Transaction, error) {
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	merchant := strings.ToLower(strings.TrimSpace(input.Merchant))
	if merchant == "" {
		return nil, domain.ErrEmptyMerchant
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.HomeCurrency
	}
	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}

	tx := &domain.Transaction{
		UserID:   userID,
		Amount:   input.Amount,
		Currency: currency,
		Merchant: merchant,
		Category: category,
		UserNote: input.UserNote,
	}
	// A valid user-provided date overrides the creation timestamp; anything
	// unparseable is ignored rather than rejected.
	if input.DateISO != "" {
		if t, err := parseDateISO(input.DateISO); err == nil {
			tx.CreatedAt = t.UTC()
		}
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) List(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	return s.repo.ListRecent(ctx, userID, ClampListLimit(limit))
}

// ClampListLimit normalizes a requested listing limit to the allowed range.
func ClampListLimit(limit int) int {
	if limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}

func parseDateISO(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
