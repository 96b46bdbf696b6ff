package domain

import (
	"time"

	"github.com/google/uuid"
)

// HomeCurrency is the default currency applied when an entry carries none.
const HomeCurrency = "INR"

// ExtractionResult is the structured form of a free-text expense entry.
// Every field is independently optional; nil means the producer could not
// determine it. A result is immutable once produced; callers that want to
// edit fields work on a copy.
type ExtractionResult struct {
	Amount     *float64 `json:"amount"`
	Currency   *string  `json:"currency"`
	Merchant   *string  `json:"merchant"`
	Category   *string  `json:"category"`
	DateISO    *string  `json:"dateISO"`
	Confidence *float64 `json:"confidence"`
}

// Extraction pairs an ExtractionResult with the path that produced it.
// RemoteErr carries the remote failure as context when Provenance is
// ProvenanceFallback; it is never a hard failure.
type Extraction struct {
	Result     *ExtractionResult
	Provenance Provenance
	RemoteErr  error
}

// Transaction is a confirmed expense entry persisted for a user.
type Transaction struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Amount    float64   `db:"amount" json:"amount"`
	Currency  string    `db:"currency" json:"currency"`
	Merchant  string    `db:"merchant" json:"merchant"`
	Category  string    `db:"category" json:"category"`
	UserNote  *string   `db:"user_note" json:"userNote"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
