package port

import (
	"context"

	"expensey/internal/domain"
)

// ExpenseParser abstracts a single extraction path that turns free text into
// a structured expense. Implementations may fail; the orchestrator decides
// what a failure means.
type ExpenseParser interface {
	Parse(ctx context.Context, text string) (*domain.ExtractionResult, error)
}

// Extractor is the entry point of the extraction core. It never fails: any
// remote-path error degrades to the heuristic result.
type Extractor interface {
	Extract(ctx context.Context, text string) *domain.Extraction
}

// UsageRecorder receives token counts after each successful remote call.
type UsageRecorder interface {
	Record(promptTokens, completionTokens int64)
}
