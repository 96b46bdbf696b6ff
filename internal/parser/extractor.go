package parser

import (
	"context"
	"log"

	"expensey/internal/domain"
	"expensey/internal/port"
)

// FallbackExtractor is the extraction entry point. It attempts the remote
// parser when one is configured and degrades to the heuristic on any remote
// failure. Extract never fails: the caller always receives a schema-valid
// result with its provenance.
//
// It holds no mutable state, so concurrent extractions proceed independently.
type FallbackExtractor struct {
	remote port.ExpenseParser // nil when no remote path is configured
	local  *Heuristic
}

// NewFallbackExtractor creates a FallbackExtractor. remote may be nil.
func NewFallbackExtractor(remote port.ExpenseParser, local *Heuristic) *FallbackExtractor {
	return &FallbackExtractor{remote: remote, local: local}
}

func (f *FallbackExtractor) Extract(ctx context.Context, text string) *domain.Extraction {
	if f.remote == nil {
		return &domain.Extraction{
			Result:     f.local.parse(text),
			Provenance: domain.ProvenanceHeuristic,
		}
	}

	result, err := f.remote.Parse(ctx, text)
	if err == nil {
		return &domain.Extraction{
			Result:     result,
			Provenance: domain.ProvenanceRemote,
		}
	}

	log.Printf("parser.FallbackExtractor: remote parse failed, falling back to heuristic: %v", err)
	return &domain.Extraction{
		Result:     f.local.parse(text),
		Provenance: domain.ProvenanceFallback,
		RemoteErr:  err,
	}
}
