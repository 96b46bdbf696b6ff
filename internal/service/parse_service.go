package service

import (
	"context"
	"strings"

	"expensey/internal/domain"
	"expensey/internal/port"
)

// ParseService turns raw user text into a structured extraction plus its
// source tag. The only hard failure is empty input; extraction itself never
// fails.
type ParseService interface {
	Parse(ctx context.Context, text string) (*ParseOutput, error)
}

// ParseOutput is what the parse endpoint returns to clients. Error is set
// only when the remote path failed and the heuristic took over; the user
// still gets a usable result.
type ParseOutput struct {
	Source string                   `json:"source"`
	Result *domain.ExtractionResult `json:"result"`
	Error  string                   `json:"error,omitempty"`
}

type parseService struct {
	extractor port.Extractor
}

// NewParseService creates a ParseService backed by the given extractor.
func NewParseService(extractor port.Extractor) ParseService {
	return &parseService{extractor: extractor}
}

func (s *parseService) Parse(ctx context.Context, text string) (*ParseOutput, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}

	extraction := s.extractor.Extract(ctx, text)

	out := &ParseOutput{
		Source: extraction.Provenance.Source(),
		Result: extraction.Result,
	}
	if extraction.RemoteErr != nil {
		out.Error = extraction.RemoteErr.Error()
	}
	return out, nil
}
