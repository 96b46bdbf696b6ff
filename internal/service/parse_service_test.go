package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expensey/internal/domain"
	"expensey/internal/parser"
	"expensey/internal/service"
	"expensey/mocks"
)

func extractionOf(p domain.Provenance, remoteErr error) *domain.Extraction {
	amount := 200.0
	currency := "INR"
	return &domain.Extraction{
		Result:     &domain.ExtractionResult{Amount: &amount, Currency: &currency},
		Provenance: p,
		RemoteErr:  remoteErr,
	}
}

func TestParseService_EmptyText(t *testing.T) {
	extractor := new(mocks.MockExtractor)
	svc := service.NewParseService(extractor)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Parse(context.Background(), text)

		assert.ErrorIs(t, err, domain.ErrEmptyText, "text %q", text)
	}
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestParseService_RemoteSource(t *testing.T) {
	extractor := new(mocks.MockExtractor)
	extractor.On("Extract", mock.Anything, "200 swiggy").
		Return(extractionOf(domain.ProvenanceRemote, nil))

	svc := service.NewParseService(extractor)

	out, err := svc.Parse(context.Background(), "200 swiggy")

	require.NoError(t, err)
	assert.Equal(t, "ai", out.Source)
	assert.Empty(t, out.Error)
	require.NotNil(t, out.Result)
}

func TestParseService_LocalSource(t *testing.T) {
	extractor := new(mocks.MockExtractor)
	extractor.On("Extract", mock.Anything, "200 swiggy").
		Return(extractionOf(domain.ProvenanceHeuristic, nil))

	svc := service.NewParseService(extractor)

	out, err := svc.Parse(context.Background(), "200 swiggy")

	require.NoError(t, err)
	assert.Equal(t, "local", out.Source)
	assert.Empty(t, out.Error)
}

func TestParseService_FallbackCarriesError(t *testing.T) {
	remoteErr := &parser.RemoteCallError{Status: 503, Body: "unavailable"}
	extractor := new(mocks.MockExtractor)
	extractor.On("Extract", mock.Anything, "200 swiggy").
		Return(extractionOf(domain.ProvenanceFallback, remoteErr))

	svc := service.NewParseService(extractor)

	out, err := svc.Parse(context.Background(), "200 swiggy")

	require.NoError(t, err)
	assert.Equal(t, "fallback", out.Source)
	assert.Contains(t, out.Error, "status 503")
	require.NotNil(t, out.Result)
}
