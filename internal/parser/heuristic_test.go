package parser_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensey/internal/domain"
	"expensey/internal/parser"
)

var testClock = func() time.Time {
	return time.Date(2024, 9, 5, 12, 0, 0, 0, time.UTC)
}

func TestHeuristic_Parse_AmountAndMerchant(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	result, err := h.Parse(context.Background(), "200 swiggy")

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 200.0, *result.Amount)
	require.NotNil(t, result.Merchant)
	assert.Equal(t, "swiggy", *result.Merchant)
	require.NotNil(t, result.Category)
	assert.Equal(t, domain.CategoryFoodDining, *result.Category)
	require.NotNil(t, result.Currency)
	assert.Equal(t, "INR", *result.Currency)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 0.6, *result.Confidence)
	require.NotNil(t, result.DateISO)
	assert.Equal(t, "2024-09-05T12:00:00Z", *result.DateISO)
}

func TestHeuristic_Parse_EmptyInput(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	result, err := h.Parse(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, result.Amount)
	assert.Nil(t, result.Merchant)
	assert.Nil(t, result.Category)
	require.NotNil(t, result.Currency)
	assert.Equal(t, "INR", *result.Currency)
	assert.NotNil(t, result.DateISO)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 0.6, *result.Confidence)
}

func TestHeuristic_Parse_DecimalAmount(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	result, err := h.Parse(context.Background(), "12.50 Cafe")

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 12.50, *result.Amount)
	require.NotNil(t, result.Merchant)
	assert.Equal(t, "cafe", *result.Merchant)
	assert.Nil(t, result.Category)
}

func TestHeuristic_Parse_FirstNumberWins(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	result, err := h.Parse(context.Background(), "100 uber then 200")

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 100.0, *result.Amount)
	require.NotNil(t, result.Category)
	assert.Equal(t, domain.CategoryTransport, *result.Category)
}

func TestHeuristic_Parse_NegativeSignNotRecognized(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	// The sign is stripped with the other non-letters; this path cannot
	// produce negative amounts.
	result, err := h.Parse(context.Background(), "refund -300 amazon")

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 300.0, *result.Amount)
	require.NotNil(t, result.Merchant)
	assert.Equal(t, "refund  amazon", *result.Merchant)
	require.NotNil(t, result.Category)
	assert.Equal(t, domain.CategoryShopping, *result.Category)
}

func TestHeuristic_Parse_NoNumber(t *testing.T) {
	h := parser.NewHeuristicWithClock(testClock)

	result, err := h.Parse(context.Background(), "coffee with friends")

	require.NoError(t, err)
	assert.Nil(t, result.Amount)
	require.NotNil(t, result.Merchant)
	assert.Equal(t, "coffee with friends", *result.Merchant)
}
