package parser

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"expensey/internal/domain"
)

// heuristicConfidence is reported for every heuristic result regardless of
// match quality.
const heuristicConfidence = 0.6

var (
	amountRe    = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)
	nonLetterRe = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// categoryGuess maps known merchant substrings to categories. Held as an
// ordered slice so the first match always wins deterministically.
var categoryGuess = []struct {
	substr   string
	category string
}{
	{"swiggy", domain.CategoryFoodDining},
	{"zomato", domain.CategoryFoodDining},
	{"blinkit", domain.CategoryGroceries},
	{"zepto", domain.CategoryGroceries},
	{"bigbasket", domain.CategoryGroceries},
	{"uber", domain.CategoryTransport},
	{"ola", domain.CategoryTransport},
	{"amazon", domain.CategoryShopping},
	{"flipkart", domain.CategoryShopping},
	{"jio", domain.CategoryUtilities},
	{"airtel", domain.CategoryUtilities},
}

// Heuristic is the local, network-free extraction path. Parse is a total
// function: it always returns a schema-valid result.
//
// Known limitation: the amount match is unsigned, so negative amounts
// (refunds) are not recognized on this path. The sign character is stripped
// with the other non-letters.
type Heuristic struct {
	now func() time.Time
}

// NewHeuristic creates a Heuristic using the wall clock.
func NewHeuristic() *Heuristic {
	return &Heuristic{now: time.Now}
}

// NewHeuristicWithClock creates a Heuristic with a fixed clock (for testing).
func NewHeuristicWithClock(now func() time.Time) *Heuristic {
	return &Heuristic{now: now}
}

// Parse extracts a best-effort structured expense from free text. Only the
// first number in the text is used; the remainder becomes the merchant.
func (h *Heuristic) Parse(_ context.Context, text string) (*domain.ExtractionResult, error) {
	return h.parse(text), nil
}

func (h *Heuristic) parse(text string) *domain.ExtractionResult {
	s := strings.TrimSpace(text)

	var amount *float64
	matched := amountRe.FindString(s)
	if matched != "" {
		if v, err := strconv.ParseFloat(matched, 64); err == nil {
			amount = &v
		}
	}

	var merchant *string
	rest := strings.Replace(s, matched, "", 1)
	rest = nonLetterRe.ReplaceAllString(rest, "")
	rest = strings.ToLower(strings.TrimSpace(rest))
	if rest != "" {
		merchant = &rest
	}

	var category *string
	if merchant != nil {
		for _, g := range categoryGuess {
			if strings.Contains(*merchant, g.substr) {
				c := g.category
				category = &c
				break
			}
		}
	}

	currency := domain.HomeCurrency
	dateISO := h.now().UTC().Format(time.RFC3339)
	confidence := heuristicConfidence

	return &domain.ExtractionResult{
		Amount:     amount,
		Currency:   &currency,
		Merchant:   merchant,
		Category:   category,
		DateISO:    &dateISO,
		Confidence: &confidence,
	}
}
