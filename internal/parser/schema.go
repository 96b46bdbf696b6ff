package parser

import (
	"encoding/json"

	"expensey/internal/domain"
)

// ValidateResult checks a candidate JSON document against the extraction
// result contract and returns a typed result on success. Checks, in order:
// the candidate is a JSON object; amount numeric-or-null; currency
// string-or-null (null defaults to the home currency at this layer);
// merchant, category and dateISO string-or-null; confidence numeric-or-null
// and within [0,1].
//
// The closed category set is deliberately not enforced here: it is a prompt
// contract with the remote model, and rejecting out-of-set values would only
// raise the fallback rate.
func ValidateResult(raw []byte) (*domain.ExtractionResult, error) {
	var candidate map[string]any
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, &ValidationError{Reason: "candidate is not a JSON object"}
	}
	if candidate == nil {
		return nil, &ValidationError{Reason: "candidate is null"}
	}

	amount, err := numberOrNil(candidate, "amount")
	if err != nil {
		return nil, err
	}
	currency, err := stringOrNil(candidate, "currency")
	if err != nil {
		return nil, err
	}
	merchant, err := stringOrNil(candidate, "merchant")
	if err != nil {
		return nil, err
	}
	category, err := stringOrNil(candidate, "category")
	if err != nil {
		return nil, err
	}
	dateISO, err := stringOrNil(candidate, "dateISO")
	if err != nil {
		return nil, err
	}
	confidence, err := numberOrNil(candidate, "confidence")
	if err != nil {
		return nil, err
	}
	if confidence != nil && (*confidence < 0 || *confidence > 1) {
		return nil, &ValidationError{Field: "confidence", Reason: "must be within [0,1]"}
	}

	if currency == nil {
		home := domain.HomeCurrency
		currency = &home
	}

	return &domain.ExtractionResult{
		Amount:     amount,
		Currency:   currency,
		Merchant:   merchant,
		Category:   category,
		DateISO:    dateISO,
		Confidence: confidence,
	}, nil
}

func numberOrNil(m map[string]any, field string) (*float64, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, &ValidationError{Field: field, Reason: "must be a number or null"}
	}
	return &f, nil
}

func stringOrNil(m map[string]any, field string) (*string, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &ValidationError{Field: field, Reason: "must be a string or null"}
	}
	return &s, nil
}
