package usage

import (
	"log"
	"sync"

	"expensey/internal/config"
)

// Totals are the process-wide running usage counters. They are best-effort
// telemetry: zeroed at process start, never persisted, not billing of record.
type Totals struct {
	PromptTokens     int64   `json:"promptTokens"`
	CompletionTokens int64   `json:"completionTokens"`
	CostUSD          float64 `json:"costUSD"`
	CostINR          float64 `json:"costINR"`
}

// Accountant accumulates token usage and estimated cost across all remote
// calls in the process. Updates are serialized so concurrent successful calls
// never lose increments.
type Accountant struct {
	mu      sync.Mutex
	pricing config.PricingConfig
	totals  Totals
}

// NewAccountant creates an Accountant with the given pricing constants.
func NewAccountant(pricing config.PricingConfig) *Accountant {
	return &Accountant{pricing: pricing}
}

// Record adds one call's token counts and their estimated cost to the
// running totals. Rates are per 1M tokens in USD.
func (a *Accountant) Record(promptTokens, completionTokens int64) {
	costUSD := float64(promptTokens)*a.pricing.InputPerMTok/1_000_000 +
		float64(completionTokens)*a.pricing.OutputPerMTok/1_000_000
	costINR := costUSD * a.pricing.USDToINR

	a.mu.Lock()
	a.totals.PromptTokens += promptTokens
	a.totals.CompletionTokens += completionTokens
	a.totals.CostUSD += costUSD
	a.totals.CostINR += costINR
	cumulative := a.totals
	a.mu.Unlock()

	log.Printf("usage: prompt=%d completion=%d cost=$%.6f (~₹%.4f); cumulative prompt=%d completion=%d cost=$%.4f (~₹%.2f)",
		promptTokens, completionTokens, costUSD, costINR,
		cumulative.PromptTokens, cumulative.CompletionTokens, cumulative.CostUSD, cumulative.CostINR)
}

// Snapshot returns a copy of the current totals for diagnostics.
func (a *Accountant) Snapshot() Totals {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totals
}
