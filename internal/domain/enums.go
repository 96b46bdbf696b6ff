package domain

// Provenance records which extraction path produced a result.
type Provenance string

const (
	// ProvenanceRemote means the remote model produced the result.
	ProvenanceRemote Provenance = "remote"
	// ProvenanceHeuristic means no remote path was configured and the local
	// heuristic produced the result directly.
	ProvenanceHeuristic Provenance = "heuristic-only"
	// ProvenanceFallback means the remote path was attempted and failed, and
	// the local heuristic produced the result.
	ProvenanceFallback Provenance = "heuristic-after-remote-failure"
)

// Source returns the wire-level source tag consumed by API clients.
func (p Provenance) Source() string {
	switch p {
	case ProvenanceRemote:
		return "ai"
	case ProvenanceFallback:
		return "fallback"
	default:
		return "local"
	}
}

// Category values form the closed set offered to users and to the remote
// model. The set is enforced by prompt convention on the remote path, not
// mechanically by the validator.
const (
	CategoryFoodDining    = "Food & Dining"
	CategoryGroceries     = "Groceries"
	CategoryUtilities     = "Utilities"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryRent          = "Rent"
	CategorySalary        = "Salary"
	CategoryRefund        = "Refund"
	CategoryOther         = "Other"
)

// Categories lists the closed category set in display order.
var Categories = []string{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryUtilities,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryRent,
	CategorySalary,
	CategoryRefund,
	CategoryOther,
}
