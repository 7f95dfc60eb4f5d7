package domain

import (
	"github.com/shopspring/decimal"
)

// Winner labels for the wealth-based comparison. Exact ties resolve to
// renting (flexibility/liquidity default).
const (
	WinnerRenting = "renting"
	WinnerBuying  = "buying"
)

// AmortizationYearRecord holds cumulative amortization state at the end of
// a loan year. RemainingBalance never increases and reaches exactly zero at
// the final term year.
type AmortizationYearRecord struct {
	Year             int             `json:"year"`
	PrincipalPaid    decimal.Decimal `json:"principal_paid"`
	InterestPaid     decimal.Decimal `json:"interest_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// YearlyProjection is one simulated year of the comparison. Equity and
// RenterPortfolioValue are independently derived but both trace back to the
// same year-0 capital commitment.
type YearlyProjection struct {
	Year                 int             `json:"year"`
	RentCashOut          decimal.Decimal `json:"rent_cash_out"`
	OwnCashOut           decimal.Decimal `json:"own_cash_out"`
	HomeValue            decimal.Decimal `json:"home_value"`
	RemainingBalance     decimal.Decimal `json:"remaining_balance"`
	Equity               decimal.Decimal `json:"equity"`
	RenterPortfolioValue decimal.Decimal `json:"renter_portfolio_value"`
}

// SimulationResult aggregates a full single-scenario run. It is a freshly
// built value object; nothing mutates it after construction.
type SimulationResult struct {
	Inputs SimulationInputs `json:"inputs"`

	MonthlyPayment decimal.Decimal    `json:"monthly_payment"`
	DownPayment    decimal.Decimal    `json:"down_payment"`
	ClosingCost    decimal.Decimal    `json:"closing_cost"`
	Years          []YearlyProjection `json:"years"`

	// Wealth-based totals: pure cash out the door, no equity credit.
	TotalRentCashSpent decimal.Decimal `json:"total_rent_cash_spent"`
	TotalOwnCashSpent  decimal.Decimal `json:"total_own_cash_spent"`

	// Legacy totals kept for backward compatibility: the owner total
	// credits net sale proceeds in the final year. Computed independently
	// from the cash-spent view, never derived from it.
	TotalRentPaid decimal.Decimal `json:"total_rent_paid"`
	TotalOwnPaid  decimal.Decimal `json:"total_own_paid"`

	// NetProceeds is the owner's exit value: final equity less selling
	// costs. OwnerNetWorth equals it by construction.
	NetProceeds    decimal.Decimal `json:"net_proceeds"`
	OwnerNetWorth  decimal.Decimal `json:"owner_net_worth"`
	RenterNetWorth decimal.Decimal `json:"renter_net_worth"`

	// Net position per side: cash spent minus wealth accumulated. The
	// lower value wins; CostDifference = NetPositionOwn - NetPositionRent.
	NetPositionOwn  decimal.Decimal `json:"total_own_true_cost"`
	NetPositionRent decimal.Decimal `json:"total_rent_true_cost"`
	CostDifference  decimal.Decimal `json:"cost_difference"`

	// WealthAdvantage = OwnerNetWorth - RenterNetWorth; positive favors
	// the owner. The sign convention is fixed for the life of the object.
	WealthAdvantage decimal.Decimal `json:"wealth_advantage"`

	Winner        string `json:"winner"`
	BreakEvenYear *int   `json:"break_even_year"`

	// Optional NPV of the two cash-flow series at the discount rate,
	// discounting from year 1. Nil when the discount rate is zero.
	RentNPV *decimal.Decimal `json:"rent_npv,omitempty"`
	OwnNPV  *decimal.Decimal `json:"own_npv,omitempty"`
}

// MonteCarloResult holds per-trial wealth advantages (ordered by trial
// index) and the derived distribution statistics.
type MonteCarloResult struct {
	NumTrials int   `json:"num_trials"`
	Seed      int64 `json:"seed"`

	WealthAdvantages []decimal.Decimal `json:"wealth_advantages"`

	Mean   decimal.Decimal `json:"mean"`
	StdDev decimal.Decimal `json:"std_dev"`
	P10    decimal.Decimal `json:"p10"`
	P50    decimal.Decimal `json:"p50"`
	P90    decimal.Decimal `json:"p90"`

	// Win rates sum to 1; exact zero-advantage ties count for renting.
	BuyWinRate  decimal.Decimal `json:"buy_win_rate"`
	RentWinRate decimal.Decimal `json:"rent_win_rate"`

	MedianBreakEvenYear *decimal.Decimal `json:"median_break_even_year,omitempty"`
}

// Recommendation kinds in decreasing prominence.
const (
	RecommendationPrimary    = "primary"
	RecommendationWarning    = "warning"
	RecommendationSuggestion = "suggestion"
	RecommendationInfo       = "info"
)

// Recommendation is a single advisory item.
type Recommendation struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// RecommendationBundle is the ordered advisory output plus a confidence
// score in [0,100]. Recomputed on every call, never mutated afterwards.
type RecommendationBundle struct {
	Summary    string           `json:"summary"`
	Items      []Recommendation `json:"items"`
	Confidence int              `json:"confidence"`
}
