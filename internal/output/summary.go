package output

import (
	"fmt"
	"strings"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// SummarizeResult produces a short deterministic prose summary of a run.
// Same result in, same text out; nothing here consults a clock or RNG.
func SummarizeResult(result *domain.SimulationResult) string {
	var b strings.Builder

	if result.Winner == domain.WinnerBuying {
		fmt.Fprintf(&b, "Buying wins over %d years: owner net worth %s vs renter %s, a %s advantage.",
			result.Inputs.YearsHorizon,
			FormatCurrency(result.OwnerNetWorth),
			FormatCurrency(result.RenterNetWorth),
			FormatCurrency(result.WealthAdvantage))
	} else {
		fmt.Fprintf(&b, "Renting wins over %d years: renter net worth %s vs owner %s, a %s advantage.",
			result.Inputs.YearsHorizon,
			FormatCurrency(result.RenterNetWorth),
			FormatCurrency(result.OwnerNetWorth),
			FormatCurrency(result.WealthAdvantage.Neg()))
	}

	if result.BreakEvenYear != nil {
		fmt.Fprintf(&b, " Ownership cash costs fall below rent in year %d.", *result.BreakEvenYear)
	} else {
		b.WriteString(" Ownership cash costs never fall below rent within the horizon.")
	}

	return b.String()
}

// SummarizeMonteCarlo produces a short deterministic summary of a Monte
// Carlo run.
func SummarizeMonteCarlo(result *domain.MonteCarloResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Across %d trials, buying wins %s%% of the time (mean wealth advantage %s, P10 %s, P90 %s).",
		result.NumTrials,
		result.BuyWinRate.Mul(hundred).StringFixed(1),
		FormatCurrency(result.Mean),
		FormatCurrency(result.P10),
		FormatCurrency(result.P90))
	if result.MedianBreakEvenYear != nil {
		fmt.Fprintf(&b, " Median cash break-even lands in year %s.", result.MedianBreakEvenYear.String())
	}
	return b.String()
}
