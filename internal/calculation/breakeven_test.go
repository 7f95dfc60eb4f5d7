package calculation

import (
	"testing"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// breakEvenInputs is a scenario where buying overtakes renting in year 5:
// a 300k house against 3,000/mo rent at a 5% mortgage.
func breakEvenInputs() *domain.SimulationInputs {
	in := domain.DefaultInputs()
	in.HomePrice = decf(300000)
	in.MonthlyRent = decf(3000)
	in.MortgageRateAnnual = decf(0.05)
	in.HomePriceGrowth = decf(0.03)
	in.InvestmentReturn = decf(0.05)
	in.InsurancePerYear = decf(1200)
	return &in
}

func resolve(t *testing.T, in *domain.SimulationInputs) *domain.SimulationResult {
	t.Helper()
	cp := NewCashFlowProjector(NewAmortizationEngine())
	cf := cp.Project(in)
	rows := NewWealthTracker().Track(in, cf)
	return NewBreakEvenResolver().Resolve(in, cf, rows)
}

func TestResolveBreakEvenReached(t *testing.T) {
	result := resolve(t, breakEvenInputs())

	if result.BreakEvenYear == nil {
		t.Fatal("expected a break-even year")
	}
	if *result.BreakEvenYear != 5 {
		t.Errorf("break-even year = %d, want 5", *result.BreakEvenYear)
	}
	if result.Winner != domain.WinnerBuying {
		t.Errorf("winner = %s, want buying", result.Winner)
	}

	assertNear(t, "owner net worth", result.OwnerNetWorth, 183763.4642, 0.5)
	assertNear(t, "renter net worth", result.RenterNetWorth, 112393.7292, 0.5)
	assertNear(t, "wealth advantage", result.WealthAdvantage, 71369.7349, 0.5)
}

func TestResolveBreakEvenNeverReached(t *testing.T) {
	result := resolve(t, goldenInputs())

	if result.BreakEvenYear != nil {
		t.Errorf("break-even year = %d, want none", *result.BreakEvenYear)
	}
	if result.Winner != domain.WinnerRenting {
		t.Errorf("winner = %s, want renting", result.Winner)
	}

	assertNear(t, "owner net worth", result.OwnerNetWorth, 322427.6817, 0.5)
	assertNear(t, "renter net worth", result.RenterNetWorth, 559488.6846, 0.5)
	assertNear(t, "wealth advantage", result.WealthAdvantage, -237061.0029, 1.0)
	assertNear(t, "total own cash", result.TotalOwnCashSpent, 698440.00, 0.5)
	assertNear(t, "total rent cash", result.TotalRentCashSpent, 357673.03, 0.5)
}

func TestResolveLegacyOwnerTotalCreditsSaleProceeds(t *testing.T) {
	result := resolve(t, goldenInputs())

	// The legacy view nets the sale out of the final year; the cash-spent
	// view never does. The two must differ by exactly the owner's exit
	// wealth.
	want := result.TotalOwnCashSpent.Sub(result.OwnerNetWorth)
	if !result.TotalOwnPaid.Equal(want) {
		t.Errorf("legacy own total = %s, want %s",
			result.TotalOwnPaid.StringFixed(2), want.StringFixed(2))
	}
	assertNear(t, "legacy own total", result.TotalOwnPaid, 376012.3176, 1.0)
}

func TestResolveNetPresentValues(t *testing.T) {
	result := resolve(t, goldenInputs())

	if result.RentNPV == nil || result.OwnNPV == nil {
		t.Fatal("expected NPV fields with a positive discount rate")
	}
	assertNear(t, "rent NPV", *result.RentNPV, 287346.5344, 0.5)
	assertNear(t, "own NPV", *result.OwnNPV, 232030.2299, 0.5)

	in := goldenInputs()
	in.DiscountRate = decimal.Zero
	noDiscount := resolve(t, in)
	if noDiscount.RentNPV != nil || noDiscount.OwnNPV != nil {
		t.Error("expected no NPV fields with a zero discount rate")
	}
}

func TestResolveExactTieGoesToRenting(t *testing.T) {
	in := breakEvenInputs()
	cf := &CashFlowProjection{InitialOutlay: decimal.Zero}
	rows := []domain.YearlyProjection{{
		Year:                 1,
		RentCashOut:          decf(100),
		OwnCashOut:           decf(100),
		Equity:               decf(50),
		RenterPortfolioValue: decf(50),
	}}

	result := NewBreakEvenResolver().Resolve(in, cf, rows)
	if result.Winner != domain.WinnerRenting {
		t.Errorf("tie winner = %s, want renting", result.Winner)
	}
	if !result.WealthAdvantage.IsZero() {
		t.Errorf("tie wealth advantage = %s, want 0", result.WealthAdvantage)
	}
	if result.BreakEvenYear != nil {
		t.Error("equal cumulative cost must not count as a strict crossover")
	}
}

func TestResolveBreakEvenMonotonicInHomePriceGrowth(t *testing.T) {
	// Faster appreciation never pushes the cash break-even later.
	prev := -1
	for _, growth := range []float64{0.00, 0.01, 0.02, 0.03, 0.04, 0.05} {
		in := breakEvenInputs()
		in.HomePriceGrowth = decf(growth)

		result := resolve(t, in)
		if result.BreakEvenYear == nil {
			t.Fatalf("hg=%.2f: expected a break-even year", growth)
		}
		if prev >= 0 && *result.BreakEvenYear > prev {
			t.Errorf("hg=%.2f: break-even %d later than %d at lower growth",
				growth, *result.BreakEvenYear, prev)
		}
		prev = *result.BreakEvenYear
	}
}
