package calculation

import (
	"testing"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// goldenInputs is a 620k purchase vs 2,600/mo rent on default assumptions.
func goldenInputs() *domain.SimulationInputs {
	in := domain.DefaultInputs()
	in.HomePrice = decf(620000)
	in.MonthlyRent = decf(2600)
	return &in
}

func TestProjectGoldenScenario(t *testing.T) {
	cp := NewCashFlowProjector(NewAmortizationEngine())

	cf := cp.Project(goldenInputs())
	if len(cf.Years) != 10 {
		t.Fatalf("expected 10 years, got %d", len(cf.Years))
	}

	// Down payment 124,000 plus closing 18,600.
	if got := cf.InitialOutlay.StringFixed(2); got != "142600.00" {
		t.Errorf("initial outlay = %s, want 142600.00", got)
	}
	assertNear(t, "monthly payment", cf.MonthlyPayment, 3233.5489, 0.01)

	first := cf.Years[0]
	if got := first.RentCashOut.StringFixed(2); got != "31200.00" {
		t.Errorf("year-1 rent = %s, want 31200.00", got)
	}
	assertNear(t, "year-1 own", first.OwnCashOut, 53942.5872, 0.05)

	last := cf.Years[9]
	assertNear(t, "year-10 rent", last.RentCashOut, 40708.9233, 0.05)
	assertNear(t, "year-10 own", last.OwnCashOut, 57337.0781, 0.05)
	assertNear(t, "year-10 home value", last.HomeValue, 793652.4174, 0.5)
	assertNear(t, "year-10 balance", last.RemainingBalance, 423605.5907, 0.5)
}

func TestProjectCarryingCostsUseStartOfYearValue(t *testing.T) {
	in := goldenInputs()
	cp := NewCashFlowProjector(NewAmortizationEngine())
	cf := cp.Project(in)

	// Year 1 carrying costs are assessed on the purchase price, not the
	// appreciated end-of-year value.
	annualMortgage := cf.MonthlyPayment.Mul(decimal.NewFromInt(12))
	carry := in.PropertyTaxRate.Add(in.MaintenanceRate).Mul(in.HomePrice)
	want := annualMortgage.Add(carry).Add(in.InsurancePerYear)

	if !cf.Years[0].OwnCashOut.Equal(want) {
		t.Errorf("year-1 own = %s, want %s",
			cf.Years[0].OwnCashOut.StringFixed(4), want.StringFixed(4))
	}
}

func TestProjectRentEscalatesOncePerYear(t *testing.T) {
	cp := NewCashFlowProjector(NewAmortizationEngine())
	cf := cp.Project(goldenInputs())

	growth := one.Add(decf(0.03))
	for i := 1; i < len(cf.Years); i++ {
		want := cf.Years[i-1].RentCashOut.Mul(growth)
		if !cf.Years[i].RentCashOut.Equal(want) {
			t.Errorf("year %d rent = %s, want %s",
				cf.Years[i].Year, cf.Years[i].RentCashOut.StringFixed(4), want.StringFixed(4))
		}
	}
}
