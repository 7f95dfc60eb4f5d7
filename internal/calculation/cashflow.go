package calculation

import (
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CashFlowYear holds one projected year of raw outflows before any wealth
// accounting. HomeValue is the end-of-year value; carrying costs (tax,
// maintenance) are assessed on the value at the start of the year.
type CashFlowYear struct {
	Year             int
	RentCashOut      decimal.Decimal
	OwnCashOut       decimal.Decimal
	HomeValue        decimal.Decimal
	RemainingBalance decimal.Decimal
}

// CashFlowProjection is the full outflow series for one scenario. Produced
// once and treated as read-only by downstream stages.
type CashFlowProjection struct {
	// InitialOutlay is the year-0 purchase cash: down payment plus
	// closing costs. Attributed to the owner only.
	InitialOutlay  decimal.Decimal
	MonthlyPayment decimal.Decimal
	Years          []CashFlowYear
}

// CashFlowProjector builds per-year rent and ownership outflow sequences
// under the configured growth assumptions.
type CashFlowProjector struct {
	Amort *AmortizationEngine
}

// NewCashFlowProjector creates a projector backed by the given
// amortization engine.
func NewCashFlowProjector(amort *AmortizationEngine) *CashFlowProjector {
	return &CashFlowProjector{Amort: amort}
}

// Project builds the outflow series for years 1..YearsHorizon. Rent is
// fixed within a year and escalated once per year; ownership cost is the
// year's mortgage principal+interest plus tax, maintenance and insurance.
func (cp *CashFlowProjector) Project(in *domain.SimulationInputs) *CashFlowProjection {
	loan := in.LoanAmount()
	payment := cp.Amort.MonthlyPayment(loan, in.MortgageRateAnnual, in.TermYears)
	schedule := cp.Amort.Schedule(loan, in.MortgageRateAnnual, in.TermYears, in.YearsHorizon)
	annualMortgage := payment.Mul(twelve)

	rentGrowthFactor := one.Add(in.RentGrowth)
	priceGrowthFactor := one.Add(in.HomePriceGrowth)
	carryRate := in.PropertyTaxRate.Add(in.MaintenanceRate)

	years := make([]CashFlowYear, 0, in.YearsHorizon)
	annualRent := in.MonthlyRent.Mul(twelve)
	homeValue := in.HomePrice

	for y := 1; y <= in.YearsHorizon; y++ {
		startValue := homeValue
		homeValue = homeValue.Mul(priceGrowthFactor)

		years = append(years, CashFlowYear{
			Year:             y,
			RentCashOut:      annualRent,
			OwnCashOut:       annualMortgage.Add(carryRate.Mul(startValue)).Add(in.InsurancePerYear),
			HomeValue:        homeValue,
			RemainingBalance: schedule[y-1].RemainingBalance,
		})

		annualRent = annualRent.Mul(rentGrowthFactor)
	}

	return &CashFlowProjection{
		InitialOutlay:  in.InitialOutlay(),
		MonthlyPayment: payment,
		Years:          years,
	}
}
