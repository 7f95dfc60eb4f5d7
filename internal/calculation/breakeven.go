package calculation

import (
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenResolver scans the projected series for the cash crossover year
// and computes the wealth-based summary deltas.
type BreakEvenResolver struct{}

// NewBreakEvenResolver creates a new resolver.
func NewBreakEvenResolver() *BreakEvenResolver {
	return &BreakEvenResolver{}
}

// Resolve aggregates a cash-flow projection and its wealth rows into a
// SimulationResult.
//
// Two crossovers are computed. The cash break-even is the first year whose
// cumulative ownership outflow (including the year-0 outlay) drops strictly
// below cumulative rent; nil when never reached inside the horizon. The
// wealth comparison uses net position per side (cash spent minus wealth
// accumulated); the lower net position wins and an exact tie goes to
// renting.
func (br *BreakEvenResolver) Resolve(in *domain.SimulationInputs, cf *CashFlowProjection, rows []domain.YearlyProjection) *domain.SimulationResult {
	cumOwn := cf.InitialOutlay
	cumRent := decimal.Zero
	var breakEvenYear *int

	for _, row := range rows {
		cumOwn = cumOwn.Add(row.OwnCashOut)
		cumRent = cumRent.Add(row.RentCashOut)
		if breakEvenYear == nil && cumOwn.LessThan(cumRent) {
			y := row.Year
			breakEvenYear = &y
		}
	}

	final := rows[len(rows)-1]
	ownerNetWorth := final.Equity // already net of selling costs at the horizon
	renterNetWorth := final.RenterPortfolioValue

	totalRentCash := cumRent
	totalOwnCash := cumOwn

	// Legacy view: credit the owner's sale proceeds against cost in the
	// final year. Kept as an independent computation, not derived from
	// the cash-spent totals.
	totalOwnPaid := cf.InitialOutlay
	for i, row := range rows {
		flow := row.OwnCashOut
		if i == len(rows)-1 {
			flow = flow.Sub(ownerNetWorth)
		}
		totalOwnPaid = totalOwnPaid.Add(flow)
	}
	totalRentPaid := totalRentCash

	netPositionOwn := totalOwnCash.Sub(ownerNetWorth)
	netPositionRent := totalRentCash.Sub(renterNetWorth)
	costDifference := netPositionOwn.Sub(netPositionRent)

	winner := domain.WinnerBuying
	if netPositionOwn.GreaterThanOrEqual(netPositionRent) {
		winner = domain.WinnerRenting
	}

	result := &domain.SimulationResult{
		Inputs:             *in,
		MonthlyPayment:     cf.MonthlyPayment,
		DownPayment:        in.DownPayment(),
		ClosingCost:        in.ClosingCost(),
		Years:              rows,
		TotalRentCashSpent: totalRentCash,
		TotalOwnCashSpent:  totalOwnCash,
		TotalRentPaid:      totalRentPaid,
		TotalOwnPaid:       totalOwnPaid,
		NetProceeds:        ownerNetWorth,
		OwnerNetWorth:      ownerNetWorth,
		RenterNetWorth:     renterNetWorth,
		NetPositionOwn:     netPositionOwn,
		NetPositionRent:    netPositionRent,
		CostDifference:     costDifference,
		WealthAdvantage:    ownerNetWorth.Sub(renterNetWorth),
		Winner:             winner,
		BreakEvenYear:      breakEvenYear,
	}

	if in.DiscountRate.IsPositive() {
		rentNPV, ownNPV := br.netPresentValues(in, rows, ownerNetWorth)
		result.RentNPV = &rentNPV
		result.OwnNPV = &ownNPV
	}

	return result
}

// netPresentValues discounts both annual cash-flow series starting at year
// 1 (the year-0 outlay is already in present dollars and is excluded). The
// ownership series credits net sale proceeds in the horizon year, matching
// the legacy total.
func (br *BreakEvenResolver) netPresentValues(in *domain.SimulationInputs, rows []domain.YearlyProjection, netProceeds decimal.Decimal) (rentNPV, ownNPV decimal.Decimal) {
	discountFactor := one.Add(in.DiscountRate)
	for i, row := range rows {
		ownFlow := row.OwnCashOut
		if i == len(rows)-1 {
			ownFlow = ownFlow.Sub(netProceeds)
		}
		divisor := discountFactor.Pow(decimal.NewFromInt(int64(row.Year)))
		rentNPV = rentNPV.Add(row.RentCashOut.Div(divisor))
		ownNPV = ownNPV.Add(ownFlow.Div(divisor))
	}
	return rentNPV, ownNPV
}
