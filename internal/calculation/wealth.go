package calculation

import (
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// WealthTracker derives the owner's equity trajectory and the renter's
// investment-portfolio trajectory from a cash-flow projection.
type WealthTracker struct{}

// NewWealthTracker creates a new wealth tracker.
func NewWealthTracker() *WealthTracker {
	return &WealthTracker{}
}

// Track builds the per-year wealth rows. The renter's portfolio starts at
// the owner's initial outlay (the capital not spent on the purchase) and
// each year compounds at the investment return plus the positive part of
// that year's ownership-minus-rent difference. The rule is deliberately
// asymmetric: in years when renting is the more expensive path the renter
// covers the overspend from income, not by drawing down the portfolio.
// Selling costs come off the owner's equity at the horizon year only.
func (wt *WealthTracker) Track(in *domain.SimulationInputs, cf *CashFlowProjection) []domain.YearlyProjection {
	growthFactor := one.Add(in.InvestmentReturn)
	portfolio := cf.InitialOutlay

	rows := make([]domain.YearlyProjection, 0, len(cf.Years))
	for i, year := range cf.Years {
		surplus := year.OwnCashOut.Sub(year.RentCashOut)
		if surplus.IsNegative() {
			surplus = decimal.Zero
		}
		portfolio = portfolio.Mul(growthFactor).Add(surplus)

		equity := year.HomeValue.Sub(year.RemainingBalance)
		if i == len(cf.Years)-1 {
			equity = equity.Sub(in.SellingCost.Mul(year.HomeValue))
		}

		rows = append(rows, domain.YearlyProjection{
			Year:                 year.Year,
			RentCashOut:          year.RentCashOut,
			OwnCashOut:           year.OwnCashOut,
			HomeValue:            year.HomeValue,
			RemainingBalance:     year.RemainingBalance,
			Equity:               equity,
			RenterPortfolioValue: portfolio,
		})
	}

	return rows
}
