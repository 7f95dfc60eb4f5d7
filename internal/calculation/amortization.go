package calculation

import (
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve = decimal.NewFromInt(12)
	one    = decimal.NewFromInt(1)
)

// AmortizationEngine computes fixed-rate loan payments and per-year
// principal/interest splits by simulating the monthly schedule.
type AmortizationEngine struct{}

// NewAmortizationEngine creates a new amortization engine.
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{}
}

// MonthlyPayment returns the fixed monthly payment for a loan of the given
// principal, annual rate and term in years, using the standard annuity
// formula. A zero rate is handled as straight-line repayment rather than by
// taking the formula limit.
func (ae *AmortizationEngine) MonthlyPayment(loan, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	periods := int64(termYears) * 12
	if annualRate.IsZero() {
		return loan.Div(decimal.NewFromInt(periods))
	}

	i := annualRate.Div(twelve)
	factor := one.Add(i).Pow(decimal.NewFromInt(periods))
	// M = L*i*(1+i)^n / ((1+i)^n - 1)
	return loan.Mul(i).Mul(factor).Div(factor.Sub(one))
}

// Schedule simulates the loan month by month and returns one cumulative
// record per year for years 1..throughYear. Interest accrues on the
// outstanding balance each month; principal is the remainder of the fixed
// payment. The balance is clamped at zero and forced to exactly zero at the
// final term year to absorb rounding drift.
func (ae *AmortizationEngine) Schedule(loan, annualRate decimal.Decimal, termYears, throughYear int) []domain.AmortizationYearRecord {
	if throughYear > termYears {
		throughYear = termYears
	}

	payment := ae.MonthlyPayment(loan, annualRate, termYears)
	monthlyRate := annualRate.Div(twelve)

	records := make([]domain.AmortizationYearRecord, 0, throughYear)
	balance := loan
	cumPrincipal := decimal.Zero
	cumInterest := decimal.Zero

	for year := 1; year <= throughYear; year++ {
		for month := 0; month < 12; month++ {
			if balance.IsZero() {
				break
			}
			interest := balance.Mul(monthlyRate)
			principal := payment.Sub(interest)
			if principal.GreaterThan(balance) {
				principal = balance
			}
			balance = balance.Sub(principal)
			cumPrincipal = cumPrincipal.Add(principal)
			cumInterest = cumInterest.Add(interest)
		}
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		if year == termYears {
			// Rounding-safety net: the schedule must retire the loan.
			cumPrincipal = cumPrincipal.Add(balance)
			balance = decimal.Zero
		}
		records = append(records, domain.AmortizationYearRecord{
			Year:             year,
			PrincipalPaid:    cumPrincipal,
			InterestPaid:     cumInterest,
			RemainingBalance: balance,
		})
	}

	return records
}
