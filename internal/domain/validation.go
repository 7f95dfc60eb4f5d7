package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every offending field so a caller can report
// the whole problem in one pass instead of fixing fields one at a time.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve))
	for i, fe := range ve {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "invalid inputs: " + strings.Join(parts, "; ")
}

var (
	rateFloor = decimal.NewFromInt(-1)
	rateCeil  = decimal.NewFromInt(1)
)

// Validate checks the full parameter set and returns a ValidationErrors
// listing every offending field, or nil when the inputs are usable.
func (si *SimulationInputs) Validate() error {
	var errs ValidationErrors

	addErr := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}
	checkRate := func(field string, v decimal.Decimal, allowNegative bool) {
		if v.LessThan(rateFloor) || v.GreaterThan(rateCeil) {
			addErr(field, "must be a fraction between -1 and 1")
			return
		}
		if !allowNegative && v.IsNegative() {
			addErr(field, "cannot be negative")
		}
	}

	if si.HomePrice.LessThanOrEqual(decimal.Zero) {
		addErr("home_price", "must be positive")
	}
	if si.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		addErr("monthly_rent", "must be positive")
	}

	checkRate("down_payment_pct", si.DownPaymentPct, false)
	checkRate("mortgage_rate_annual", si.MortgageRateAnnual, false)
	checkRate("property_tax_rate", si.PropertyTaxRate, false)
	checkRate("maintenance_rate", si.MaintenanceRate, false)
	checkRate("closing_cost_buy", si.ClosingCostBuy, false)
	checkRate("selling_cost", si.SellingCost, false)
	checkRate("discount_rate", si.DiscountRate, false)
	checkRate("home_price_growth", si.HomePriceGrowth, true)
	checkRate("rent_growth", si.RentGrowth, true)
	checkRate("investment_return", si.InvestmentReturn, true)

	if si.InsurancePerYear.IsNegative() {
		addErr("insurance_per_year", "cannot be negative")
	}
	if si.TermYears <= 0 {
		addErr("term_years", "must be positive")
	}
	if si.YearsHorizon <= 0 {
		addErr("years_horizon", "must be positive")
	} else if si.TermYears > 0 && si.YearsHorizon > si.TermYears {
		addErr("years_horizon", fmt.Sprintf("cannot exceed term_years (%d)", si.TermYears))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
