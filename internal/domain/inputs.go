package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationInputs is the immutable parameter set for a single rent-vs-buy
// scenario. All rate fields are fractional (0.05 = 5%). Growth and return
// rates may be negative; cost rates may not.
type SimulationInputs struct {
	HomePrice   decimal.Decimal `yaml:"home_price" json:"home_price"`
	MonthlyRent decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`

	DownPaymentPct     decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	MortgageRateAnnual decimal.Decimal `yaml:"mortgage_rate_annual" json:"mortgage_rate_annual"`
	PropertyTaxRate    decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	MaintenanceRate    decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`
	InsurancePerYear   decimal.Decimal `yaml:"insurance_per_year" json:"insurance_per_year"`
	HomePriceGrowth    decimal.Decimal `yaml:"home_price_growth" json:"home_price_growth"`
	RentGrowth         decimal.Decimal `yaml:"rent_growth" json:"rent_growth"`
	InvestmentReturn   decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	ClosingCostBuy     decimal.Decimal `yaml:"closing_cost_buy" json:"closing_cost_buy"`
	SellingCost        decimal.Decimal `yaml:"selling_cost" json:"selling_cost"`
	DiscountRate       decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`

	// YearsHorizon is the comparison window; it may be shorter than the
	// loan term, in which case the loan is still outstanding at exit.
	YearsHorizon int `yaml:"years_horizon" json:"years_horizon"`
	TermYears    int `yaml:"term_years" json:"term_years"`
}

// DefaultInputs returns the documented default parameter set. HomePrice and
// MonthlyRent have no defaults and must be supplied by the caller.
func DefaultInputs() SimulationInputs {
	return SimulationInputs{
		DownPaymentPct:     decimal.NewFromFloat(0.20),
		MortgageRateAnnual: decimal.NewFromFloat(0.068),
		PropertyTaxRate:    decimal.NewFromFloat(0.012),
		MaintenanceRate:    decimal.NewFromFloat(0.01),
		InsurancePerYear:   decimal.NewFromInt(1500),
		HomePriceGrowth:    decimal.NewFromFloat(0.025),
		RentGrowth:         decimal.NewFromFloat(0.03),
		InvestmentReturn:   decimal.NewFromFloat(0.07),
		ClosingCostBuy:     decimal.NewFromFloat(0.03),
		SellingCost:        decimal.NewFromFloat(0.06),
		DiscountRate:       decimal.NewFromFloat(0.04),
		YearsHorizon:       10,
		TermYears:          30,
	}
}

// DownPayment returns the up-front down payment amount.
func (si *SimulationInputs) DownPayment() decimal.Decimal {
	return si.HomePrice.Mul(si.DownPaymentPct)
}

// ClosingCost returns the one-time purchase closing cost amount.
func (si *SimulationInputs) ClosingCost() decimal.Decimal {
	return si.HomePrice.Mul(si.ClosingCostBuy)
}

// LoanAmount returns the financed principal.
func (si *SimulationInputs) LoanAmount() decimal.Decimal {
	return si.HomePrice.Sub(si.DownPayment())
}

// InitialOutlay returns the year-0 cash committed by the buyer. The same
// amount seeds the renter's investment portfolio so both paths start from
// identical capital.
func (si *SimulationInputs) InitialOutlay() decimal.Decimal {
	return si.DownPayment().Add(si.ClosingCost())
}

// InputOverrides carries caller-supplied parameter overrides. Nil fields
// fall back to the base value, so an explicit zero (e.g. a 0% mortgage
// rate) survives the merge.
type InputOverrides struct {
	HomePrice   *decimal.Decimal `yaml:"home_price" json:"home_price"`
	MonthlyRent *decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`

	DownPaymentPct     *decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct,omitempty"`
	MortgageRateAnnual *decimal.Decimal `yaml:"mortgage_rate_annual" json:"mortgage_rate_annual,omitempty"`
	PropertyTaxRate    *decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate,omitempty"`
	MaintenanceRate    *decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate,omitempty"`
	InsurancePerYear   *decimal.Decimal `yaml:"insurance_per_year" json:"insurance_per_year,omitempty"`
	HomePriceGrowth    *decimal.Decimal `yaml:"home_price_growth" json:"home_price_growth,omitempty"`
	RentGrowth         *decimal.Decimal `yaml:"rent_growth" json:"rent_growth,omitempty"`
	InvestmentReturn   *decimal.Decimal `yaml:"investment_return" json:"investment_return,omitempty"`
	ClosingCostBuy     *decimal.Decimal `yaml:"closing_cost_buy" json:"closing_cost_buy,omitempty"`
	SellingCost        *decimal.Decimal `yaml:"selling_cost" json:"selling_cost,omitempty"`
	DiscountRate       *decimal.Decimal `yaml:"discount_rate" json:"discount_rate,omitempty"`

	YearsHorizon *int `yaml:"years_horizon" json:"years_horizon,omitempty"`
	TermYears    *int `yaml:"term_years" json:"term_years,omitempty"`
}

// Apply merges the overrides onto base and returns the result by value.
func (ov *InputOverrides) Apply(base SimulationInputs) SimulationInputs {
	merged := base
	if ov == nil {
		return merged
	}
	if ov.HomePrice != nil {
		merged.HomePrice = *ov.HomePrice
	}
	if ov.MonthlyRent != nil {
		merged.MonthlyRent = *ov.MonthlyRent
	}
	if ov.DownPaymentPct != nil {
		merged.DownPaymentPct = *ov.DownPaymentPct
	}
	if ov.MortgageRateAnnual != nil {
		merged.MortgageRateAnnual = *ov.MortgageRateAnnual
	}
	if ov.PropertyTaxRate != nil {
		merged.PropertyTaxRate = *ov.PropertyTaxRate
	}
	if ov.MaintenanceRate != nil {
		merged.MaintenanceRate = *ov.MaintenanceRate
	}
	if ov.InsurancePerYear != nil {
		merged.InsurancePerYear = *ov.InsurancePerYear
	}
	if ov.HomePriceGrowth != nil {
		merged.HomePriceGrowth = *ov.HomePriceGrowth
	}
	if ov.RentGrowth != nil {
		merged.RentGrowth = *ov.RentGrowth
	}
	if ov.InvestmentReturn != nil {
		merged.InvestmentReturn = *ov.InvestmentReturn
	}
	if ov.ClosingCostBuy != nil {
		merged.ClosingCostBuy = *ov.ClosingCostBuy
	}
	if ov.SellingCost != nil {
		merged.SellingCost = *ov.SellingCost
	}
	if ov.DiscountRate != nil {
		merged.DiscountRate = *ov.DiscountRate
	}
	if ov.YearsHorizon != nil {
		merged.YearsHorizon = *ov.YearsHorizon
	}
	if ov.TermYears != nil {
		merged.TermYears = *ov.TermYears
	}
	return merged
}

// QualitativeContext carries optional advisory flags about the user's
// situation. They influence recommendations only, never the numbers.
type QualitativeContext struct {
	HighDebt    bool `yaml:"high_debt" json:"high_debt,omitempty"`
	UnstableJob bool `yaml:"unstable_job" json:"unstable_job,omitempty"`
}
