package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RateProvider supplies baseline financial rates. The static provider
// mirrors the documented defaults; a live source can replace it behind the
// same interface.
type RateProvider interface {
	MortgageRate() decimal.Decimal
	DiscountRate() decimal.Decimal
}

// StaticRateProvider returns fixed baseline rates.
type StaticRateProvider struct {
	mortgage decimal.Decimal
	discount decimal.Decimal
}

// NewStaticRateProvider creates the default provider.
func NewStaticRateProvider() *StaticRateProvider {
	return &StaticRateProvider{
		mortgage: decimal.NewFromFloat(0.068),
		discount: decimal.NewFromFloat(0.04),
	}
}

func (p *StaticRateProvider) MortgageRate() decimal.Decimal { return p.mortgage }
func (p *StaticRateProvider) DiscountRate() decimal.Decimal { return p.discount }

// CityProfile holds market assumptions for one metro area. Values override
// the global defaults when a scenario names the city.
type CityProfile struct {
	Name            string          `json:"name"`
	HomePrice       decimal.Decimal `json:"home_price"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	PropertyTaxRate decimal.Decimal `json:"property_tax_rate"`
	HomePriceGrowth decimal.Decimal `json:"home_price_growth"`
	RentGrowth      decimal.Decimal `json:"rent_growth"`
}

// Overrides converts the profile to scenario overrides.
func (cp *CityProfile) Overrides() domain.InputOverrides {
	hp, mr := cp.HomePrice, cp.MonthlyRent
	pt, hg, rg := cp.PropertyTaxRate, cp.HomePriceGrowth, cp.RentGrowth
	return domain.InputOverrides{
		HomePrice:       &hp,
		MonthlyRent:     &mr,
		PropertyTaxRate: &pt,
		HomePriceGrowth: &hg,
		RentGrowth:      &rg,
	}
}

// MarketDataProvider resolves city names to market profiles. Lookup is
// case-insensitive.
type MarketDataProvider struct {
	cities map[string]CityProfile
}

// NewMarketDataProvider creates a provider backed by the built-in table.
func NewMarketDataProvider() *MarketDataProvider {
	return &MarketDataProvider{cities: builtinCities()}
}

// City returns the profile for name.
func (mp *MarketDataProvider) City(name string) (*CityProfile, error) {
	profile, ok := mp.cities[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown city %q", name)
	}
	return &profile, nil
}

// Cities returns all known profiles sorted by name.
func (mp *MarketDataProvider) Cities() []CityProfile {
	out := make([]CityProfile, 0, len(mp.cities))
	for _, profile := range mp.cities {
		out = append(out, profile)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func builtinCities() map[string]CityProfile {
	profiles := []CityProfile{
		{
			Name:            "austin",
			HomePrice:       decimal.NewFromInt(550000),
			MonthlyRent:     decimal.NewFromInt(2100),
			PropertyTaxRate: decimal.NewFromFloat(0.018),
			HomePriceGrowth: decimal.NewFromFloat(0.030),
			RentGrowth:      decimal.NewFromFloat(0.028),
		},
		{
			Name:            "denver",
			HomePrice:       decimal.NewFromInt(600000),
			MonthlyRent:     decimal.NewFromInt(2200),
			PropertyTaxRate: decimal.NewFromFloat(0.0055),
			HomePriceGrowth: decimal.NewFromFloat(0.032),
			RentGrowth:      decimal.NewFromFloat(0.030),
		},
		{
			Name:            "seattle",
			HomePrice:       decimal.NewFromInt(850000),
			MonthlyRent:     decimal.NewFromInt(2400),
			PropertyTaxRate: decimal.NewFromFloat(0.0092),
			HomePriceGrowth: decimal.NewFromFloat(0.035),
			RentGrowth:      decimal.NewFromFloat(0.032),
		},
		{
			Name:            "phoenix",
			HomePrice:       decimal.NewFromInt(450000),
			MonthlyRent:     decimal.NewFromInt(1800),
			PropertyTaxRate: decimal.NewFromFloat(0.0066),
			HomePriceGrowth: decimal.NewFromFloat(0.028),
			RentGrowth:      decimal.NewFromFloat(0.026),
		},
		{
			Name:            "atlanta",
			HomePrice:       decimal.NewFromInt(420000),
			MonthlyRent:     decimal.NewFromInt(1900),
			PropertyTaxRate: decimal.NewFromFloat(0.0089),
			HomePriceGrowth: decimal.NewFromFloat(0.027),
			RentGrowth:      decimal.NewFromFloat(0.029),
		},
	}
	table := make(map[string]CityProfile, len(profiles))
	for _, p := range profiles {
		table[p.Name] = p
	}
	return table
}
