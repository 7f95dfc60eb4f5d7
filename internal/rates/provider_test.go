package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRates(t *testing.T) {
	p := NewStaticRateProvider()
	assert.True(t, p.MortgageRate().Equal(decimal.NewFromFloat(0.068)))
	assert.True(t, p.DiscountRate().Equal(decimal.NewFromFloat(0.04)))
}

func TestCityLookupCaseInsensitive(t *testing.T) {
	mp := NewMarketDataProvider()

	for _, name := range []string{"austin", "Austin", " AUSTIN "} {
		profile, err := mp.City(name)
		require.NoError(t, err, name)
		assert.Equal(t, "austin", profile.Name)
	}

	_, err := mp.City("gotham")
	require.Error(t, err)
}

func TestCitiesSorted(t *testing.T) {
	cities := NewMarketDataProvider().Cities()
	require.NotEmpty(t, cities)
	for i := 1; i < len(cities); i++ {
		assert.Less(t, cities[i-1].Name, cities[i].Name)
	}
}

func TestCityOverrides(t *testing.T) {
	mp := NewMarketDataProvider()
	profile, err := mp.City("denver")
	require.NoError(t, err)

	ov := profile.Overrides()
	require.NotNil(t, ov.HomePrice)
	assert.True(t, ov.HomePrice.Equal(profile.HomePrice))
	require.NotNil(t, ov.RentGrowth)
	assert.True(t, ov.RentGrowth.Equal(profile.RentGrowth))
	// Rate fields stay with the caller's defaults.
	assert.Nil(t, ov.MortgageRateAnnual)
	assert.Nil(t, ov.InvestmentReturn)
}
