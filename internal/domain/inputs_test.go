package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() SimulationInputs {
	in := DefaultInputs()
	in.HomePrice = decimal.NewFromInt(620000)
	in.MonthlyRent = decimal.NewFromInt(2600)
	return in
}

func TestDerivedAmounts(t *testing.T) {
	in := validInputs()

	assert.True(t, in.DownPayment().Equal(decimal.NewFromInt(124000)))
	assert.True(t, in.ClosingCost().Equal(decimal.NewFromInt(18600)))
	assert.True(t, in.LoanAmount().Equal(decimal.NewFromInt(496000)))
	assert.True(t, in.InitialOutlay().Equal(decimal.NewFromInt(142600)))
}

func TestValidateAccepts(t *testing.T) {
	in := validInputs()
	require.NoError(t, in.Validate())

	// Negative growth is a legal market assumption.
	in.HomePriceGrowth = decimal.NewFromFloat(-0.05)
	in.InvestmentReturn = decimal.NewFromFloat(-0.02)
	require.NoError(t, in.Validate())
}

func TestValidateEnumeratesAllFields(t *testing.T) {
	in := validInputs()
	in.HomePrice = decimal.NewFromInt(-1)
	in.MaintenanceRate = decimal.NewFromFloat(-0.01)
	in.YearsHorizon = 40

	err := in.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)

	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["home_price"])
	assert.True(t, fields["maintenance_rate"])
	assert.True(t, fields["years_horizon"])
}

func TestValidateHorizonAgainstTerm(t *testing.T) {
	in := validInputs()
	in.TermYears = 15
	in.YearsHorizon = 15
	require.NoError(t, in.Validate())

	in.YearsHorizon = 16
	require.Error(t, in.Validate())
}

func TestApplyOverrides(t *testing.T) {
	base := DefaultInputs()
	price := decimal.NewFromInt(700000)
	zero := decimal.Zero
	horizon := 15

	ov := &InputOverrides{
		HomePrice:          &price,
		MortgageRateAnnual: &zero,
		YearsHorizon:       &horizon,
	}
	merged := ov.Apply(base)

	assert.True(t, merged.HomePrice.Equal(price))
	assert.True(t, merged.MortgageRateAnnual.IsZero())
	assert.Equal(t, 15, merged.YearsHorizon)
	// Untouched fields keep the base value.
	assert.True(t, merged.RentGrowth.Equal(base.RentGrowth))

	var nilOv *InputOverrides
	assert.Equal(t, base, nilOv.Apply(base))
}
