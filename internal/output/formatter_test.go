package output

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureResult(t *testing.T) *domain.SimulationResult {
	t.Helper()
	in := domain.DefaultInputs()
	in.HomePrice = decimal.NewFromInt(620000)
	in.MonthlyRent = decimal.NewFromInt(2600)

	result, err := calculation.NewCalculationEngine().RunScenario(context.Background(), &in)
	require.NoError(t, err)
	return result
}

func TestNewFormatterSelection(t *testing.T) {
	for _, format := range []string{"console", "json", "csv", ""} {
		f, err := NewFormatter(format)
		require.NoError(t, err, format)
		require.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
}

func TestConsoleFormat(t *testing.T) {
	text, err := NewConsoleFormatter().Format(fixtureResult(t))
	require.NoError(t, err)

	assert.Contains(t, text, "RENT VS BUY COMPARISON")
	assert.Contains(t, text, "$620,000.00")
	assert.Contains(t, text, "Verdict: RENTING")
	assert.Contains(t, text, "Cash break-even:   not reached")
	// One line per year plus header and summary.
	assert.GreaterOrEqual(t, strings.Count(text, "\n"), 10)
}

func TestJSONFormatRoundTrips(t *testing.T) {
	text, err := NewJSONFormatter().Format(fixtureResult(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, "renting", decoded["winner"])
	assert.Contains(t, decoded, "wealth_advantage")
	assert.Contains(t, decoded, "total_own_true_cost")
}

func TestCSVFormat(t *testing.T) {
	text, err := NewCSVFormatter().Format(fixtureResult(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 11) // header + 10 years
	assert.Equal(t,
		"year,rent_cash_out,own_cash_out,home_value,remaining_balance,equity,renter_portfolio_value",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasPrefix(lines[10], "10,"))
}

func TestBuildDisplayPayload(t *testing.T) {
	result := fixtureResult(t)
	rec := calculation.NewRecommendationAdvisor().Advise(result, domain.QualitativeContext{})

	payload := BuildDisplayPayload(result, rec)

	assert.Equal(t, "renting", payload.Summary.Winner)
	assert.Equal(t, 10, payload.Summary.TimeHorizonYears)
	assert.Nil(t, payload.Summary.BreakEvenYear)
	assert.Equal(t, "Not reached", payload.KeyMetrics.BreakEven)

	// Labels cover year 0 through the horizon.
	require.Len(t, payload.ChartData.Labels, 11)
	assert.Equal(t, 0, payload.ChartData.Labels[0])
	assert.Equal(t, 10, payload.ChartData.Labels[10])

	require.Len(t, payload.ChartData.Datasets, 2)
	renting, buying := payload.ChartData.Datasets[0], payload.ChartData.Datasets[1]
	assert.Equal(t, "Renting", renting.Name)
	assert.Equal(t, "#ef4444", renting.Color)
	assert.Equal(t, "Buying", buying.Name)
	assert.Equal(t, "#3b82f6", buying.Color)

	// The renter starts at zero, the buyer at the initial outlay; both
	// series are cumulative and therefore non-decreasing.
	assert.Equal(t, 0.0, renting.Data[0])
	assert.InDelta(t, 142600.0, buying.Data[0], 0.01)
	for i := 1; i < len(renting.Data); i++ {
		assert.GreaterOrEqual(t, renting.Data[i], renting.Data[i-1])
		assert.GreaterOrEqual(t, buying.Data[i], buying.Data[i-1])
	}

	assert.Nil(t, payload.ChartData.CrossoverPoint)
	assert.Equal(t, rec, payload.Recommendation)

	// Totals divide evenly into averages.
	months := decimal.NewFromInt(120)
	wantMonthly := result.TotalRentCashSpent.Div(months).Round(2)
	assert.True(t, payload.CashFlow.Rent.MonthlyAvg.Equal(wantMonthly))
}

func TestSummarizeResultDeterministic(t *testing.T) {
	result := fixtureResult(t)

	first := SummarizeResult(result)
	second := SummarizeResult(result)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Renting wins over 10 years")
	assert.Contains(t, first, "never fall below rent")
}
