package output

import (
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Chart series colors match the web front end's palette.
const (
	rentingColor = "#ef4444"
	buyingColor  = "#3b82f6"
)

// DisplaySummary is the headline block of the formatted payload.
type DisplaySummary struct {
	Winner           string          `json:"winner"`
	CostDifference   decimal.Decimal `json:"cost_difference"`
	BreakEvenYear    *int            `json:"break_even_year"`
	TimeHorizonYears int             `json:"time_horizon_years"`
}

// DisplayKeyMetrics holds pre-formatted headline figures.
type DisplayKeyMetrics struct {
	BreakEven   string `json:"break_even"`
	TotalCost   string `json:"total_cost"`
	HomeEquity  string `json:"home_equity"`
	Maintenance string `json:"maintenance"`
}

// DisplayWealthMetrics compares terminal wealth per side.
type DisplayWealthMetrics struct {
	RenterPortfolio decimal.Decimal `json:"renter_portfolio"`
	OwnerEquity     decimal.Decimal `json:"owner_equity"`
	WealthAdvantage decimal.Decimal `json:"wealth_advantage"`
}

// DisplayCashFlowSide aggregates one side's outflows.
type DisplayCashFlowSide struct {
	Total      decimal.Decimal `json:"total"`
	MonthlyAvg decimal.Decimal `json:"monthly_avg"`
	YearlyAvg  decimal.Decimal `json:"yearly_avg"`
}

// DisplayCashFlow holds both sides' aggregates.
type DisplayCashFlow struct {
	Rent DisplayCashFlowSide `json:"rent"`
	Own  DisplayCashFlowSide `json:"own"`
}

// ChartDataset is one cumulative series for the comparison chart.
type ChartDataset struct {
	Name  string    `json:"name"`
	Data  []float64 `json:"data"`
	Color string    `json:"color"`
}

// ChartData is the chart payload: labels for years 0..horizon, one
// cumulative-cost series per side and the crossover year if reached.
type ChartData struct {
	Labels         []int          `json:"labels"`
	Datasets       []ChartDataset `json:"datasets"`
	CrossoverPoint *int           `json:"crossover_point"`
}

// DisplayPayload is the formatted response consumed by UI clients.
type DisplayPayload struct {
	Summary        DisplaySummary               `json:"summary"`
	KeyMetrics     DisplayKeyMetrics            `json:"key_metrics"`
	WealthMetrics  DisplayWealthMetrics         `json:"wealth_metrics"`
	CashFlow       DisplayCashFlow              `json:"cash_flow"`
	ChartData      ChartData                    `json:"chart_data"`
	Recommendation *domain.RecommendationBundle `json:"recommendation"`
}

// BuildDisplayPayload shapes a simulation result and its recommendation
// bundle into the formatted payload. Pure transformation; nothing here
// recomputes simulation semantics.
func BuildDisplayPayload(result *domain.SimulationResult, rec *domain.RecommendationBundle) *DisplayPayload {
	horizon := result.Inputs.YearsHorizon
	months := decimal.NewFromInt(int64(horizon * 12))
	years := decimal.NewFromInt(int64(horizon))

	breakEvenText := "Not reached"
	if result.BreakEvenYear != nil {
		breakEvenText = "Year " + decimal.NewFromInt(int64(*result.BreakEvenYear)).String()
	}

	return &DisplayPayload{
		Summary: DisplaySummary{
			Winner:           result.Winner,
			CostDifference:   result.CostDifference,
			BreakEvenYear:    result.BreakEvenYear,
			TimeHorizonYears: horizon,
		},
		KeyMetrics: DisplayKeyMetrics{
			BreakEven:   breakEvenText,
			TotalCost:   FormatCurrency(result.CostDifference.Abs()),
			HomeEquity:  FormatCurrency(result.OwnerNetWorth),
			Maintenance: FormatCurrency(totalMaintenance(&result.Inputs)),
		},
		WealthMetrics: DisplayWealthMetrics{
			RenterPortfolio: result.RenterNetWorth,
			OwnerEquity:     result.OwnerNetWorth,
			WealthAdvantage: result.WealthAdvantage,
		},
		CashFlow: DisplayCashFlow{
			Rent: DisplayCashFlowSide{
				Total:      result.TotalRentCashSpent,
				MonthlyAvg: result.TotalRentCashSpent.Div(months).Round(2),
				YearlyAvg:  result.TotalRentCashSpent.Div(years).Round(2),
			},
			Own: DisplayCashFlowSide{
				Total:      result.TotalOwnCashSpent,
				MonthlyAvg: result.TotalOwnCashSpent.Div(months).Round(2),
				YearlyAvg:  result.TotalOwnCashSpent.Div(years).Round(2),
			},
		},
		ChartData:      buildChartData(result),
		Recommendation: rec,
	}
}

// buildChartData produces cumulative cash-out series including year 0,
// where the buyer carries the initial outlay and the renter starts at zero.
func buildChartData(result *domain.SimulationResult) ChartData {
	n := len(result.Years)
	labels := make([]int, 0, n+1)
	rentSeries := make([]float64, 0, n+1)
	ownSeries := make([]float64, 0, n+1)

	labels = append(labels, 0)
	rentSeries = append(rentSeries, 0)
	cumRent := decimal.Zero
	cumOwn := result.DownPayment.Add(result.ClosingCost)
	ownSeries = append(ownSeries, round2(cumOwn))

	for _, row := range result.Years {
		cumRent = cumRent.Add(row.RentCashOut)
		cumOwn = cumOwn.Add(row.OwnCashOut)
		labels = append(labels, row.Year)
		rentSeries = append(rentSeries, round2(cumRent))
		ownSeries = append(ownSeries, round2(cumOwn))
	}

	return ChartData{
		Labels: labels,
		Datasets: []ChartDataset{
			{Name: "Renting", Data: rentSeries, Color: rentingColor},
			{Name: "Buying", Data: ownSeries, Color: buyingColor},
		},
		CrossoverPoint: result.BreakEvenYear,
	}
}

// totalMaintenance sums the maintenance component over the horizon. It is
// assessed on the start-of-year home value, matching the projection.
func totalMaintenance(in *domain.SimulationInputs) decimal.Decimal {
	total := decimal.Zero
	value := in.HomePrice
	growth := decimal.NewFromInt(1).Add(in.HomePriceGrowth)
	for y := 1; y <= in.YearsHorizon; y++ {
		total = total.Add(value.Mul(in.MaintenanceRate))
		value = value.Mul(growth)
	}
	return total
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
