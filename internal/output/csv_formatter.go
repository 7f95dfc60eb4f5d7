package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// CSVFormatter renders the per-year projection as CSV for spreadsheets.
type CSVFormatter struct{}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes one row per simulated year.
func (cf *CSVFormatter) Format(result *domain.SimulationResult) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"year", "rent_cash_out", "own_cash_out", "home_value",
		"remaining_balance", "equity", "renter_portfolio_value",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range result.Years {
		record := []string{
			strconv.Itoa(row.Year),
			row.RentCashOut.StringFixed(2),
			row.OwnCashOut.StringFixed(2),
			row.HomeValue.StringFixed(2),
			row.RemainingBalance.StringFixed(2),
			row.Equity.StringFixed(2),
			row.RenterPortfolioValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return b.String(), nil
}
