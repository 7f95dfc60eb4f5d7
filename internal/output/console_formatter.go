package output

import (
	"fmt"
	"strings"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// ConsoleFormatter renders a human-readable report for terminal output.
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// Format renders the summary, the per-year table and the headline verdict.
func (cf *ConsoleFormatter) Format(result *domain.SimulationResult) (string, error) {
	var b strings.Builder

	b.WriteString("RENT VS BUY COMPARISON\n")
	b.WriteString(strings.Repeat("=", 78) + "\n\n")

	fmt.Fprintf(&b, "Home price:        %s\n", FormatCurrency(result.Inputs.HomePrice))
	fmt.Fprintf(&b, "Monthly rent:      %s\n", FormatCurrency(result.Inputs.MonthlyRent))
	fmt.Fprintf(&b, "Mortgage rate:     %s over %d years\n",
		FormatPercentage(result.Inputs.MortgageRateAnnual), result.Inputs.TermYears)
	fmt.Fprintf(&b, "Monthly payment:   %s\n", FormatCurrency(result.MonthlyPayment))
	fmt.Fprintf(&b, "Down payment:      %s  Closing: %s\n\n",
		FormatCurrency(result.DownPayment), FormatCurrency(result.ClosingCost))

	b.WriteString(fmt.Sprintf("%-5s %15s %15s %15s %15s\n",
		"Year", "Rent Cash", "Own Cash", "Equity", "Portfolio"))
	b.WriteString(strings.Repeat("-", 78) + "\n")
	for _, row := range result.Years {
		fmt.Fprintf(&b, "%-5d %15s %15s %15s %15s\n",
			row.Year,
			FormatCurrency(row.RentCashOut),
			FormatCurrency(row.OwnCashOut),
			FormatCurrency(row.Equity),
			FormatCurrency(row.RenterPortfolioValue))
	}
	b.WriteString(strings.Repeat("-", 78) + "\n\n")

	fmt.Fprintf(&b, "Total rent spent:  %s\n", FormatCurrency(result.TotalRentCashSpent))
	fmt.Fprintf(&b, "Total own spent:   %s\n", FormatCurrency(result.TotalOwnCashSpent))
	fmt.Fprintf(&b, "Owner net worth:   %s\n", FormatCurrency(result.OwnerNetWorth))
	fmt.Fprintf(&b, "Renter net worth:  %s\n", FormatCurrency(result.RenterNetWorth))
	fmt.Fprintf(&b, "Wealth advantage:  %s (positive favors buying)\n",
		FormatCurrency(result.WealthAdvantage))

	if result.BreakEvenYear != nil {
		fmt.Fprintf(&b, "Cash break-even:   year %d\n", *result.BreakEvenYear)
	} else {
		b.WriteString("Cash break-even:   not reached\n")
	}

	if result.RentNPV != nil && result.OwnNPV != nil {
		fmt.Fprintf(&b, "NPV (rent / own):  %s / %s at %s discount\n",
			FormatCurrency(*result.RentNPV), FormatCurrency(*result.OwnNPV),
			FormatPercentage(result.Inputs.DiscountRate))
	}

	fmt.Fprintf(&b, "\nVerdict: %s\n", strings.ToUpper(result.Winner))

	return b.String(), nil
}
