package output

import (
	"fmt"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// Formatter renders a simulation result for a particular output target.
type Formatter interface {
	Format(result *domain.SimulationResult) (string, error)
}

// NewFormatter returns the formatter for the named format. Supported:
// console, json, csv.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console", "":
		return NewConsoleFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
