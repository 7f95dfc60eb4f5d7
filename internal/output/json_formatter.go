package output

import (
	"encoding/json"
	"fmt"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the full result, yearly rows included.
func (jf *JSONFormatter) Format(result *domain.SimulationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}

// FormatMonteCarlo marshals a Monte Carlo result as indented JSON.
func (jf *JSONFormatter) FormatMonteCarlo(result *domain.MonteCarloResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal monte carlo result: %w", err)
	}
	return string(data), nil
}
