package config

import (
	"fmt"
	"os"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the on-disk scenario format. Parameter overrides are
// pointers so an explicitly written zero survives the merge with defaults.
type ScenarioFile struct {
	// City selects a built-in market preset applied before the explicit
	// overrides, so a file can start from city data and adjust it.
	City string `yaml:"city" json:"city,omitempty"`

	Inputs  domain.InputOverrides     `yaml:"inputs" json:"inputs"`
	Context domain.QualitativeContext `yaml:"context" json:"context,omitempty"`

	// Monte Carlo settings; ignored by single-scenario runs.
	Simulations int   `yaml:"simulations" json:"simulations,omitempty"`
	Seed        int64 `yaml:"seed" json:"seed,omitempty"`
}

// InputParser loads scenario files and resolves them against defaults.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads a scenario file. YAML is a superset of JSON, so a
// single decoder handles both formats.
func (ip *InputParser) LoadFromFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ip.Parse(data)
}

// Parse decodes scenario bytes without touching the filesystem.
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, error) {
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return &sf, nil
}

// Resolve merges the file's overrides onto the default parameter set and
// validates the result. The returned inputs are ready for the engine.
func (ip *InputParser) Resolve(sf *ScenarioFile) (*domain.SimulationInputs, error) {
	merged := sf.Inputs.Apply(domain.DefaultInputs())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// CreateExampleScenario writes a commented starter scenario to path.
func (ip *InputParser) CreateExampleScenario(path string) error {
	example := `# Rent-vs-buy scenario.
# Omitted fields fall back to documented defaults; an explicit zero is
# honored (e.g. mortgage_rate_annual: 0.0 models a zero-interest loan).

# city: austin          # optional built-in market preset

inputs:
  home_price: 620000
  monthly_rent: 2600
  down_payment_pct: 0.20
  mortgage_rate_annual: 0.068
  property_tax_rate: 0.012
  maintenance_rate: 0.01
  insurance_per_year: 1500
  home_price_growth: 0.025
  rent_growth: 0.03
  investment_return: 0.07
  closing_cost_buy: 0.03
  selling_cost: 0.06
  discount_rate: 0.04
  years_horizon: 10
  term_years: 30

context:
  high_debt: false
  unstable_job: false

# Monte Carlo settings (used by the montecarlo command only).
simulations: 1000
seed: 42
`
	if err := os.WriteFile(path, []byte(example), 0o644); err != nil {
		return fmt.Errorf("failed to write example scenario: %w", err)
	}
	return nil
}
