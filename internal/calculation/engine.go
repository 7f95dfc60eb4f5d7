package calculation

import (
	"context"
	"fmt"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
)

// CalculationEngine orchestrates the single-scenario pipeline: cash-flow
// projection, wealth tracking and break-even resolution. All computation is
// synchronous pure arithmetic; the engine holds no mutable state between
// runs.
type CalculationEngine struct {
	Amort     *AmortizationEngine
	CashFlow  *CashFlowProjector
	Wealth    *WealthTracker
	BreakEven *BreakEvenResolver
	Logger    Logger
}

// NewCalculationEngine creates a fully wired engine.
func NewCalculationEngine() *CalculationEngine {
	amort := NewAmortizationEngine()
	return &CalculationEngine{
		Amort:     amort,
		CashFlow:  NewCashFlowProjector(amort),
		Wealth:    NewWealthTracker(),
		BreakEven: NewBreakEvenResolver(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario validates the inputs and computes a complete rent-vs-buy
// comparison. The result is a freshly built value object on every call.
func (ce *CalculationEngine) RunScenario(ctx context.Context, in *domain.SimulationInputs) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	result := ce.runPipeline(in)

	ce.Logger.Debugf("scenario: winner=%s wealth_advantage=%s break_even=%v",
		result.Winner, result.WealthAdvantage.StringFixed(2), result.BreakEvenYear)

	return result, nil
}

// runPipeline executes projection, wealth tracking and break-even
// resolution on already-validated inputs. Monte Carlo trials call this
// directly to skip re-validating each perturbed parameter set.
func (ce *CalculationEngine) runPipeline(in *domain.SimulationInputs) *domain.SimulationResult {
	projection := ce.CashFlow.Project(in)
	rows := ce.Wealth.Track(in, projection)
	return ce.BreakEven.Resolve(in, projection, rows)
}
