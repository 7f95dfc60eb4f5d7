package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MonteCarloConfig holds tuning for a Monte Carlo run.
type MonteCarloConfig struct {
	NumTrials int
	Seed      int64

	// RelStdDev sizes each sampling distribution relative to the input
	// mean; MinStdDev keeps the spread meaningful when a mean is near
	// zero. Sampled rates are clamped to [FloorRate, CapRate] so extreme
	// draws are bounded instead of discarded, keeping trial counts exact.
	RelStdDev float64
	MinStdDev float64
	FloorRate float64
	CapRate   float64

	Workers int
}

// DefaultMonteCarloConfig returns the documented sampling defaults.
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		NumTrials: 1000,
		RelStdDev: 0.25,
		MinStdDev: 0.005,
		FloorRate: -0.02,
		CapRate:   0.12,
	}
}

// MonteCarloSimulator re-runs the full single-scenario pipeline under
// sampled perturbations of home price growth, rent growth and investment
// return. Trials are independent: each draws from its own generator seeded
// from (seed, trial index), so results are reproducible regardless of
// worker scheduling.
type MonteCarloSimulator struct {
	Engine *CalculationEngine
	Config MonteCarloConfig
	Logger Logger
}

// NewMonteCarloSimulator creates a simulator. A zero config seed is
// replaced with a time-derived one.
func NewMonteCarloSimulator(engine *CalculationEngine, config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.NumTrials <= 0 {
		config.NumTrials = DefaultMonteCarloConfig().NumTrials
	}
	if config.RelStdDev <= 0 {
		config.RelStdDev = DefaultMonteCarloConfig().RelStdDev
	}
	if config.MinStdDev <= 0 {
		config.MinStdDev = DefaultMonteCarloConfig().MinStdDev
	}
	if config.CapRate <= config.FloorRate {
		def := DefaultMonteCarloConfig()
		config.FloorRate, config.CapRate = def.FloorRate, def.CapRate
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &MonteCarloSimulator{
		Engine: engine,
		Config: config,
		Logger: NopLogger{},
	}
}

type trialOutcome struct {
	wealthAdvantage decimal.Decimal
	breakEvenYear   *int
}

// Run executes all trials and aggregates the outcome distribution.
// Cancellation is honored between trials only; a single trial is cheap
// enough that it always runs to completion once started.
func (mcs *MonteCarloSimulator) Run(ctx context.Context, in *domain.SimulationInputs) (*domain.MonteCarloResult, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("monte carlo validation failed: %w", err)
	}

	n := mcs.Config.NumTrials
	outcomes := make([]trialOutcome, n)

	trials := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < mcs.Config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range trials {
				outcomes[trial] = mcs.runTrial(trial, in)
			}
		}()
	}

	canceled := false
feed:
	for trial := 0; trial < n; trial++ {
		select {
		case <-ctx.Done():
			canceled = true
			break feed
		case trials <- trial:
		}
	}
	close(trials)
	wg.Wait()

	if canceled {
		return nil, ctx.Err()
	}

	result := mcs.aggregate(outcomes)
	mcs.Logger.Infof("monte carlo: trials=%d seed=%d buy_win_rate=%s",
		n, mcs.Config.Seed, result.BuyWinRate.StringFixed(4))
	return result, nil
}

// runTrial perturbs the growth assumptions with the trial's own generator
// and runs the full pipeline. No trial reads or writes another trial's
// state.
func (mcs *MonteCarloSimulator) runTrial(trial int, in *domain.SimulationInputs) trialOutcome {
	rng := rand.New(rand.NewSource(deriveTrialSeed(mcs.Config.Seed, trial)))

	perturbed := *in
	perturbed.HomePriceGrowth = mcs.sampleRate(rng, in.HomePriceGrowth)
	perturbed.RentGrowth = mcs.sampleRate(rng, in.RentGrowth)
	perturbed.InvestmentReturn = mcs.sampleRate(rng, in.InvestmentReturn)

	result := mcs.Engine.runPipeline(&perturbed)
	return trialOutcome{
		wealthAdvantage: result.WealthAdvantage,
		breakEvenYear:   result.BreakEvenYear,
	}
}

// sampleRate draws from a normal distribution centered on the input value
// and clamps the result to the configured range.
func (mcs *MonteCarloSimulator) sampleRate(rng *rand.Rand, mean decimal.Decimal) decimal.Decimal {
	mu := mean.InexactFloat64()
	sd := math.Abs(mu) * mcs.Config.RelStdDev
	if sd < mcs.Config.MinStdDev {
		sd = mcs.Config.MinStdDev
	}

	sample := mu + rng.NormFloat64()*sd
	if sample < mcs.Config.FloorRate {
		sample = mcs.Config.FloorRate
	} else if sample > mcs.Config.CapRate {
		sample = mcs.Config.CapRate
	}
	return decimal.NewFromFloat(sample)
}

// deriveTrialSeed mixes the run seed with the trial index so each trial
// owns an independent, reproducible stream. Splitmix-style finalizer;
// overflow wraps by design.
func deriveTrialSeed(seed int64, trial int) int64 {
	x := uint64(seed) + (uint64(trial)+1)*0x9E3779B97F4A7C15
	x ^= x >> 33
	x *= 0xFF51AFD7ED558CCD
	x ^= x >> 33
	return int64(x)
}

// aggregate reduces trial outcomes to distribution statistics. All
// reductions are commutative or operate on index-ordered data, so worker
// completion order never affects the result.
func (mcs *MonteCarloSimulator) aggregate(outcomes []trialOutcome) *domain.MonteCarloResult {
	n := len(outcomes)
	advantages := make([]decimal.Decimal, n)
	buyWins := 0
	var breakEvens []int

	sum := decimal.Zero
	for i, o := range outcomes {
		advantages[i] = o.wealthAdvantage
		sum = sum.Add(o.wealthAdvantage)
		if o.wealthAdvantage.IsPositive() {
			buyWins++
		}
		if o.breakEvenYear != nil {
			breakEvens = append(breakEvens, *o.breakEvenYear)
		}
	}

	count := decimal.NewFromInt(int64(n))
	mean := sum.Div(count)

	meanF := mean.InexactFloat64()
	variance := 0.0
	for _, a := range advantages {
		d := a.InexactFloat64() - meanF
		variance += d * d
	}
	stdDev := decimal.NewFromFloat(math.Sqrt(variance / float64(n)))

	sorted := make([]decimal.Decimal, n)
	copy(sorted, advantages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	buyRate := decimal.NewFromInt(int64(buyWins)).Div(count)
	rentRate := decimal.NewFromInt(int64(n - buyWins)).Div(count)

	result := &domain.MonteCarloResult{
		NumTrials:        n,
		Seed:             mcs.Config.Seed,
		WealthAdvantages: advantages,
		Mean:             mean,
		StdDev:           stdDev,
		P10:              percentile(sorted, 10),
		P50:              percentile(sorted, 50),
		P90:              percentile(sorted, 90),
		BuyWinRate:       buyRate,
		RentWinRate:      rentRate,
	}

	if len(breakEvens) > 0 {
		median := medianOfInts(breakEvens)
		result.MedianBreakEvenYear = &median
	}
	return result
}

// percentile picks from an ascending-sorted slice.
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	idx := p * len(sorted) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func medianOfInts(values []int) decimal.Decimal {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return decimal.NewFromInt(int64(sorted[mid]))
	}
	lo := decimal.NewFromInt(int64(sorted[mid-1]))
	hi := decimal.NewFromInt(int64(sorted[mid]))
	return lo.Add(hi).Div(decimal.NewFromInt(2))
}
