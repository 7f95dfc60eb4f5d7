package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/config"
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/rvbgo/rentvsbuy-calculator/internal/output"
	"github.com/rvbgo/rentvsbuy-calculator/internal/rates"
	"github.com/rvbgo/rentvsbuy-calculator/internal/server"
	"github.com/spf13/cobra"
)

var (
	inputFile    string
	outputFormat string
	verbose      bool
	numSims      int
	mcSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "rvb",
	Short: "Rent-vs-buy financial comparison engine",
	Long: `rvb compares the long-term financial outcome of renting versus buying
a home: amortization, cash flow, wealth accumulation, break-even analysis
and Monte Carlo uncertainty estimates.`,
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Run a single rent-vs-buy scenario",
	RunE:  runCompute,
}

var monteCarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Run a Monte Carlo sweep over a scenario",
	RunE:  runMonteCarlo,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison engine over HTTP",
	RunE:  runServe,
}

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	computeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "scenario file (YAML or JSON)")
	computeCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format: console, json, csv")
	computeCmd.MarkFlagRequired("input")

	monteCarloCmd.Flags().StringVarP(&inputFile, "input", "i", "", "scenario file (YAML or JSON)")
	monteCarloCmd.Flags().IntVar(&numSims, "sims", 0, "number of trials (overrides scenario file)")
	monteCarloCmd.Flags().Int64Var(&mcSeed, "seed", 0, "RNG seed (overrides scenario file)")
	monteCarloCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(computeCmd, monteCarloCmd, serveCmd, exampleCmd)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadScenario reads the scenario file and resolves the input parameters,
// layering any named city preset under the file's explicit overrides.
func loadScenario(path string) (*config.ScenarioFile, *domain.SimulationInputs, error) {
	parser := config.NewInputParser()
	sf, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	base := domain.DefaultInputs()
	if sf.City != "" {
		profile, err := rates.NewMarketDataProvider().City(sf.City)
		if err != nil {
			return nil, nil, err
		}
		overrides := profile.Overrides()
		base = overrides.Apply(base)
	}
	merged := sf.Inputs.Apply(base)
	if err := merged.Validate(); err != nil {
		return nil, nil, err
	}
	return sf, &merged, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	log := newLogger()

	sf, in, err := loadScenario(inputFile)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.ZerologAdapter{L: log})

	result, err := engine.RunScenario(cmd.Context(), in)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(outputFormat)
	if err != nil {
		return err
	}
	text, err := formatter.Format(result)
	if err != nil {
		return err
	}
	fmt.Println(text)

	if outputFormat == "console" || outputFormat == "" {
		rec := calculation.NewRecommendationAdvisor().Advise(result, sf.Context)
		fmt.Println(output.SummarizeResult(result))
		for _, item := range rec.Items {
			fmt.Printf("  [%s] %s: %s\n", item.Kind, item.Title, item.Text)
		}
		fmt.Printf("  Confidence: %d/100\n", rec.Confidence)
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	log := newLogger()

	sf, in, err := loadScenario(inputFile)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.ZerologAdapter{L: log})

	mcCfg := calculation.DefaultMonteCarloConfig()
	if sf.Simulations > 0 {
		mcCfg.NumTrials = sf.Simulations
	}
	if numSims > 0 {
		mcCfg.NumTrials = numSims
	}
	mcCfg.Seed = sf.Seed
	if mcSeed != 0 {
		mcCfg.Seed = mcSeed
	}

	sim := calculation.NewMonteCarloSimulator(engine, mcCfg)
	sim.Logger = calculation.ZerologAdapter{L: log}

	result, err := sim.Run(cmd.Context(), in)
	if err != nil {
		return err
	}

	text, err := output.NewJSONFormatter().FormatMonteCarlo(result)
	if err != nil {
		return err
	}
	fmt.Println(text)
	fmt.Println(output.SummarizeMonteCarlo(result))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, log).Run(ctx)
}

func runExample(cmd *cobra.Command, args []string) error {
	path := "scenario.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.NewInputParser().CreateExampleScenario(path); err != nil {
		return err
	}
	fmt.Printf("Wrote example scenario to %s\n", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
