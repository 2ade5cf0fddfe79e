package cli

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"github.com/exitsim/exit-value-estimator/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type runOptions struct {
	configFile string
	format     string
	outputDir  string
	seed       int64
	workers    int
	keepTrials bool

	params domain.SimulationConfig
}

func newRunCommand(a *app) *cobra.Command {
	opts := &runOptions{params: domain.DefaultSimulationConfig()}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the exit value simulation",
		Example: `  exitsim run
  exitsim run --config params.yaml --seed 42 --format all --output-dir reports
  exitsim run --starting-arr 8000000 --growth-mode 0.25 --simulations 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "parameter file (yaml)")
	f.StringVarP(&opts.format, "format", "f", "console", "output format: console, json, csv, html, all")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files (default from settings)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	f.IntVar(&opts.workers, "workers", 0, "concurrent workers (default from settings)")
	f.BoolVar(&opts.keepTrials, "keep-trials", false, "keep per-trial growth and multiples in json/csv output")

	p := &opts.params
	f.Float64Var(&p.StartingARR, "starting-arr", p.StartingARR, "starting annual recurring revenue in dollars")
	f.Float64Var(&p.RevenuePerCustomer, "revenue-per-customer", p.RevenuePerCustomer, "revenue per customer in dollars")
	f.Float64Var(&p.InflationRate, "inflation", p.InflationRate, "annual inflation rate")
	f.Float64Var(&p.GrowthBounds.Low, "growth-low", p.GrowthBounds.Low, "lowest annual growth rate")
	f.Float64Var(&p.GrowthBounds.Mode, "growth-mode", p.GrowthBounds.Mode, "most likely annual growth rate")
	f.Float64Var(&p.GrowthBounds.High, "growth-high", p.GrowthBounds.High, "highest annual growth rate")
	f.Float64Var(&p.ExitMultipleBounds.Low, "exit-low", p.ExitMultipleBounds.Low, "lowest exit multiple")
	f.Float64Var(&p.ExitMultipleBounds.Mode, "exit-mode", p.ExitMultipleBounds.Mode, "most likely exit multiple")
	f.Float64Var(&p.ExitMultipleBounds.High, "exit-high", p.ExitMultipleBounds.High, "highest exit multiple")
	f.IntVarP(&p.NumSimulations, "simulations", "n", p.NumSimulations, "number of simulated trials")
	f.Float64Var(&p.CorrelationStrength, "correlation", p.CorrelationStrength, "pull of year-two growth toward year one (0..1)")
	f.Float64Var(&p.MultipleBoostFactor, "boost", p.MultipleBoostFactor, "exit multiple sensitivity to growth")

	return cmd
}

// paramFlags maps run flags onto the parameter fields they override.
var paramFlags = map[string]func(dst, src *domain.SimulationConfig){
	"starting-arr":         func(d, s *domain.SimulationConfig) { d.StartingARR = s.StartingARR },
	"revenue-per-customer": func(d, s *domain.SimulationConfig) { d.RevenuePerCustomer = s.RevenuePerCustomer },
	"inflation":            func(d, s *domain.SimulationConfig) { d.InflationRate = s.InflationRate },
	"growth-low":           func(d, s *domain.SimulationConfig) { d.GrowthBounds.Low = s.GrowthBounds.Low },
	"growth-mode":          func(d, s *domain.SimulationConfig) { d.GrowthBounds.Mode = s.GrowthBounds.Mode },
	"growth-high":          func(d, s *domain.SimulationConfig) { d.GrowthBounds.High = s.GrowthBounds.High },
	"exit-low":             func(d, s *domain.SimulationConfig) { d.ExitMultipleBounds.Low = s.ExitMultipleBounds.Low },
	"exit-mode":            func(d, s *domain.SimulationConfig) { d.ExitMultipleBounds.Mode = s.ExitMultipleBounds.Mode },
	"exit-high":            func(d, s *domain.SimulationConfig) { d.ExitMultipleBounds.High = s.ExitMultipleBounds.High },
	"simulations":          func(d, s *domain.SimulationConfig) { d.NumSimulations = s.NumSimulations },
	"correlation":          func(d, s *domain.SimulationConfig) { d.CorrelationStrength = s.CorrelationStrength },
	"boost":                func(d, s *domain.SimulationConfig) { d.MultipleBoostFactor = s.MultipleBoostFactor },
}

// resolveParams loads the parameter file (if any) and applies explicitly set flags on top.
func (o *runOptions) resolveParams(flags *pflag.FlagSet) (domain.SimulationConfig, error) {
	if o.configFile == "" {
		return o.params, nil
	}

	parser := config.NewInputParser()
	loaded, err := parser.LoadFromFile(o.configFile)
	if err != nil {
		return domain.SimulationConfig{}, err
	}
	cfg := *loaded
	flags.Visit(func(fl *pflag.Flag) {
		if apply, ok := paramFlags[fl.Name]; ok {
			apply(&cfg, &o.params)
		}
	})
	return cfg, nil
}

func (a *app) run(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := opts.resolveParams(cmd.Flags())
	if err != nil {
		return err
	}

	seed := a.settings.Seed
	if cmd.Flags().Changed("seed") {
		seed = opts.seed
	}
	workers := a.settings.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}
	outputDir := a.settings.OutputDir
	if opts.outputDir != "" {
		outputDir = opts.outputDir
	}

	sim := calculation.NewMonteCarloSimulator(calculation.MonteCarloConfig{
		Seed:       seed,
		Workers:    workers,
		Sharpness:  a.settings.Sharpness,
		KeepTrials: opts.keepTrials,
	})
	sim.SetLogger(a.logger.Sugar())

	result, err := sim.RunSimulation(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if output.NormalizeFormatName(opts.format) == "console" {
		data, err := output.ConsoleFormatter{Bins: a.settings.HistogramBins}.Format(result)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	files, err := output.GenerateReport(result, opts.format, outputDir, a.settings.HistogramBins)
	if err != nil {
		return err
	}
	for _, f := range files {
		a.logger.Info("report written", zap.String("file", f))
		fmt.Fprintf(out, "Report written: %s\n", f)
	}
	fmt.Fprintf(out, "Median exit value: %s (seed %d)\n", output.FormatCurrency(result.Median()), result.Seed)
	return nil
}
