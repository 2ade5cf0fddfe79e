package calculation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/exitsim/exit-value-estimator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// trialsPerChunk fixes how the trial index space is partitioned. Each chunk
// owns a random stream derived from (seed, chunk index), so results depend on
// the seed only and never on the worker count.
const trialsPerChunk = 1024

// MonteCarloConfig holds run settings that are not part of the model itself
type MonteCarloConfig struct {
	Seed       int64   // 0 picks a seed; the chosen seed is reported in the result
	Workers    int     // concurrent chunks; <= 0 uses runtime.NumCPU()
	Sharpness  float64 // PERT sharpness; 0 uses DefaultSharpness
	KeepTrials bool    // retain every Trial in the result
}

// MonteCarloSimulator runs exit value simulations
type MonteCarloSimulator struct {
	Seed       int64
	Workers    int
	Sharpness  float64
	KeepTrials bool
	Logger     Logger
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator
func NewMonteCarloSimulator(config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Sharpness == 0 {
		config.Sharpness = DefaultSharpness
	}

	return &MonteCarloSimulator{
		Seed:       config.Seed,
		Workers:    config.Workers,
		Sharpness:  config.Sharpness,
		KeepTrials: config.KeepTrials,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (mcs *MonteCarloSimulator) SetLogger(l Logger) {
	if l == nil {
		mcs.Logger = NopLogger{}
		return
	}
	mcs.Logger = l
}

// RunSimulation validates cfg, evaluates cfg.NumSimulations trials and
// summarizes them. It returns either a complete result or an error, never a
// partial result. Cancelling ctx aborts the run with the context error.
func (mcs *MonteCarloSimulator) RunSimulation(ctx context.Context, cfg domain.SimulationConfig) (*domain.SimulationResult, error) {
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	if mcs.Sharpness < 0 {
		return nil, domain.NewConfigurationError("sharpness", "cannot be negative, got %g", mcs.Sharpness)
	}
	logger := mcs.logger()

	n := cfg.NumSimulations
	values := make([]float64, n)
	var trials []domain.Trial
	if mcs.KeepTrials {
		trials = make([]domain.Trial, n)
	}

	chunks := (n + trialsPerChunk - 1) / trialsPerChunk
	workers := mcs.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debugf("running %d trials in %d chunks (workers=%d seed=%d)", n, chunks, workers, mcs.Seed)
	started := nowFunc()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := c * trialsPerChunk
			end := min(start+trialsPerChunk, n)
			sampler := mcs.chunkSampler(c)
			for i := start; i < end; i++ {
				trial, err := EvaluateTrial(sampler, &cfg)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				values[i] = trial.ExitValue
				if trials != nil {
					trials[i] = trial
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Errorf("simulation aborted: %v", err)
		return nil, err
	}

	stats, err := Summarize(values)
	if err != nil {
		return nil, err
	}
	logger.Infof("completed %d trials in %s: median=%.0f p5=%.0f p95=%.0f", n, nowFunc().Sub(started), stats.Median, stats.P5, stats.P95)

	return &domain.SimulationResult{
		Config:                     cfg,
		Seed:                       mcs.Seed,
		NumSimulations:             n,
		ExitValues:                 values,
		Statistics:                 stats,
		AdjustedRevenuePerCustomer: cfg.AdjustedRevenuePerCustomer(),
		Trials:                     trials,
	}, nil
}

// chunkSampler returns an independent sampler for one chunk of trials
func (mcs *MonteCarloSimulator) chunkSampler(chunk int) *Sampler {
	s := NewSampler(rand.NewPCG(uint64(mcs.Seed), uint64(chunk)))
	if mcs.Sharpness != 0 {
		s.Sharpness = mcs.Sharpness
	}
	return s
}

func (mcs *MonteCarloSimulator) logger() Logger {
	if mcs.Logger == nil {
		return NopLogger{}
	}
	return mcs.Logger
}

// Run is a convenience wrapper that simulates cfg with a fixed seed and default settings.
func Run(ctx context.Context, cfg domain.SimulationConfig, seed int64) (*domain.SimulationResult, error) {
	return NewMonteCarloSimulator(MonteCarloConfig{Seed: seed}).RunSimulation(ctx, cfg)
}
