// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/metrics"
	"github.com/katalvlaran/thermonet/model"
	"github.com/katalvlaran/thermonet/scenario"
	"github.com/katalvlaran/thermonet/simulate"
)

// runOptions are the flags shared by run and watch.
type runOptions struct {
	file       string
	workers    int
	jsonOut    bool
	history    bool
	metricsOut string
}

func (o *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Scenario YAML file (required)")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Edge-evaluation workers (overrides the scenario; 0 keeps it)")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&o.history, "history", false, "Print recorded history in the text report")
	cmd.Flags().StringVar(&o.metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile after the run")
	_ = cmd.MarkFlagRequired("file")
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print final temperatures",
		Example: `  thermsim run -f coffee.yaml
  thermsim run -f plate.yaml --workers 4 --json --metrics-out /var/lib/node_exporter/thermsim.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.workers < 0 {
				return fmt.Errorf("--workers must be ≥ 0, got %d", opts.workers)
			}
			collector := metrics.NewCollector()
			rep, err := runScenario(cmd.Context(), a.log, opts, collector)
			if rep != nil {
				if werr := opts.write(cmd.OutOrStdout(), rep); werr != nil {
					return werr
				}
			}
			if opts.metricsOut != "" {
				if merr := collector.WriteTextfile(opts.metricsOut); merr != nil {
					return fmt.Errorf("write metrics: %w", merr)
				}
			}
			return err
		},
	}
	opts.bind(cmd)

	return cmd
}

func (o runOptions) write(w io.Writer, rep *Report) error {
	if o.jsonOut {
		return rep.writeJSON(w)
	}
	return rep.writeText(w, o.history)
}

// runScenario loads, builds and executes the scenario. A nil report means
// the scenario never reached the simulator (load or build failure).
func runScenario(ctx context.Context, log *zap.Logger, opts runOptions, collector *metrics.Collector) (*Report, error) {
	s, err := scenario.Load(opts.file)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID), zap.String("scenario", s.Name))

	simOpts := []simulate.Option{simulate.WithMetrics(collector)}
	if opts.workers > 0 {
		simOpts = append(simOpts, simulate.WithWorkers(opts.workers))
	}
	m, err := s.Build(model.WithLogger(log), model.WithSimulateOptions(simOpts...))
	if err != nil {
		return nil, err
	}

	log.Info("run started",
		zap.String("file", opts.file),
		zap.Int("nodes", m.NodeCount()),
		zap.Int("edges", m.EdgeCount()),
		zap.Float64("dt", m.TimeStep()),
	)
	start := time.Now()
	runErr := s.Execute(ctx, m)
	elapsed := time.Since(start)

	if runErr != nil {
		log.Warn("run failed", zap.Error(runErr), zap.Float64("t", m.Time()))
	} else {
		log.Info("run finished", zap.Float64("t", m.Time()), zap.Duration("elapsed", elapsed))
	}

	return newReport(runID, s, m, runErr, elapsed), runErr
}
