// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/metrics"
)

const defaultDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var (
		opts     runOptions
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run a scenario every time its file changes",
		Long: `watch runs the scenario once, then again after every save. Load and
simulation errors are reported and watching continues; interrupt to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debounce <= 0 {
				return fmt.Errorf("--debounce must be positive, got %s", debounce)
			}
			return watchScenario(cmd, a.log, opts, debounce)
		},
	}
	opts.bind(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Quiet period after a change before re-running")

	return cmd
}

// watchScenario runs opts.file once and again after every debounced change
// until ctx ends. The parent directory is watched and events are filtered by
// path, so saves that replace the file are seen too.
func watchScenario(cmd *cobra.Command, log *zap.Logger, opts runOptions, debounce time.Duration) error {
	ctx := cmd.Context()
	target, err := filepath.Abs(opts.file)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	collector := metrics.NewCollector()
	rerun := func() {
		rep, err := runScenario(ctx, log, opts, collector)
		switch {
		case rep != nil:
			if werr := opts.write(cmd.OutOrStdout(), rep); werr != nil {
				log.Error("write report", zap.Error(werr))
			}
		case err != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "error: %v\n", err)
		}
		if opts.metricsOut != "" {
			if merr := collector.WriteTextfile(opts.metricsOut); merr != nil {
				log.Error("write metrics", zap.Error(merr))
			}
		}
	}

	rerun()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debug("scenario changed", zap.String("op", event.Op.String()))
				timer.Reset(debounce)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(werr))
		case <-timer.C:
			rerun()
		}
	}
}
