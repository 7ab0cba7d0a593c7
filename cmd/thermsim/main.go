// SPDX-License-Identifier: MIT

// Command thermsim runs, checks and watches thermal network scenarios.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/internal/logging"
)

var version = "0.1.0-dev"

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	dev      bool
	log      *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "thermsim",
		Short: "Lumped-capacitance thermal network simulator",
		Long: `thermsim advances networks of thermal masses joined by conduction,
radiation and heat-input links, described in YAML scenario files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Config{Level: a.logLevel, Development: a.dev}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.dev, "dev", false, "Human-readable development logging")

	rootCmd.AddCommand(
		newRunCmd(a),
		newWatchCmd(a),
		newValidateCmd(a),
		newMaterialsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
