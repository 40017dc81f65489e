// Package cli implements the summa command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Execute runs the summa command and exits with status 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var trace string

	cmd := &cobra.Command{
		Use:          "summa",
		Short:        "Sums of functions over integer ranges",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupTracing(trace)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "done")
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&trace, "trace", "", "trace to stderr with level debug|info|error")
	cmd.AddCommand(newSumCmd(), newFactCmd(), newTableCmd())
	return cmd
}

// setupTracing routes the core tracer and all selectable tracers to a Go
// standard logger. An empty level leaves tracing switched off.
func setupTracing(level string) error {
	switch level {
	case "":
		return nil
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	l := tracing.TraceLevelFromString(level)
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("summa").SetTraceLevel(l)
	gtrace.CoreTracer.Debugf("tracing with level %s", l)
	return nil
}
