// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/christman-ai/stamper/config"
	"github.com/christman-ai/stamper/log"
	"github.com/christman-ai/stamper/o11y/metrics"
	metricstypes "github.com/christman-ai/stamper/o11y/metrics/types"
	"github.com/christman-ai/stamper/o11y/tracer"
	tracertypes "github.com/christman-ai/stamper/o11y/tracer/types"
)

var (
	cfgFile    string
	stamperCfg config.StamperConfig
	v          = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stamper",
	Short: "Prepend a copyright header to every source file missing it.",
	Long: `
Walks a directory tree and prepends a header to every file with a matching extension
that does not already contain the header marker. Files already carrying the marker are
left untouched, so running it again is harmless.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := log.NewZapLogger()
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}

		defer func() { _ = logger.Sync() }()

		if err := config.LoadStamper(logger, v, cfgFile, &stamperCfg); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return execute(log.WithLogger(ctx, logger), stamperCfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// A failing run makes the process exit with 1; failures on single files do not.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stamper.yaml)")

	if err := config.AddStamperFlags(rootCmd.Flags(), &stamperCfg, v); err != nil {
		panic(err)
	}
}

// execute wires the observability sinks and the OS filesystem around a run
func execute(ctx context.Context, cfg config.StamperConfig) error {
	logger := log.FromContext(ctx)

	metricsSink, err := metrics.GetSink(metricstypes.SinkDriver(cfg.MetricsSink), metricstypes.SinkAppStamper)
	if err != nil {
		return fmt.Errorf("error creating metrics sink: %w", err)
	}

	defer func() {
		if err := metricsSink.Close(); err != nil {
			logger.Errorw("error closing metrics sink", "error", err)
		}
	}()

	tracerSink, err := tracer.GetSink(tracertypes.SinkConfig{
		SinkDriver: cfg.TracerSink,
		Service:    string(metricstypes.SinkAppStamper),
		SampleRate: 1,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("error creating tracer sink: %w", err)
	}

	defer tracerSink.Stop()

	logger.Debugw("observability sinks ready", "metricsSink", metricsSink.GetSinkName(), "tracerSink", tracerSink.GetSinkName())

	return run(ctx, cfg, afero.NewOsFs(), metricsSink, os.Stdout, terminalConfirm(logger))
}

// terminalConfirm returns nil when stdin is not a terminal, disabling the prompt
func terminalConfirm(logger *zap.SugaredLogger) confirmFunc {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Debugw("stdin is not a terminal, confirmation prompt disabled")
		return nil
	}

	return surveyConfirm
}
