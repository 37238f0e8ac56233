// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/christman-ai/stamper/backend"
	"github.com/christman-ai/stamper/config"
	"github.com/christman-ai/stamper/log"
	"github.com/christman-ai/stamper/o11y/metrics"
	metricstypes "github.com/christman-ai/stamper/o11y/metrics/types"
	"github.com/christman-ai/stamper/o11y/profiler"
	profilertypes "github.com/christman-ai/stamper/o11y/profiler/types"
	"github.com/christman-ai/stamper/o11y/tracer"
	tracertypes "github.com/christman-ai/stamper/o11y/tracer/types"
)

func main() {
	logger, err := log.NewZapLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating backend logger: %v\n", err)
		os.Exit(1)
	}

	defer func() { _ = logger.Sync() }()

	cfg, v, err := config.NewBackend(logger, os.Args[1:])
	if err != nil {
		logger.Fatalw("unable to load configuration", "error", err)
	}

	service := string(metricstypes.SinkAppBackend)

	ms, err := metrics.GetSink(metricstypes.SinkDriver(cfg.MetricsSink), metricstypes.SinkAppBackend)
	if err != nil {
		logger.Errorw("error while creating metric sink, switching to noop", "error", err)

		ms, _ = metrics.GetSink(metricstypes.SinkDriverNoop, metricstypes.SinkAppBackend)
	}

	defer func() {
		logger.Infow("closing metrics sink client before exiting", "sink", ms.GetSinkName())

		if err := ms.Close(); err != nil {
			logger.Errorw("error closing metrics sink client", "sink", ms.GetSinkName(), "error", err)
		}
	}()

	tracerSink, err := tracer.GetSink(tracertypes.SinkConfig{
		SinkDriver: cfg.TracerSink,
		Service:    service,
		SampleRate: cfg.TracerSampleRate,
		Logger:     logger,
	})
	if err != nil {
		logger.Errorw("error while creating tracer sink, switching to noop", "error", err)

		tracerSink, _ = tracer.GetSink(tracertypes.SinkConfig{SinkDriver: string(tracertypes.SinkDriverNoop)})
	}

	defer tracerSink.Stop()

	profilerSink, err := profiler.GetSink(profilertypes.SinkConfig{
		SinkDriver: cfg.ProfilerSink,
		Service:    service,
		Logger:     logger,
	})
	if err != nil {
		logger.Errorw("error while creating profiler sink, switching to noop", "error", err)

		profilerSink, _ = profiler.GetSink(profilertypes.SinkConfig{SinkDriver: string(profilertypes.SinkDriverNoop), Logger: logger})
	}

	defer profilerSink.Stop()

	server := backend.New(cfg, service, logger, ms)

	config.WatchBackend(logger, v, server.Reload)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("starting backend",
		"bindAddr", cfg.BindAddr,
		"metricsSink", ms.GetSinkName(),
		"tracerSink", tracerSink.GetSinkName(),
		"profilerSink", profilerSink.GetSinkName(),
	)

	if err := server.Run(log.WithLogger(ctx, logger)); err != nil {
		logger.Errorw("backend stopped", "error", err)
		os.Exit(1) //nolint:gocritic
	}
}
