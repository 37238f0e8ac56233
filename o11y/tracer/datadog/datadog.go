// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package datadog

import (
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/christman-ai/stamper/o11y"
	"github.com/christman-ai/stamper/o11y/tracer/types"
)

type Sink struct{}

func New(cfg types.SinkConfig) (Sink, error) {
	opts := []tracer.StartOption{
		tracer.WithService(cfg.Service),
		tracer.WithSampler(tracer.NewRateSampler(cfg.SampleRate)),
	}

	if cfg.Logger != nil {
		opts = append(opts, tracer.WithLogger(o11y.ZapDDLogger{ZapLogger: cfg.Logger}))
	}

	tracer.Start(opts...)

	return Sink{}, nil
}

func (d Sink) Stop() {
	tracer.Stop()
}

func (d Sink) GetSinkName() string {
	return string(types.SinkDriverDatadog)
}
