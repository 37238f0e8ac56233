// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package noop

import (
	"go.uber.org/zap"

	"github.com/christman-ai/stamper/o11y/profiler/types"
)

// Sink describes a no-op profiler sink
type Sink struct {
	log *zap.SugaredLogger
}

// New NOOP Sink
func New(log *zap.SugaredLogger) Sink {
	log.Debug("NOOP Sink: Profiler Started")

	return Sink{
		log,
	}
}

// Stop profiler
func (n Sink) Stop() {
	n.log.Debug("NOOP Sink: Profiler Stopped")
}

// GetSinkName returns the name of the sink
func (n Sink) GetSinkName() string {
	return string(types.SinkDriverNoop)
}
