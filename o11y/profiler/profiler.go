// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package profiler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/christman-ai/stamper/o11y/profiler/datadog"
	"github.com/christman-ai/stamper/o11y/profiler/noop"
	"github.com/christman-ai/stamper/o11y/profiler/types"
)

// Sink describes a profiler
type Sink interface {
	GetSinkName() string
	Stop()
}

// GetSink returns an initiated profiler sink, the noop one logging with a nop logger when none is given
func GetSink(cfg types.SinkConfig) (Sink, error) {
	switch types.SinkDriver(cfg.SinkDriver) {
	case types.SinkDriverDatadog:
		return datadog.New(cfg)
	case types.SinkDriverNoop:
		logger := cfg.Logger
		if logger == nil {
			logger = zap.NewNop().Sugar()
		}

		return noop.New(logger), nil
	default:
		return nil, fmt.Errorf("unsupported profiler: %s", cfg.SinkDriver)
	}
}
