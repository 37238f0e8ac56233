// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package metrics

import (
	"fmt"
	"time"

	"github.com/christman-ai/stamper/o11y/metrics/datadog"
	"github.com/christman-ai/stamper/o11y/metrics/noop"
	"github.com/christman-ai/stamper/o11y/metrics/types"
	stampertypes "github.com/christman-ai/stamper/types"
)

// Sink describes a metric sink
type Sink interface {
	Close() error
	GetSinkName() string
	MetricFileProcessed(outcome stampertypes.Outcome, tags []string) error
	MetricRunDuration(duration time.Duration, tags []string) error
	MetricStampedGauge(gauge float64, tags []string) error
	MetricRequestServed(route string, status int, tags []string) error
	MetricConfigReloaded() error
}

// GetSink returns an initiated metrics sink
func GetSink(driver types.SinkDriver, app types.SinkApp) (Sink, error) {
	switch driver {
	case types.SinkDriverDatadog:
		return datadog.New(app)
	case types.SinkDriverNoop:
		return noop.New(), nil
	default:
		return nil, fmt.Errorf("unsupported metrics sink: %s", driver)
	}
}
