// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package noop

import (
	"time"

	"github.com/christman-ai/stamper/o11y/metrics/types"
	stampertypes "github.com/christman-ai/stamper/types"
)

// Sink describes a no-op sink; it stays silent since stdout carries the stamper report
type Sink struct{}

// New ...
func New() *Sink {
	return &Sink{}
}

// Close returns nil
func (n *Sink) Close() error {
	return nil
}

// GetSinkName returns the name of the sink
func (n *Sink) GetSinkName() string {
	return string(types.SinkDriverNoop)
}

// MetricFileProcessed returns nil
func (n *Sink) MetricFileProcessed(outcome stampertypes.Outcome, tags []string) error {
	return nil
}

// MetricRunDuration returns nil
func (n *Sink) MetricRunDuration(duration time.Duration, tags []string) error {
	return nil
}

// MetricStampedGauge returns nil
func (n *Sink) MetricStampedGauge(gauge float64, tags []string) error {
	return nil
}

// MetricRequestServed returns nil
func (n *Sink) MetricRequestServed(route string, status int, tags []string) error {
	return nil
}

// MetricConfigReloaded returns nil
func (n *Sink) MetricConfigReloaded() error {
	return nil
}
