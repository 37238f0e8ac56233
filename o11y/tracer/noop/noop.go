// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package noop

import (
	"github.com/christman-ai/stamper/o11y/tracer/types"
)

// Sink describes a no-op sink; spans started without a running tracer are dropped
type Sink struct{}

// New NOOP Sink
func New() *Sink {
	return &Sink{}
}

// Stop tracer
func (n *Sink) Stop() {}

// GetSinkName returns the name of the sink
func (n *Sink) GetSinkName() string {
	return string(types.SinkDriverNoop)
}
