// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package datadog

import (
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	"github.com/christman-ai/stamper/o11y/profiler/types"
)

type Sink struct{}

func New(cfg types.SinkConfig) (Sink, error) {
	err := profiler.Start(
		profiler.WithService(cfg.Service),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			profiler.GoroutineProfile,
		),
	)

	return Sink{}, err
}

func (d Sink) Stop() {
	profiler.Stop()
}

func (d Sink) GetSinkName() string {
	return string(types.SinkDriverDatadog)
}
