// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package o11y

import (
	"strings"

	"go.uber.org/zap"
)

// ZapDDLogger wraps a zap SugaredLogger to fit Datadog's logger interface so
// tracer and profiler logs end up in the structured log stream
type ZapDDLogger struct {
	ZapLogger *zap.SugaredLogger
}

// Log routes a Datadog library message to the matching zap level
func (ddLogger ZapDDLogger) Log(msg string) {
	switch {
	case strings.Contains(msg, "ERROR"):
		ddLogger.ZapLogger.Error(msg)
	case strings.Contains(msg, "WARN"):
		ddLogger.ZapLogger.Warn(msg)
	case strings.Contains(msg, "INFO"):
		ddLogger.ZapLogger.Info(msg)
	default:
		ddLogger.ZapLogger.Debug(msg)
	}
}
