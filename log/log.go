// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/christman-ai/stamper/env"
)

type contextKey string

const loggerContextKey contextKey = "stamper-logger"

// NewZapLogger returns a zap production sugared logger writing JSON lines to stderr
func NewZapLogger() (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level.SetLevel(zapcore.DebugLevel)
	loggerConfig.EncoderConfig.MessageKey = "message"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.EpochMillisTimeEncoder

	// an unparsable LOG_LEVEL keeps the default level
	if lvl, exists := os.LookupEnv(env.LogLevel); exists {
		if ll, err := zapcore.ParseLevel(lvl); err == nil {
			loggerConfig.Level.SetLevel(ll)
		}
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// WithLogger stores a logger in the context
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts a logger from the context, creating a default logger if not found
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerContextKey).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}

	defaultLogger, err := NewZapLogger()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return defaultLogger
}
