// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package metrics

import (
	"time"

	"github.com/stretchr/testify/mock"

	stampertypes "github.com/christman-ai/stamper/types"
)

// SinkMock is a mock implementation of the Sink interface
type SinkMock struct {
	mock.Mock
}

//nolint:golint
func (s *SinkMock) Close() error {
	args := s.Called()

	return args.Error(0)
}

//nolint:golint
func (s *SinkMock) GetSinkName() string {
	args := s.Called()

	return args.String(0)
}

//nolint:golint
func (s *SinkMock) MetricFileProcessed(outcome stampertypes.Outcome, tags []string) error {
	args := s.Called(outcome, tags)

	return args.Error(0)
}

//nolint:golint
func (s *SinkMock) MetricRunDuration(duration time.Duration, tags []string) error {
	args := s.Called(duration, tags)

	return args.Error(0)
}

//nolint:golint
func (s *SinkMock) MetricStampedGauge(gauge float64, tags []string) error {
	args := s.Called(gauge, tags)

	return args.Error(0)
}

//nolint:golint
func (s *SinkMock) MetricRequestServed(route string, status int, tags []string) error {
	args := s.Called(route, status, tags)

	return args.Error(0)
}

//nolint:golint
func (s *SinkMock) MetricConfigReloaded() error {
	args := s.Called()

	return args.Error(0)
}
