// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package datadog

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/christman-ai/stamper/env"
	"github.com/christman-ai/stamper/o11y/metrics/types"
	"github.com/christman-ai/stamper/o11y/tags"
	stampertypes "github.com/christman-ai/stamper/types"
)

const (
	metricPrefixStamper = "stamper."
	metricPrefixBackend = "stamper.backend."
)

// Sink describes a Datadog sink (statsd)
type Sink struct {
	client *statsd.Client
	prefix string
}

// New instantiate a new datadog statsd provider
func New(app types.SinkApp) (Sink, error) {
	prefix, err := GetPrefixFromApp(app)
	if err != nil {
		return Sink{}, err
	}

	instance, err := statsd.New(os.Getenv(env.StatsdURL), statsd.WithTags([]string{tags.FormatTag(tags.App, string(app))}))
	if err != nil {
		return Sink{}, err
	}

	return Sink{
		client: instance,
		prefix: prefix,
	}, nil
}

// GetPrefixFromApp returns the datadog metrics prefix given the App
func GetPrefixFromApp(app types.SinkApp) (string, error) {
	switch app {
	case types.SinkAppStamper:
		return metricPrefixStamper, nil
	case types.SinkAppBackend:
		return metricPrefixBackend, nil
	default:
		return "", fmt.Errorf("unknown sink app: %s", app)
	}
}

// Close closes the statsd client
func (d Sink) Close() error {
	return d.client.Close()
}

// GetSinkName returns the name of the sink
func (d Sink) GetSinkName() string {
	return string(types.SinkDriverDatadog)
}

// MetricFileProcessed increments the files.processed metric tagged with the outcome
func (d Sink) MetricFileProcessed(outcome stampertypes.Outcome, tagList []string) error {
	t := []string{tags.FormatTag(tags.Outcome, string(outcome))}
	t = append(t, tagList...)

	return d.client.Incr(d.prefix+"files.processed", t, 1)
}

// MetricRunDuration sends timing metric for a whole run
func (d Sink) MetricRunDuration(duration time.Duration, tagList []string) error {
	return d.client.Timing(d.prefix+"run.duration", duration, tagList, 1)
}

// MetricStampedGauge sends the number of files stamped by the last run
func (d Sink) MetricStampedGauge(gauge float64, tagList []string) error {
	return d.client.Gauge(d.prefix+"run.stamped", gauge, tagList, 1)
}

// MetricRequestServed increments the requests metric tagged with route and status code
func (d Sink) MetricRequestServed(route string, status int, tagList []string) error {
	t := []string{
		tags.FormatTag(tags.Route, route),
		tags.FormatTag(tags.Status, strconv.Itoa(status)),
	}
	t = append(t, tagList...)

	return d.client.Incr(d.prefix+"requests", t, 1)
}

// MetricConfigReloaded increments the config.reloaded metric
func (d Sink) MetricConfigReloaded() error {
	return d.client.Incr(d.prefix+"config.reloaded", []string{}, 1)
}
