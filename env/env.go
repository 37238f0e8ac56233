// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package env

//nolint:golint
const (
	LogLevel  = "LOG_LEVEL"
	StatsdURL = "STATSD_URL"
)
