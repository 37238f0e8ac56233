// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package tags

import "fmt"

// Tag keys shared by metrics, traces and logs
const (
	App       = "app"
	Outcome   = "outcome"
	Extension = "extension"
	DryRun    = "dry_run"
	Route     = "route"
	Status    = "status"
	RunID     = "run_id"
)

// FormatTag formats a tag with key:value format for metrics and observability
func FormatTag(key, value string) string {
	return fmt.Sprintf("%s:%s", key, value)
}

// FormatBoolTag formats a boolean tag as key:true or key:false
func FormatBoolTag(key string, value bool) string {
	return FormatTag(key, fmt.Sprintf("%t", value))
}
