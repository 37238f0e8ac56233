// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stamper

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/christman-ai/stamper/types"
)

// Report summarizes a run
type Report struct {
	RunID          string
	Root           string
	DryRun         bool
	Stamped        []string
	AlreadyStamped int
	Failures       []types.FileError
	StartedAt      time.Time
	Duration       time.Duration
}

// Count returns the number of files modified, or which would be modified in dry-run mode
func (r Report) Count() int {
	return len(r.Stamped)
}

// Err aggregates every per-file failure, nil when the run had none
func (r Report) Err() error {
	var result *multierror.Error

	for _, failure := range r.Failures {
		result = multierror.Append(result, failure)
	}

	return result.ErrorOrNil()
}
