// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/christman-ai/stamper/stamper"
)

// Failure is a serializable per-file failure
type Failure struct {
	Path  string `json:"path" yaml:"path"`
	Op    string `json:"op" yaml:"op"`
	Error string `json:"error" yaml:"error"`
}

// Document is the serializable form of a run report
type Document struct {
	RunID          string    `json:"runId" yaml:"runId"`
	Root           string    `json:"root" yaml:"root"`
	DryRun         bool      `json:"dryRun" yaml:"dryRun"`
	StartedAt      time.Time `json:"startedAt" yaml:"startedAt"`
	Duration       string    `json:"duration" yaml:"duration"`
	Count          int       `json:"count" yaml:"count"`
	Stamped        []string  `json:"stamped" yaml:"stamped"`
	AlreadyStamped int       `json:"alreadyStamped" yaml:"alreadyStamped"`
	Failures       []Failure `json:"failures" yaml:"failures"`
}

// NewDocument converts a run report
func NewDocument(r stamper.Report) Document {
	failures := make([]Failure, 0, len(r.Failures))

	for _, f := range r.Failures {
		failures = append(failures, Failure{
			Path:  f.Path,
			Op:    string(f.Op),
			Error: f.Err.Error(),
		})
	}

	return Document{
		RunID:          r.RunID,
		Root:           r.Root,
		DryRun:         r.DryRun,
		StartedAt:      r.StartedAt.UTC(),
		Duration:       r.Duration.String(),
		Count:          r.Count(),
		Stamped:        r.Stamped,
		AlreadyStamped: r.AlreadyStamped,
		Failures:       failures,
	}
}

// Marshal encodes the document according to the file extension of path
func Marshal(path string, doc Document) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	case ".json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported report format %q, expected .yaml, .yml or .json", ext)
	}
}

// Write stores the run report at path, overwriting any previous report
func Write(fs afero.Fs, path string, r stamper.Report) error {
	content, err := Marshal(path, NewDocument(r))
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	return nil
}
