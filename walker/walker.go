// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// DefaultExcludedDirs are skipped regardless of depth: virtual environments,
// dependency caches and version control metadata
var DefaultExcludedDirs = []string{
	"venv",
	"node_modules",
	"__pycache__",
	".git",
	"env",
	".venv",
}

// DefaultExtensions are the file suffixes selected when none is configured
var DefaultExtensions = []string{".py"}

// VisitFunc is called for every candidate file
type VisitFunc func(path string, info os.FileInfo) error

// ErrorFunc is called for every entry which cannot be read; the entry is skipped
type ErrorFunc func(path string, err error)

// Walker visits candidate files below a root directory
type Walker struct {
	fs           afero.Fs
	excludedDirs []string
	extensions   []string
}

// New returns a walker; nil slices fall back to the defaults
func New(fs afero.Fs, excludedDirs, extensions []string) (*Walker, error) {
	if excludedDirs == nil {
		excludedDirs = DefaultExcludedDirs
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	for _, pattern := range excludedDirs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid excluded directory pattern %q", pattern)
		}
	}

	return &Walker{
		fs:           fs,
		excludedDirs: excludedDirs,
		extensions:   extensions,
	}, nil
}

// Excluded returns true if a directory with the given base name must not be descended into
func (w *Walker) Excluded(name string) bool {
	for _, pattern := range w.excludedDirs {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}

	return false
}

// Candidate returns true if the file name ends with one of the configured extensions
func (w *Walker) Candidate(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Walk visits every regular candidate file below root. Symbolic links are skipped.
// Unreadable entries are reported to onError and skipped. A visit error stops the walk
// and is returned.
func (w *Walker) Walk(root string, visit VisitFunc, onError ErrorFunc) error {
	return afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// the root itself is unusable, nothing to walk
			if path == root && info == nil {
				return fmt.Errorf("unable to walk %s: %w", root, err)
			}

			onError(path, err)

			return nil
		}

		if info.IsDir() {
			if path != root && w.Excluded(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		// links are never followed: a target inside the root is visited under its own
		// path, targets elsewhere stay untouched
		if !info.Mode().IsRegular() {
			return nil
		}

		if !w.Candidate(info.Name()) {
			return nil
		}

		return visit(path, info)
	})
}
