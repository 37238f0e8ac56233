// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stamper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/christman-ai/stamper/header"
	"github.com/christman-ai/stamper/o11y/metrics"
	"github.com/christman-ai/stamper/o11y/tags"
	"github.com/christman-ai/stamper/types"
	"github.com/christman-ai/stamper/walker"
)

// ErrInvalidEncoding is returned for files which are not valid UTF-8 text
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Config holds what a run needs to know
type Config struct {
	Root         string
	Extensions   []string
	ExcludedDirs []string
	Header       header.Header
	DryRun       bool
}

// Stamper prepends a header to every candidate file missing it
type Stamper struct {
	cfg    Config
	fs     afero.Fs
	walker *walker.Walker
	log    *zap.SugaredLogger
	sink   metrics.Sink
	out    io.Writer
}

// New returns a stamper writing its console report to out
func New(cfg Config, fs afero.Fs, logger *zap.SugaredLogger, sink metrics.Sink, out io.Writer) (*Stamper, error) {
	if err := cfg.Header.Validate(); err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}

	w, err := walker.New(fs, cfg.ExcludedDirs, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	return &Stamper{
		cfg:    cfg,
		fs:     fs,
		walker: w,
		log:    logger,
		sink:   sink,
		out:    out,
	}, nil
}

// Run walks the root directory and processes files one after the other. Per-file failures
// are reported and recorded but never returned; the returned error only describes why the
// run itself could not complete.
func (s *Stamper) Run(ctx context.Context) (report Report, err error) {
	report = Report{
		RunID:     uuid.NewString(),
		Root:      s.cfg.Root,
		DryRun:    s.cfg.DryRun,
		Stamped:   []string{},
		StartedAt: time.Now(),
	}

	runTags := []string{tags.FormatBoolTag(tags.DryRun, s.cfg.DryRun)}
	logger := s.log.With(tags.RunID, report.RunID, "root", s.cfg.Root, "dryRun", s.cfg.DryRun)

	span, ctx := tracer.StartSpanFromContext(ctx, "stamper.run",
		tracer.ResourceName(s.cfg.Root),
		tracer.Tag(tags.RunID, report.RunID),
		tracer.Tag(tags.DryRun, s.cfg.DryRun),
	)

	defer func() {
		report.Duration = time.Since(report.StartedAt)

		span.SetTag("stamped", report.Count())
		span.SetTag("failed", len(report.Failures))
		span.Finish(tracer.WithError(err))

		if mErr := s.sink.MetricRunDuration(report.Duration, runTags); mErr != nil {
			logger.Errorw("error sending run duration metric", "error", mErr)
		}

		if mErr := s.sink.MetricStampedGauge(float64(report.Count()), runTags); mErr != nil {
			logger.Errorw("error sending stamped gauge metric", "error", mErr)
		}
	}()

	logger.Infow("starting header stamping run")

	visit := func(path string, info os.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, fileErr := s.StampFile(path, info)

		switch {
		case outcome.Modified() && s.cfg.DryRun:
			report.Stamped = append(report.Stamped, path)
			fmt.Fprintf(s.out, "✅ %s (dry-run)\n", path)
		case outcome.Modified():
			report.Stamped = append(report.Stamped, path)
			fmt.Fprintf(s.out, "✅ %s\n", path)
		case outcome == types.OutcomeAlreadyStamped:
			report.AlreadyStamped++
			logger.Debugw("file already stamped", "path", path)
		default:
			s.recordFailure(logger, &report, fileErr)
		}

		fileTags := append([]string{tags.FormatTag(tags.Extension, filepath.Ext(path))}, runTags...)
		s.metricFileProcessed(logger, outcome, fileTags)

		return nil
	}

	onError := func(path string, err error) {
		s.recordFailure(logger, &report, &types.FileError{Path: path, Op: types.FileOpWalk, Err: err})
		s.metricFileProcessed(logger, types.OutcomeFailed, runTags)
	}

	if err = s.walker.Walk(s.cfg.Root, visit, onError); err != nil {
		logger.Errorw("header stamping run interrupted", "error", err, "stamped", report.Count())

		return report, fmt.Errorf("header stamping run interrupted: %w", err)
	}

	if s.cfg.DryRun {
		fmt.Fprintf(s.out, "\n🔒 Would protect %d files\n", report.Count())
	} else {
		fmt.Fprintf(s.out, "\n🔒 Protected %d files\n", report.Count())
	}

	logger.Infow("header stamping run completed",
		"stamped", report.Count(),
		"alreadyStamped", report.AlreadyStamped,
		"failed", len(report.Failures),
	)

	return report, nil
}

// StampFile reads, checks and conditionally rewrites a single file. The returned error is
// only set along with OutcomeFailed.
func (s *Stamper) StampFile(path string, info os.FileInfo) (types.Outcome, *types.FileError) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return types.OutcomeFailed, &types.FileError{Path: path, Op: types.FileOpRead, Err: err}
	}

	if !utf8.Valid(content) {
		return types.OutcomeFailed, &types.FileError{Path: path, Op: types.FileOpDecode, Err: ErrInvalidEncoding}
	}

	if s.cfg.Header.IsStamped(content) {
		return types.OutcomeAlreadyStamped, nil
	}

	stamped := s.cfg.Header.Stamp(content)

	if s.cfg.DryRun {
		if err := s.preview(path, content, stamped); err != nil {
			s.log.Warnw("unable to render preview", "path", path, "error", err)
		}

		return types.OutcomePreviewed, nil
	}

	// existing files keep their permission bits, perm only applies on creation
	if err := afero.WriteFile(s.fs, path, stamped, info.Mode().Perm()); err != nil {
		return types.OutcomeFailed, &types.FileError{Path: path, Op: types.FileOpWrite, Err: err}
	}

	return types.OutcomeStamped, nil
}

func (s *Stamper) preview(path string, before, after []byte) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (stamped)",
		Context:  3,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(s.out, diff)

	return err
}

func (s *Stamper) recordFailure(logger *zap.SugaredLogger, report *Report, fileErr *types.FileError) {
	report.Failures = append(report.Failures, *fileErr)

	fmt.Fprintf(s.out, "Error processing %s: %v\n", fileErr.Path, fileErr.Err)
	logger.Errorw("error processing file", "path", fileErr.Path, "op", fileErr.Op, "error", fileErr.Err)
}

func (s *Stamper) metricFileProcessed(logger *zap.SugaredLogger, outcome types.Outcome, runTags []string) {
	if err := s.sink.MetricFileProcessed(outcome, runTags); err != nil {
		logger.Errorw("error sending file processed metric", "error", err)
	}
}
