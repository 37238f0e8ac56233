// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/afero"

	"github.com/christman-ai/stamper/config"
	"github.com/christman-ai/stamper/header"
	"github.com/christman-ai/stamper/log"
	"github.com/christman-ai/stamper/o11y/metrics"
	"github.com/christman-ai/stamper/report"
	"github.com/christman-ai/stamper/stamper"
)

// confirmFunc asks a yes/no question
type confirmFunc func(message string) (bool, error)

// ErrAborted is returned when the confirmation prompt is interrupted
var ErrAborted = errors.New("aborted by user")

func run(ctx context.Context, cfg config.StamperConfig, fs afero.Fs, sink metrics.Sink, out io.Writer, confirm confirmFunc) error {
	logger := log.FromContext(ctx)

	hdr, err := loadHeader(fs, cfg)
	if err != nil {
		return err
	}

	stamperCfg := stamper.Config{
		Root:         cfg.Root,
		Extensions:   cfg.Extensions,
		ExcludedDirs: cfg.ExcludedDirs,
		Header:       hdr,
		DryRun:       cfg.DryRun,
	}

	if cfg.Confirm && !cfg.DryRun {
		if confirm == nil {
			logger.Infow("confirmation requested but stdin is not a terminal, proceeding without it")
		} else {
			proceed, err := preview(ctx, stamperCfg, fs, sink, out, confirm)
			if err != nil || !proceed {
				return err
			}
		}
	}

	s, err := stamper.New(stamperCfg, fs, logger, sink, out)
	if err != nil {
		return err
	}

	rep, err := s.Run(ctx)
	if err != nil {
		return err
	}

	if err := rep.Err(); err != nil {
		logger.Warnw("some files could not be processed", "error", err)
	}

	if cfg.ReportFile != "" {
		if err := report.Write(fs, cfg.ReportFile, rep); err != nil {
			return fmt.Errorf("error writing run report: %w", err)
		}

		logger.Infow("run report written", "path", cfg.ReportFile)
	}

	return nil
}

// preview runs a dry-run pass and asks whether the previewed changes should be written
func preview(ctx context.Context, cfg stamper.Config, fs afero.Fs, sink metrics.Sink, out io.Writer, confirm confirmFunc) (bool, error) {
	cfg.DryRun = true

	s, err := stamper.New(cfg, fs, log.FromContext(ctx), sink, out)
	if err != nil {
		return false, err
	}

	rep, err := s.Run(ctx)
	if err != nil {
		return false, err
	}

	if rep.Count() == 0 {
		fmt.Fprintln(out, "Nothing to do, every file is already protected")
		return false, nil
	}

	proceed, err := confirm(fmt.Sprintf("Stamp %d files?", rep.Count()))
	if err != nil {
		return false, err
	}

	if !proceed {
		fmt.Fprintln(out, "No file was modified")
	}

	return proceed, nil
}

func loadHeader(fs afero.Fs, cfg config.StamperConfig) (header.Header, error) {
	if cfg.HeaderFile != "" {
		hdr, err := header.Load(fs, cfg.HeaderFile, cfg.Marker)
		if err != nil {
			return header.Header{}, fmt.Errorf("error loading header file: %w", err)
		}

		return hdr, nil
	}

	hdr := header.Default()
	if cfg.Marker != "" {
		hdr.Marker = cfg.Marker
	}

	return hdr, nil
}

func surveyConfirm(message string) (bool, error) {
	var result bool

	prompt := &survey.Confirm{
		Message: message,
		Help:    "Files are overwritten in place, no backup is kept.",
	}

	err := survey.AskOne(prompt, &result)
	if errors.Is(err, terminal.InterruptErr) {
		return false, ErrAborted
	} else if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return result, nil
}
