// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package cmd

import (
	"bytes"
	"context"
	"strings"

	"github.com/christman-ai/stamper/config"
	"github.com/christman-ai/stamper/header"
	"github.com/christman-ai/stamper/log"
	"github.com/christman-ai/stamper/o11y/metrics"
	"github.com/christman-ai/stamper/o11y/metrics/types"
	"github.com/christman-ai/stamper/walker"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"
)

var _ = Describe("run", func() {
	var (
		ctx  context.Context
		fs   afero.Fs
		out  *bytes.Buffer
		sink metrics.Sink
		cfg  config.StamperConfig

		asked    []string
		answer   bool
		askError error
		confirm  confirmFunc
	)

	const (
		original = "print('hello')\n"
		stamped  = "# Copyright (C) 2024 Everett N. Christman\nprint('already')\n"
	)

	BeforeEach(func() {
		ctx = log.WithLogger(context.Background(), zaptest.NewLogger(GinkgoT()).Sugar())
		fs = afero.NewMemMapFs()
		out = &bytes.Buffer{}

		var err error
		sink, err = metrics.GetSink(types.SinkDriverNoop, types.SinkAppStamper)
		Expect(err).ToNot(HaveOccurred())

		cfg = config.StamperConfig{
			Root:         "project",
			Extensions:   walker.DefaultExtensions,
			ExcludedDirs: walker.DefaultExcludedDirs,
			Marker:       header.DefaultMarker,
		}

		asked = nil
		answer = true
		askError = nil
		confirm = func(message string) (bool, error) {
			asked = append(asked, message)
			return answer, askError
		}

		Expect(afero.WriteFile(fs, "project/a.py", []byte(original), 0o644)).To(Succeed())
		Expect(afero.WriteFile(fs, "project/b.py", []byte(stamped), 0o644)).To(Succeed())
	})

	content := func(path string) string {
		b, err := afero.ReadFile(fs, path)
		Expect(err).ToNot(HaveOccurred())

		return string(b)
	}

	It("stamps files with the default header", func() {
		// Act
		Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

		// Assert
		Expect(content("project/a.py")).To(Equal(header.DefaultText + original))
		Expect(content("project/b.py")).To(Equal(stamped))
		Expect(out.String()).To(Equal("✅ project/a.py\n\n🔒 Protected 1 files\n"))
		Expect(asked).To(BeEmpty())
	})

	It("uses a header file and its marker", func() {
		// Arrange
		Expect(afero.WriteFile(fs, "header.txt", []byte("# (c) ACME\n"), 0o644)).To(Succeed())
		cfg.HeaderFile = "header.txt"
		cfg.Marker = "(c) ACME"

		// Act
		Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

		// Assert
		Expect(content("project/a.py")).To(Equal("# (c) ACME\n" + original))
		Expect(content("project/b.py")).To(Equal("# (c) ACME\n" + stamped))
	})

	It("rejects a marker missing from the header", func() {
		cfg.Marker = "Copyright (C) 1999 Someone Else"

		err := run(ctx, cfg, fs, sink, out, confirm)

		Expect(err).To(MatchError(header.ErrMarkerNotInText))
		Expect(content("project/a.py")).To(Equal(original))
	})

	It("fails with a missing header file", func() {
		cfg.HeaderFile = "missing.txt"

		Expect(run(ctx, cfg, fs, sink, out, confirm)).To(MatchError(ContainSubstring("error loading header file")))
	})

	It("writes the run report", func() {
		cfg.ReportFile = "report.json"

		Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

		Expect(content("report.json")).To(ContainSubstring(`"project/a.py"`))
	})

	Context("with confirmation", func() {
		BeforeEach(func() {
			cfg.Confirm = true
		})

		It("previews then writes once confirmed", func() {
			// Act
			Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

			// Assert
			Expect(asked).To(Equal([]string{"Stamp 1 files?"}))
			Expect(out.String()).To(ContainSubstring("🔒 Would protect 1 files"))
			Expect(out.String()).To(HaveSuffix("✅ project/a.py\n\n🔒 Protected 1 files\n"))
			Expect(content("project/a.py")).To(Equal(header.DefaultText + original))
		})

		It("leaves every file untouched when declined", func() {
			// Arrange
			answer = false

			// Act
			Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

			// Assert
			Expect(content("project/a.py")).To(Equal(original))
			Expect(out.String()).To(HaveSuffix("No file was modified\n"))
		})

		It("returns the prompt error", func() {
			askError = ErrAborted

			Expect(run(ctx, cfg, fs, sink, out, confirm)).To(MatchError(ErrAborted))
			Expect(content("project/a.py")).To(Equal(original))
		})

		It("does not ask when there is nothing to stamp", func() {
			Expect(afero.WriteFile(fs, "project/a.py", []byte(stamped), 0o644)).To(Succeed())

			Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

			Expect(asked).To(BeEmpty())
			Expect(out.String()).To(ContainSubstring("Nothing to do"))
		})

		It("proceeds without prompting when no terminal is attached", func() {
			Expect(run(ctx, cfg, fs, sink, out, nil)).To(Succeed())

			Expect(content("project/a.py")).To(Equal(header.DefaultText + original))
			Expect(strings.Count(out.String(), "🔒")).To(Equal(1))
		})

		It("is ignored in dry-run mode", func() {
			cfg.DryRun = true

			Expect(run(ctx, cfg, fs, sink, out, confirm)).To(Succeed())

			Expect(asked).To(BeEmpty())
			Expect(content("project/a.py")).To(Equal(original))
		})
	})

	It("fails when the root does not exist", func() {
		cfg.Root = "nowhere"

		Expect(run(ctx, cfg, fs, sink, out, confirm)).To(MatchError(ContainSubstring("header stamping run interrupted")))
	})
})

var _ = Describe("version", func() {
	It("prints the version", func() {
		// Arrange
		out := &bytes.Buffer{}
		Version = "v1.2.3"
		versionCmd.SetOut(out)

		// Act
		versionCmd.Run(versionCmd, nil)

		// Assert
		Expect(out.String()).To(Equal("stamper v1.2.3\n"))
	})
})
