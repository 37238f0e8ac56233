// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package header_test

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/christman-ai/stamper/header"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Header", func() {
	Describe("Default", func() {
		It("should be valid", func() {
			Expect(header.Default().Validate()).To(Succeed())
		})

		It("should end with a blank line so the original content starts on its own line", func() {
			Expect(header.Default().Text).To(HaveSuffix("\"\"\"\n\n"))
		})
	})

	DescribeTable("Validate",
		func(h header.Header, expected error) {
			if expected == nil {
				Expect(h.Validate()).To(Succeed())
			} else {
				Expect(h.Validate()).To(MatchError(expected))
			}
		},
		Entry("valid header", header.Header{Text: "# (c) ACME\n", Marker: "(c) ACME"}, nil),
		Entry("empty text", header.Header{Text: "", Marker: "(c) ACME"}, header.ErrEmptyText),
		Entry("empty marker", header.Header{Text: "# (c) ACME\n", Marker: ""}, header.ErrEmptyMarker),
		Entry("marker absent from text", header.Header{Text: "# (c) ACME\n", Marker: "(c) Other"}, header.ErrMarkerNotInText),
	)

	Describe("IsStamped", func() {
		h := header.Header{Text: "# (c) ACME\n", Marker: "(c) ACME"}

		DescribeTable("should look for the marker anywhere in the content",
			func(content string, expected bool) {
				Expect(h.IsStamped([]byte(content))).To(Equal(expected))
			},
			Entry("at the top", "# (c) ACME\nprint(1)\n", true),
			Entry("in the middle", "#!/usr/bin/env python\n# (c) ACME\n", true),
			Entry("absent", "print(1)\n", false),
			Entry("empty file", "", false),
			Entry("partial marker", "# (c) ACM\n", false),
		)
	})

	Describe("Stamp", func() {
		It("should prepend the text verbatim without losing content", func() {
			// Arrange
			h := header.Default()
			original := []byte("import os\n\nprint(os.getcwd())\n")

			// Act
			stamped := h.Stamp(original)

			// Assert
			Expect(string(stamped)).To(Equal(header.DefaultText + string(original)))
			Expect(h.IsStamped(stamped)).To(BeTrue())
		})

		It("should not alias the original content", func() {
			h := header.Header{Text: "# (c) ACME\n", Marker: "(c) ACME"}
			original := []byte("x = 1\n")

			stamped := h.Stamp(original)
			stamped[len(stamped)-1] = '!'

			Expect(string(original)).To(Equal("x = 1\n"))
		})
	})

	Describe("Load", func() {
		var memFS afero.Fs

		BeforeEach(func() {
			memFS = afero.NewMemMapFs()
		})

		It("should read the text and default the marker", func() {
			// Arrange
			text := "# " + header.DefaultMarker + "\n"
			Expect(afero.WriteFile(memFS, "HEADER.txt", []byte(text), 0o644)).To(Succeed())

			// Act
			h, err := header.Load(memFS, "HEADER.txt", "")

			// Assert
			Expect(err).ToNot(HaveOccurred())
			Expect(h.Text).To(Equal(text))
			Expect(h.Marker).To(Equal(header.DefaultMarker))
		})

		It("should use the provided marker", func() {
			Expect(afero.WriteFile(memFS, "HEADER.txt", []byte("// (c) ACME\n"), 0o644)).To(Succeed())

			h, err := header.Load(memFS, "HEADER.txt", "(c) ACME")

			Expect(err).ToNot(HaveOccurred())
			Expect(h.Marker).To(Equal("(c) ACME"))
		})

		It("should fail when the file does not exist", func() {
			_, err := header.Load(memFS, "missing.txt", "")

			Expect(err).To(MatchError(fs.ErrNotExist))
		})

		It("should reject a header which does not contain its marker", func() {
			Expect(afero.WriteFile(memFS, "HEADER.txt", []byte("// (c) ACME\n"), 0o644)).To(Succeed())

			_, err := header.Load(memFS, "HEADER.txt", "(c) Other")

			Expect(err).To(MatchError(header.ErrMarkerNotInText))
		})
	})
})
