// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package profiler_test

import (
	"github.com/christman-ai/stamper/o11y/profiler"
	"github.com/christman-ai/stamper/o11y/profiler/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

var _ = Describe("GetSink", func() {
	It("returns a noop profiler", func() {
		sink, err := profiler.GetSink(types.SinkConfig{SinkDriver: "noop", Logger: zaptest.NewLogger(GinkgoT()).Sugar()})

		Expect(err).ToNot(HaveOccurred())
		Expect(sink.GetSinkName()).To(Equal("noop"))
		sink.Stop()
	})

	It("works without a logger", func() {
		sink, err := profiler.GetSink(types.SinkConfig{SinkDriver: "noop"})

		Expect(err).ToNot(HaveOccurred())
		sink.Stop()
	})

	It("rejects an unknown driver", func() {
		_, err := profiler.GetSink(types.SinkConfig{SinkDriver: "pprof"})

		Expect(err).To(MatchError("unsupported profiler: pprof"))
	})
})
