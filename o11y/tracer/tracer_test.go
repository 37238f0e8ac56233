// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package tracer_test

import (
	"github.com/christman-ai/stamper/o11y/tracer"
	"github.com/christman-ai/stamper/o11y/tracer/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetSink", func() {
	It("returns a noop tracer", func() {
		sink, err := tracer.GetSink(types.SinkConfig{SinkDriver: "noop", Service: "stamper"})

		Expect(err).ToNot(HaveOccurred())
		Expect(sink.GetSinkName()).To(Equal("noop"))
		sink.Stop()
	})

	It("rejects an unknown driver", func() {
		_, err := tracer.GetSink(types.SinkConfig{SinkDriver: "jaeger"})

		Expect(err).To(MatchError("unsupported tracer: jaeger"))
	})
})
