package log_test

import (
	"refstats/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	Describe("ParseLevel", func() {
		It("should map known names", func() {
			Expect(log.ParseLevel("debug")).To(Equal(zapcore.DebugLevel))
			Expect(log.ParseLevel("ERROR")).To(Equal(zapcore.ErrorLevel))
		})

		It("should fall back to info", func() {
			Expect(log.ParseLevel("")).To(Equal(zapcore.InfoLevel))
			Expect(log.ParseLevel("chatty")).To(Equal(zapcore.InfoLevel))
		})
	})

	Describe("NewZapLogger", func() {
		It("should honour the level", func() {
			logger := log.NewZapLogger("refstats", zapcore.WarnLevel)
			Expect(logger.Desugar().Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
			Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		})
	})
})
