// Package debug provides rewrite tracing for graph transformations.
// This keeps logging concerns isolated from the rewrite code itself.
//
// Tracing is off by default and enabled with GRADOPT_DEBUG=1, so the
// public pass surface stays a single function with no logger plumbing.
package debug

import (
	"sync"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// Enabled reports whether rewrite tracing is on.
func Enabled() bool { return env.Bool("GRADOPT_DEBUG") }

// Logger returns the process-wide rewrite tracer. The environment is
// consulted once, on first use.
func Logger() *zap.Logger {
	once.Do(func() {
		logger = zap.NewNop()
		if !Enabled() {
			return
		}
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	})
	return logger
}

// Trace records a single graph rewrite.
func Trace(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}
