package renderer

import (
	"fmt"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NopLogger discards everything. Used by tests and quiet renders.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
