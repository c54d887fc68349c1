package renderer

import (
	"fmt"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// nopLogger discards everything; used when no logger is supplied
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
