package logger

import (
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
)

// NoopLogger discards every entry; used in tests and when logging is disabled
type NoopLogger struct{}

func NewNoopLogger() core.Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, map[string]any)      {}
func (NoopLogger) Info(string, map[string]any)       {}
func (NoopLogger) Warn(string, map[string]any)       {}
func (NoopLogger) Error(string, map[string]any)      {}
func (l NoopLogger) With(map[string]any) core.Logger { return l }
func (NoopLogger) Flush() error                      { return nil }
