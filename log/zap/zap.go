// Package zap adapts [go.uber.org/zap] to the [tagwire.Logger] interface.
package zap

import (
	"github.com/tagwire/tagwire"
	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger to satisfy tagwire.Logger.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f tagwire.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f tagwire.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f tagwire.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f tagwire.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f tagwire.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
