// Package slogbridge adapts a *slog.Logger to the logging.Logger contract.
package slogbridge

import (
	"context"
	"log/slog"

	"github.com/efkanbakanay/devhelper/logging"
)

var _ logging.Logger = Logger{}

type Logger struct{ L *slog.Logger }

func (s Logger) Debug(msg string, f logging.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs(f)...)
}

func (s Logger) Info(msg string, f logging.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs(f)...)
}

func (s Logger) Warn(msg string, f logging.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs(f)...)
}

func (s Logger) Error(msg string, f logging.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelError, msg, attrs(f)...)
}

func attrs(f logging.Fields) []slog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, slog.Any(k, v))
	}
	return out
}
