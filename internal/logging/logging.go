// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package logging configures structured logging for the Amphitryon client
// and lets request-scoped attributes ride on the context.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ErrKey is the attribute key errors are logged under.
const ErrKey = "error"

type ctxKey string

const attrsKey ctxKey = "log_attrs"

// contextHandler decorates every record with the attributes accumulated on
// the context by AppendCtx.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

// AppendCtx returns a context whose log records carry the given attribute in
// addition to any attributes already attached.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	existing, _ := parent.Value(attrsKey).([]slog.Attr)
	attrs := make([]slog.Attr, 0, len(existing)+1)
	attrs = append(attrs, existing...)
	attrs = append(attrs, attr)
	return context.WithValue(parent, attrsKey, attrs)
}

// InitStructureLogConfig installs the process-wide JSON logger. The level
// comes from LOG_LEVEL (debug, info, warn, error; debug by default) and
// source locations are added when LOG_ADD_SOURCE is truthy.
func InitStructureLogConfig() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(os.Getenv("LOG_LEVEL")),
		AddSource: isTruthy(os.Getenv("LOG_ADD_SOURCE")),
	}

	handler := contextHandler{slog.NewJSONHandler(os.Stdout, opts)}
	slog.SetDefault(slog.New(handler))

	slog.Debug("log config", "level", opts.Level, "addSource", opts.AddSource)
	return handler
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "t", "1":
		return true
	}
	return false
}

// Priority tags a record with an operator-facing severity classification.
func Priority(level string) slog.Attr {
	return slog.String("priority", level)
}

// PriorityCritical marks records that should page rather than just be
// searchable.
func PriorityCritical() slog.Attr {
	return Priority("critical")
}
