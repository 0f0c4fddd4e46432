// Package log provides logging helpers shared by the EMC CLI and examples.
package log

import (
	"context"
	"log/slog"
	"strings"
)

// sensitiveKeys lists attribute-key fragments whose values must never reach
// a log sink. Matching is case-insensitive and by substring, so
// "client_secret" and "AccessToken" are both caught.
var sensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"credential",
	"upn",
}

// RedactingHandler is a slog.Handler that redacts credential material
// before delegating to the wrapped handler.
type RedactingHandler struct {
	next slog.Handler
}

// NewRedactingHandler wraps next with credential redaction.
func NewRedactingHandler(next slog.Handler) *RedactingHandler {
	return &RedactingHandler{next: next}
}

// Enabled implements slog.Handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	var attrs []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, redactAttr(a))
		return true
	})

	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	redacted.AddAttrs(attrs...)
	return h.next.Handle(ctx, redacted)
}

// WithAttrs implements slog.Handler.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(redacted)}
}

// WithGroup implements slog.Handler.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		members := make([]any, len(group))
		for i, member := range group {
			members[i] = redactAttr(member)
		}
		return slog.Group(a.Key, members...)
	}

	key := strings.ToLower(a.Key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return slog.String(a.Key, "[REDACTED]")
		}
	}
	return a
}
