package logging

import (
	"log/slog"
	"time"
)

// Attr lets callers build fields without importing log/slog.
type Attr = slog.Attr

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Float64(key string, value float64) Attr { return slog.Float64(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// toArgs converts attrs for the variadic slog methods.
func toArgs(attrs ...Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with component. A nil logger discards.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// Event classifies a warning. Hint names what the operator should change and
// Impact what the warning means for the current run's numbers.
type Event struct {
	Type   string
	Hint   string
	Impact string
}

const (
	defaultHint   = "check logs for details"
	defaultImpact = "run completed with warnings"
)

// Warn logs msg at WARN with the event fields first. Missing hint or impact
// fall back to generic text so every warning carries both.
func Warn(logger *slog.Logger, event Event, msg string, attrs ...Attr) {
	if logger == nil {
		return
	}
	hint, impact := event.Hint, event.Impact
	if hint == "" {
		hint = defaultHint
	}
	if impact == "" {
		impact = defaultImpact
	}
	fields := make([]any, 0, len(attrs)+3)
	fields = append(fields,
		String(FieldEventType, event.Type),
		String(FieldErrorHint, hint),
		String(FieldImpact, impact),
	)
	logger.Warn(msg, append(fields, toArgs(attrs...)...)...)
}
