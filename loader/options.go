package loader

import (
	"io"
	"log/slog"
)

// Option configures Load.
type Option func(*Options)

// Options holds the loader's logger and hooks.
type Options struct {
	// Logger receives duplicate warnings (Warn) and a load summary (Debug).
	Logger *slog.Logger

	// OnWarning is called for every Warning, in stream order.
	OnWarning func(Warning)
}

// DefaultOptions returns Options with a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		OnWarning: func(Warning) {},
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnWarning installs fn as the warning hook. A nil fn keeps the no-op.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWarning = fn
		}
	}
}
