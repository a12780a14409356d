package schema

import "io"

// Options configures the differ and the merger.
type Options struct {
	// Logger receives trace output. When nil a logger is built from LogLevel.
	Logger Logger

	// LogLevel is "error", "warn", "info" or "debug". Empty disables logging
	// unless Logger is set.
	LogLevel string

	// LogWriter is where a LogLevel-built logger writes (default: stderr).
	LogWriter io.Writer

	// EntityType and RelationType tag every walker visit.
	EntityType   string
	RelationType string
}

// DefaultOptions returns the default configuration: no logging.
func DefaultOptions() Options {
	return Options{}
}

// FirstOptions picks the first of opts, or the defaults.
func FirstOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return DefaultOptions()
}

// NewLogger returns the logger the options describe.
func (o Options) NewLogger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	if o.LogLevel != "" {
		return NewLogger(ParseLogLevel(o.LogLevel), o.LogWriter)
	}
	return NopLogger()
}

// WalkOptions returns the walker options carried by o.
func (o Options) WalkOptions() WalkOptions {
	return WalkOptions{EntityType: o.EntityType, RelationType: o.RelationType}
}
