// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is immutable once constructed: [Make] applies functional
// options over the defaults, and [Logger.Wrap] derives a reconfigured copy.
// The package also maintains a default logger writing to standard error,
// reconfigured with [Config] and used by the package-level functions.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("script generated", slog.Int("lines", n))
//
// # Output Formats
//
// Two output formats are supported, [FormatText] and [FormatJSON], each
// with an optional pretty variant. The pretty text handler renders levels
// and keys with lipgloss terminal styles.
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn], and [LevelError].
// Trace maps below slog's debug level and is rendered with its own label.
package log
