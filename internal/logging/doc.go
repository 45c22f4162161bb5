// Package logging provides structured logging for listbind.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the module. The list transforms log at Debug level
// only, so they stay silent inside a render loop unless explicitly asked.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Transform internals (pairing reuse, selection scans, cursor writes)
//   - Info: Document loads and saves
//   - Warn: Recoverable oddities (hidden-row truncation, unknown status codes)
//   - Error: Command failures
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("Paired list",
//	    zap.Int("rows", 12),
//	    zap.Int("reused", 11),
//	)
//
// Domain helpers wrap the common events:
//
//	logging.LogSelectionScan("inner.status", 12, 9, []int{2}, 0)
//	logging.LogCursorWrite("insert", "new row", 10)
//	logging.LogDocument("load", "screen.yaml", 12)
//
// # Configuration
//
// Logging is silent by default. Set LISTBIND_LOG_LEVEL to "debug", "info",
// "warn" or "error" to enable output, or initialize explicitly:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so command output on stdout stays
// clean.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are not; call them once at startup.
package logging
