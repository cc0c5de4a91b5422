// Package log builds the slog loggers used by vulntable.
//
// Logs are diagnostics only. They are written to the writer passed in
// (stderr in the CLI) and never to the table output stream.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("scan report loaded", "path", path, "findings", n)
package log
