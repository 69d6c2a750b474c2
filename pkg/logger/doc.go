// Package logger provides a small factory around Go's slog package plus
// helper attribute constructors used across flashkit.
//
// The factory, New, creates a *slog.Logger configured by Option functions:
// output format (text or json), minimum level, destination writer, and
// static attributes applied to every record. NewDiscard returns a silent
// logger, the default inside library code that should not log unless asked.
//
// Helper constructors such as Error, Container, and MessageType live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Warn("flash store unavailable", logger.Error(err))
package logger
