// Package logger builds slog loggers with the project's conventions and
// provides typed attribute helpers for the circulation domain.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.LogAttrs(ctx, slog.LevelInfo, "Copy borrowed",
//	    logger.LoanID("L1"),
//	    logger.ReaderID("R1"),
//	)
//
// Defaults are production-safe: JSON output at INFO level to stdout.
package logger
