// Package log provides console logging for filetidy, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - A compact "timestamp - LEVEL - message" line format for terminal use
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// Every user-visible outcome of a run - moves, skips, collisions, aborts -
// is reported through these log lines; there is no other error channel to
// the terminal.
//
// # Usage
//
//	logger := log.New(os.Stderr, true) // verbose=true
//
//	logger.Info("moved file",
//	    "file", "photo.jpg",
//	    "destination", "Images/photo.jpg",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
