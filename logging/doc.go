// Package logging constructs the slog loggers used across the library.
//
// Key responsibilities:
//   - Translate Options (level, format, output) into a ready *slog.Logger
//     with either a human-oriented console handler or plain JSON.
//   - Provide the Nop logger that config and files managers default to, so
//     the library stays silent unless the caller injects a logger.
//
// Managers accept a logger through their WithLogger options; nothing in this
// package is required to use the library.
package logging
