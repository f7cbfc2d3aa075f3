// Package logging builds the slog loggers used across cxrextract.
//
// Two output formats are supported: a human-oriented console format and JSON
// for machine consumption. Loggers can fan out to stderr plus a log file under
// the configured log directory. Components attach a standardized component
// attribute so console lines stay scannable.
package logging
