// Package logging wires slog with the two output formats the CLI supports:
// a human-oriented console format and machine-readable JSON lines. Both
// pipelines log through the same logger; an optional log file under the
// configured log directory receives a copy of everything written to the
// terminal.
package logging
