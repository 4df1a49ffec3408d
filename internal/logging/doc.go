// Package logging builds slog loggers for the CLI.
//
// Two output formats are supported: a compact console format that prefixes
// messages with a component name and renders attributes as key=value pairs,
// and standard JSON for machine consumption. Log lines fan out to stderr and
// the configured logfile.
package logging
