// Package cli implements the lookout command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the internal packages for the actual work:
//
//	lookout             - Run the interactive dashboard (root command)
//	lookout check       - One probe round, printed as a table (or --json)
//	lookout init        - Create lookout.yaml interactively
//	lookout doctor      - Diagnose config and connectivity issues
//	lookout version     - Print version information
//
// The root command loads configuration, starts the monitoring engine, and
// hands the terminal to the Bubble Tea dashboard until the operator quits.
// One-shot commands (check, doctor) load the same configuration but never
// start the background loop; check drives a single round directly.
//
// Global flags (--config) are defined on the root command and available to
// all subcommands. Command-specific flags like --interval and --hosts are
// defined on individual commands.
package cli
