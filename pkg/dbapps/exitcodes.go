// Package dbapps provides public constants for external tools integrating
// with dbapps-install.
package dbapps

// Exit codes returned by the dbapps-install CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	// Missing manifest entries are reported as warnings and do not change this.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (destination not writable, copy failed, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid install.yaml, unknown flag, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (home directory unresolvable, etc.).
	ExitEnvError = 3
)
