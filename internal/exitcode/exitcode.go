// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, unknown filter).
	UserError = 1

	// ConfigError indicates an unreadable config file or unknown storage backend.
	ConfigError = 2

	// StorageError indicates the durable slot could not be opened.
	StorageError = 3
)
