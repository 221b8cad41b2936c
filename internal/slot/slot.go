// Package slot implements the durable key-value storage the board is
// persisted to. Each key holds one string value that is overwritten whole.
package slot

import (
	"context"
	"fmt"
	"regexp"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Slot is a string-keyed, string-valued durable store.
type Slot interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	// Path is the data directory (file) or database file (sqlite).
	Path string

	// DSN is the postgres connection string.
	DSN string

	// Key is the key the task list is stored under. Empty means the default.
	Key string
}

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
type ErrUnknownBackend struct {
	Name string
}

func (e *ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown storage backend: %s", e.Name)
}

// ErrInvalidKey is returned for a key containing anything but letters,
// digits, dots, underscores and dashes.
type ErrInvalidKey struct {
	Key string
}

func (e *ErrInvalidKey) Error() string {
	return fmt.Sprintf("invalid storage key: %q", e.Key)
}

// CheckKey reports whether key can be stored by every backend.
func CheckKey(key string) error {
	if !validKey.MatchString(key) {
		return &ErrInvalidKey{Key: key}
	}
	return nil
}

// Open creates the slot for the configured backend.
func Open(ctx context.Context, opts Options) (Slot, error) {
	if opts.Key != "" {
		if err := CheckKey(opts.Key); err != nil {
			return nil, err
		}
	}
	switch opts.Backend {
	case BackendFile, "":
		return NewFile(opts.Path)
	case BackendSQLite:
		return NewSQLite(opts.Path)
	case BackendPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres backend requires storage.dsn")
		}
		return NewPostgres(ctx, opts.DSN)
	default:
		return nil, &ErrUnknownBackend{Name: opts.Backend}
	}
}
