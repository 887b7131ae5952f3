// Package store provides persistent variable storage backing
// placeholder resolution. Variables are plain strings keyed by name
// and scoped per subject, so different callers see different values.
package store

import (
	"context"
	"errors"
)

// Store persists named variables scoped by subject.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a variable. Returns ErrNotFound if the variable
	// doesn't exist in the scope.
	Get(ctx context.Context, scope, key string) (string, error)

	// Set stores a variable, overwriting any existing value.
	Set(ctx context.Context, scope, key, value string) error

	// Delete removes a variable. Returns nil if it doesn't exist.
	Delete(ctx context.Context, scope, key string) error

	// List returns all variables in a scope. Returns an empty map
	// (not an error) when the scope has no variables.
	List(ctx context.Context, scope string) (map[string]string, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a variable doesn't exist.
	ErrNotFound = errors.New("variable not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("variable store closed")
)
