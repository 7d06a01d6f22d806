// Package metadata is the durable key-value store of the client: a single
// SQLite table of string keys and string values, standing in for a
// platform preference store.
package metadata

import (
	"context"
)

// Repository persists small named values.
type Repository interface {
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
