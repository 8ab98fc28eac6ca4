// Package store provides the durable ordered map every registry component is
// built on: a string-keyed mapping with insert/get/remove and in-order
// iteration, backed either by bbolt (durable) or by memory (tests).
package store

import "context"

// Map is an ordered key-value namespace. Implementations must be safe for
// concurrent use and must apply every Insert and Remove atomically: readers
// never observe a partial write, and a value observed as inserted before a
// restart is observed identically after it.
type Map[V any] interface {
	// Insert stores value under key and returns the previous value, if any.
	Insert(ctx context.Context, key string, value V) (prev V, replaced bool, err error)

	// Get returns the value stored under key, if any.
	Get(ctx context.Context, key string) (value V, ok bool, err error)

	// Remove deletes the value stored under key and returns it, if any.
	Remove(ctx context.Context, key string) (removed V, ok bool, err error)

	// Values returns a snapshot of all stored values in key order.
	Values(ctx context.Context) ([]V, error)
}
