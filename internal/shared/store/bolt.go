package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// BoltMap is a durable ordered map stored in a single bbolt bucket. Values are
// JSON-encoded; bbolt keeps keys byte-ordered and applies each update in one
// write transaction, which gives the crash consistency the registry relies on.
type BoltMap[V any] struct {
	db     *bbolt.DB
	bucket []byte
}

// OpenBolt opens (or creates) the bolt database file at path.
func OpenBolt(path string) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	return db, nil
}

// NewBoltMap creates a map over the named bucket, creating the bucket if needed.
func NewBoltMap[V any](db *bbolt.DB, bucket string) (*BoltMap[V], error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name cannot be empty")
	}
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return &BoltMap[V]{db: db, bucket: []byte(bucket)}, nil
}

// Insert stores value under key and returns the previous value, if any.
func (m *BoltMap[V]) Insert(ctx context.Context, key string, value V) (prev V, replaced bool, err error) {
	if err = ctx.Err(); err != nil {
		return prev, false, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return prev, false, fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	err = m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if raw := b.Get([]byte(key)); raw != nil {
			if err := json.Unmarshal(raw, &prev); err != nil {
				return fmt.Errorf("failed to decode previous value for key %s: %w", key, err)
			}
			replaced = true
		}
		return b.Put([]byte(key), encoded)
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return prev, replaced, nil
}

// Get returns the value stored under key, if any.
func (m *BoltMap[V]) Get(ctx context.Context, key string) (value V, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return value, false, err
	}

	err = m.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(m.bucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("failed to decode value for key %s: %w", key, err)
		}
		ok = true
		return nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return value, ok, nil
}

// Remove deletes the value stored under key and returns it, if any.
func (m *BoltMap[V]) Remove(ctx context.Context, key string) (removed V, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return removed, false, err
	}

	err = m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(m.bucket)
		raw := b.Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &removed); err != nil {
			return fmt.Errorf("failed to decode value for key %s: %w", key, err)
		}
		ok = true
		return b.Delete([]byte(key))
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return removed, ok, nil
}

// Values returns a snapshot of all stored values in key order.
func (m *BoltMap[V]) Values(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]V, 0)
	err := m.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(m.bucket).ForEach(func(_, raw []byte) error {
			var value V
			if err := json.Unmarshal(raw, &value); err != nil {
				return fmt.Errorf("failed to decode stored value: %w", err)
			}
			values = append(values, value)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

var _ Map[string] = (*BoltMap[string])(nil)
