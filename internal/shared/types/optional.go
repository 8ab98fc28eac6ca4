package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a tagged optional value. Absent fields stay absent instead of
// collapsing into a zero value, so every read site must check Valid.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// OrElse returns the value when present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.Valid {
		return o.Value
	}
	return fallback
}

var jsonNull = []byte("null")

// MarshalJSON encodes an absent optional as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON decodes null (or a missing field) as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{Value: v, Valid: true}
	return nil
}
