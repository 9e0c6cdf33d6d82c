// Package optional provides a JSON-aware tri-state value: absent, explicit null, or set.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field distinguishes a key missing from a JSON object from a key holding null.
// The zero value is absent.
type Field[T any] struct {
	present bool
	valid   bool
	value   T
}

func Of[T any](v T) Field[T] {
	return Field[T]{present: true, valid: true, value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

// IsPresent reports whether the key appeared in the payload, null included.
func (f Field[T]) IsPresent() bool { return f.present }

func (f Field[T]) IsNull() bool { return f.present && !f.valid }

func (f Field[T]) Get() (T, bool) {
	return f.value, f.valid
}

// Ptr returns nil for absent and null fields.
func (f Field[T]) Ptr() *T {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.valid = false
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

// MarshalJSON writes null for absent fields; pair it with the omitzero tag option to drop them.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
