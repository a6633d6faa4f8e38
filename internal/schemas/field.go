package schemas

import (
	"bytes"
	"encoding/json"
)

// Field is one attribute of an update payload. Set reports whether the key was
// present at all; Null reports an explicit JSON null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null field.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a present field holding JSON null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		f.Null = true
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// Ptr returns nil for an explicit null and a copy of the value otherwise.
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}
