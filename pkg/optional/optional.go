// Package optional provides a tri-state field for sparse request payloads.
//
// A Field is in one of three states:
//
//   - unset: the zero value. The field is omitted from the payload, which
//     tells the remote service to leave the stored value unchanged.
//   - null: explicitly set to "no value". The field is emitted as JSON null,
//     which tells the remote service to clear the stored value.
//   - present: explicitly set to a value, emitted as that value.
//
// Omission relies on the `omitzero` struct tag option:
//
//	type editPayload struct {
//		Name    optional.Field[string]           `json:"name,omitzero"`
//		EmojiID optional.Field[snowflake.EmojiID] `json:"emoji_id,omitzero"`
//	}
//
// A Field marshaled without omitzero cannot express "unset" and is written
// as null.
package optional

import (
	"bytes"
	"encoding/json"
)

type state uint8

const (
	stateUnset state = iota
	stateNull
	statePresent
)

// Field is a tri-state optional value. The zero value is unset.
type Field[T any] struct {
	value T
	state state
}

// Some returns a field set to v.
func Some[T any](v T) Field[T] {
	return Field[T]{value: v, state: statePresent}
}

// Null returns a field explicitly set to no value.
func Null[T any]() Field[T] {
	return Field[T]{state: stateNull}
}

// IsZero reports whether the field is unset. encoding/json consults it for
// the omitzero option.
func (f Field[T]) IsZero() bool {
	return f.state == stateUnset
}

// IsSet reports whether the field was explicitly set, to a value or to null.
func (f Field[T]) IsSet() bool {
	return f.state != stateUnset
}

// IsNull reports whether the field was explicitly set to no value.
func (f Field[T]) IsNull() bool {
	return f.state == stateNull
}

// Get returns the value and whether one is present. Unset and null fields
// both report false.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == statePresent
}

// MarshalJSON implements json.Marshaler.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != statePresent {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null yields a null
// field; a key absent from the document leaves the field unset.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Some(v)
	return nil
}
