package types

import "encoding/json"

// Option is a field-presence wrapper for optional request fields. The zero
// value is "unset". An unset Option reports IsZero, so struct fields tagged
// `omitzero` are left out of the encoded record entirely rather than being
// sent as null or a zero value. The remote API distinguishes "not provided"
// from "provided as default", which makes this distinction load-bearing.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an unset Option. Equivalent to the zero value; provided for
// readability at call sites that reset a field.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSet reports whether a value is present.
func (o Option[T]) IsSet() bool { return o.set }

// IsZero reports whether the Option is unset. It is consulted by
// encoding/json for `omitzero` fields.
func (o Option[T]) IsZero() bool { return !o.set }

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.set }

// Or returns the held value, or def when unset.
func (o Option[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		// Only reachable when the field is not tagged omitzero.
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Option[T]{value: v, set: true}
	return nil
}
