package types

// Option is the result of a coercion that may yield no value. None covers
// both absent and malformed input; the two are not told apart.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsNone reports whether o holds no value.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrNil returns the value boxed in an interface, or a nil interface for None.
// It is the shape schema engines expect for "no value".
func (o Option[T]) OrNil() interface{} {
	if !o.ok {
		return nil
	}
	return o.value
}
