// Package option provides an explicit absence marker and the two fallback
// disciplines over it.
//
// Option[T] distinguishes "no value" from every present value, including
// falsy-but-present ones such as the empty string or zero. OrElse
// substitutes a fallback only on absence; OrFalsy additionally substitutes
// on the zero value. The two diverge exactly on present zero values -
// picking the wrong one silently swallows legitimate data.
package option

// Option holds either a value of T or the absence marker.
// The zero Option is None.
type Option[T any] struct {
	val     T
	present bool
}

// Some wraps a present value. Some of a zero value is present, not None.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, present: true}
}

// None is the absence marker.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Get returns the contained value and whether it is present.
// Absent yields (zero, false), never a panic.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.present
}

// OrElse returns the contained value when present, and fallback only when
// absent. A present zero value (empty string, zero) is returned as-is.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.val
	}
	return fallback
}

// OrFalsy returns fallback when the option is absent OR when the
// contained value is T's zero value. This is the truthiness-style
// discipline: it cannot tell a stored empty string from no value at all.
func OrFalsy[T comparable](o Option[T], fallback T) T {
	var zero T
	if !o.present || o.val == zero {
		return fallback
	}
	return o.val
}

// Map applies fn to the contained value, short-circuiting to None when
// the input is absent. Chaining Maps walks a path of possibly-absent
// links and stops silently at the first absent one.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.val))
}

// AndThen is Map for steps that are themselves optional: the step may
// report absence, and an absent input short-circuits without invoking it.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.val)
}
