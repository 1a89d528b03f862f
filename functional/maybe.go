package functional

import "reflect"

// Maybe is an immutable container in exactly one of two states:
// Just(value) holding a present value, or None holding nothing.
// The zero value of Maybe[T] is None.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just wraps v in a present Maybe.
//
// As a deliberate exception to the usual optional-type convention,
// Just of an absent value degrades to None instead of holding it: if
// T is a nilable kind (pointer, interface, map, slice, func, chan)
// and v is nil, the result is None. Callers that need to hold a nil
// value cannot; use a non-nilable T instead.
func Just[T any](v T) Maybe[T] {
	if isAbsent(v) {
		return Maybe[T]{}
	}
	return Maybe[T]{value: v, present: true}
}

// None returns the absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From constructs a Maybe from a pointer: nil yields None, anything
// else yields Just of the pointed-to value.
func From[T any](p *T) Maybe[T] {
	if p == nil {
		return Maybe[T]{}
	}
	return Maybe[T]{value: *p, present: true}
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool { return m.present }

// IsNone reports whether m is absent.
func (m Maybe[T]) IsNone() bool { return !m.present }

// Get returns the held value and whether it is present. On None the
// value is T's zero value.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.present }

// OrElse returns the held value, or def if m is None.
func (m Maybe[T]) OrElse(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

// Map applies fn to the held value, producing a new Maybe. On None
// fn is not invoked. For maps that change the element type use the
// package-level Map (methods cannot introduce type parameters).
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	if !m.present {
		return m
	}
	return Just(fn(m.value))
}

// FlatMap applies fn, which itself returns a Maybe, to the held
// value and returns fn's result directly. On None fn is not invoked.
func (m Maybe[T]) FlatMap(fn func(T) Maybe[T]) Maybe[T] {
	if !m.present {
		return m
	}
	return fn(m.value)
}

// Map is the type-changing form of Maybe.Map.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.present {
		return Maybe[U]{}
	}
	return Just(fn(m.value))
}

// FlatMap is the type-changing form of Maybe.FlatMap.
func FlatMap[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Maybe[U]{}
	}
	return fn(m.value)
}

// Handlers supplies the two branches of a Match. A nil handler makes
// its branch yield R's zero value.
type Handlers[T, R any] struct {
	Just func(T) R
	None func() R
}

// Match eliminates m by invoking exactly one handler: Just with the
// held value, or None with no arguments.
func Match[T, R any](m Maybe[T], h Handlers[T, R]) R {
	if m.present {
		if h.Just == nil {
			var zero R
			return zero
		}
		return h.Just(m.value)
	}
	if h.None == nil {
		var zero R
		return zero
	}
	return h.None()
}
