package enums

import (
	"iter"
	"reflect"

	"github.com/on-the-ground/enum_ive_go/shared/helper"
)

// Managed is satisfied by enum types declared through this package: a uint8
// based type whose EnumType method returns the descriptor built by Declare.
//
// The descriptor is parameterised by the type itself, so a type cannot be
// bound to the declaration of another enum.
type Managed[E any] interface {
	~uint8
	EnumType() *Type[E]
}

// managed is the dynamic form of Managed, used where T is unconstrained.
type managed[T any] interface {
	EnumType() *Type[T]
}

// TypeOf returns the descriptor of E.
// It panics with ErrUndeclared if E's EnumType method returns nil.
func TypeOf[E Managed[E]]() *Type[E] {
	var zero E
	t := zero.EnumType()
	if t == nil {
		panic(ErrUndeclared)
	}
	return t
}

// Size returns the number of variants of E.
func Size[E Managed[E]]() int {
	return TypeOf[E]().Size()
}

// SizeOf returns the number of variants of the enum e belongs to.
func SizeOf[E Managed[E]](e E) int {
	return e.EnumType().Size()
}

// IsManaged reports whether T is an enum declared through this package.
// It is false for every other type, including plain uint8 and types whose
// EnumType method returns nil.
func IsManaged[T any]() bool {
	if reflect.TypeFor[T]().Kind() != reflect.Uint8 {
		return false
	}
	var zero T
	m, ok := helper.GetTypedValueOf2[managed[T]](any(zero))
	return ok && m.EnumType() != nil
}

// IndexOf returns the underlying integer of e.
func IndexOf[E Managed[E]](e E) int {
	return int(e)
}

// ValueAt returns the variant with index i, or a *RangeError when i is
// negative or not smaller than Size[E]().
func ValueAt[E Managed[E]](i int) (E, error) {
	t := TypeOf[E]()
	if i < 0 || i >= t.Size() {
		var zero E
		return zero, t.rangeError(i)
	}
	return E(i), nil
}

// MustValueAt is the panic-on-failure variant of ValueAt.
func MustValueAt[E Managed[E]](i int) E {
	return helper.Must(ValueAt[E](i))
}

// Valid reports whether e is a declared variant of E.
func Valid[E Managed[E]](e E) bool {
	return TypeOf[E]().Contains(e)
}

// Parse returns the variant of E labelled label.
func Parse[E Managed[E]](label string) (E, error) {
	return TypeOf[E]().Parse(label)
}

// ForEach calls fn once per variant of E in index order.
//
// There is no way to stop early; range over All when that is needed.
func ForEach[E Managed[E]](fn func(E)) {
	for _, e := range TypeOf[E]().values {
		fn(e)
	}
}

// All returns an iterator over the variants of E in index order.
func All[E Managed[E]]() iter.Seq[E] {
	values := TypeOf[E]().values
	return func(yield func(E) bool) {
		for _, e := range values {
			if !yield(e) {
				return
			}
		}
	}
}
