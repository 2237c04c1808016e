package enums

import (
	"iter"

	"github.com/on-the-ground/enum_ive_go/shared/helper"
)

// Array holds exactly one value of type V per variant of E, stored in
// variant index order. Its length is fixed to Size[E]() and never changes.
//
// The zero value is ready to use: every slot holds the zero V.
type Array[E Managed[E], V any] struct {
	data []V
}

// NewArray returns an Array initialised from values in variant index order.
// values must hold exactly Size[E]() elements; an empty list yields zero
// values. Any other count is a *SizeMismatchError.
//
// Generated enums also provide a typed constructor with one parameter per
// variant, which turns a wrong count into a compile error.
func NewArray[E Managed[E], V any](values ...V) (*Array[E, V], error) {
	t := TypeOf[E]()
	a := &Array[E, V]{data: make([]V, t.Size())}
	switch len(values) {
	case 0:
	case t.Size():
		copy(a.data, values)
	default:
		return nil, &SizeMismatchError{Enum: t.Name(), Want: t.Size(), Got: len(values)}
	}
	return a, nil
}

// MustNewArray is the panic-on-failure variant of NewArray.
func MustNewArray[E Managed[E], V any](values ...V) *Array[E, V] {
	return helper.Must(NewArray[E, V](values...))
}

// NewFilledArray returns an Array with v stored in every slot.
func NewFilledArray[E Managed[E], V any](v V) *Array[E, V] {
	a := &Array[E, V]{}
	a.Fill(v)
	return a
}

// Rekey copies src into a new Array keyed by enum F. F and E must have the
// same number of variants; slot i of src becomes slot i of the result.
func Rekey[F Managed[F], E Managed[E], V any](src *Array[E, V]) (*Array[F, V], error) {
	dst := &Array[F, V]{}
	if err := CopyInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// CopyInto overwrites dst with the values of src, which may be keyed by a
// different enum of the same size.
func CopyInto[F Managed[F], E Managed[E], V any](dst *Array[F, V], src *Array[E, V]) error {
	if want, got := Size[F](), Size[E](); want != got {
		return &SizeMismatchError{Enum: TypeOf[F]().Name(), Want: want, Got: got}
	}
	copy(dst.slots(), src.slots())
	return nil
}

func (a *Array[E, V]) slots() []V {
	if a.data == nil {
		a.data = make([]V, Size[E]())
	}
	return a.data
}

func (a *Array[E, V]) check(i int) error {
	if i < 0 || i >= len(a.slots()) {
		return TypeOf[E]().rangeError(i)
	}
	return nil
}

// Len returns Size[E]().
func (a *Array[E, V]) Len() int {
	return len(a.slots())
}

// At returns the value stored at index i.
func (a *Array[E, V]) At(i int) (V, error) {
	if err := a.check(i); err != nil {
		var zero V
		return zero, err
	}
	return a.data[i], nil
}

// Get returns the value stored for variant e.
func (a *Array[E, V]) Get(e E) (V, error) {
	return a.At(int(e))
}

// MustAt is the panic-on-failure variant of At; the panic value is a *RangeError.
func (a *Array[E, V]) MustAt(i int) V {
	return helper.Must(a.At(i))
}

// MustGet is the panic-on-failure variant of Get.
func (a *Array[E, V]) MustGet(e E) V {
	return helper.Must(a.Get(e))
}

// PtrAt returns a pointer to the slot at index i for in-place updates.
func (a *Array[E, V]) PtrAt(i int) (*V, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	return &a.data[i], nil
}

// Ptr returns a pointer to the slot of variant e.
func (a *Array[E, V]) Ptr(e E) (*V, error) {
	return a.PtrAt(int(e))
}

// SetAt stores v at index i.
func (a *Array[E, V]) SetAt(i int, v V) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Set stores v for variant e.
func (a *Array[E, V]) Set(e E, v V) error {
	return a.SetAt(int(e), v)
}

// Fill stores v in every slot.
func (a *Array[E, V]) Fill(v V) {
	data := a.slots()
	for i := range data {
		data[i] = v
	}
}

// Slice returns a copy of the values in index order.
func (a *Array[E, V]) Slice() []V {
	return append([]V(nil), a.slots()...)
}

// Clone returns an independent copy of a.
func (a *Array[E, V]) Clone() *Array[E, V] {
	return &Array[E, V]{data: a.Slice()}
}

// All iterates over variant/value pairs in index order.
func (a *Array[E, V]) All() iter.Seq2[E, V] {
	data := a.slots()
	return func(yield func(E, V) bool) {
		for i, v := range data {
			if !yield(E(i), v) {
				return
			}
		}
	}
}

// Values iterates over the stored values in index order.
func (a *Array[E, V]) Values() iter.Seq[V] {
	data := a.slots()
	return func(yield func(V) bool) {
		for _, v := range data {
			if !yield(v) {
				return
			}
		}
	}
}

// Refs iterates over variant/slot pairs; writes through the pointer update a.
func (a *Array[E, V]) Refs() iter.Seq2[E, *V] {
	data := a.slots()
	return func(yield func(E, *V) bool) {
		for i := range data {
			if !yield(E(i), &data[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the first variant whose value satisfies pred.
func (a *Array[E, V]) IndexFunc(pred func(V) bool) (E, bool) {
	for i, v := range a.slots() {
		if pred(v) {
			return E(i), true
		}
	}
	var zero E
	return zero, false
}

// Find returns the first variant, in index order, whose value equals v.
// It returns a *NotFoundError when no slot matches.
func Find[E Managed[E], V comparable](a *Array[E, V], v V) (E, error) {
	if e, ok := Lookup(a, v); ok {
		return e, nil
	}
	var zero E
	return zero, &NotFoundError{Enum: TypeOf[E]().Name(), Value: describe(v)}
}

// FindOr is like Find but returns def when no slot matches.
func FindOr[E Managed[E], V comparable](a *Array[E, V], v V, def E) E {
	if e, ok := Lookup(a, v); ok {
		return e
	}
	return def
}

// Lookup is like Find but reports a miss through ok instead of an error.
func Lookup[E Managed[E], V comparable](a *Array[E, V], v V) (e E, ok bool) {
	return a.IndexFunc(func(x V) bool { return x == v })
}
