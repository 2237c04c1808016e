package enums

import (
	"iter"

	"github.com/on-the-ground/enum_ive_go/shared/helper"
)

// noCopy flags copies of the embedding struct under `go vet` (copylocks).
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Members is the read-only list of every variant of E, in index order.
// It must not be copied after first use; share the pointer instead.
type Members[E Managed[E]] struct {
	_      noCopy
	values []E
}

// NewMembers returns the variants of E.
func NewMembers[E Managed[E]]() *Members[E] {
	return &Members[E]{values: TypeOf[E]().Values()}
}

func (m *Members[E]) list() []E {
	if m.values == nil {
		m.values = TypeOf[E]().Values()
	}
	return m.values
}

// Len returns Size[E]().
func (m *Members[E]) Len() int {
	return len(m.list())
}

// At returns the variant at index i.
func (m *Members[E]) At(i int) (E, error) {
	values := m.list()
	if i < 0 || i >= len(values) {
		var zero E
		return zero, TypeOf[E]().rangeError(i)
	}
	return values[i], nil
}

// MustAt is the panic-on-failure variant of At.
func (m *Members[E]) MustAt(i int) E {
	return helper.Must(m.At(i))
}

// Get returns e if it is a declared variant.
func (m *Members[E]) Get(e E) (E, error) {
	return m.At(int(e))
}

// All iterates over the variants in index order.
func (m *Members[E]) All() iter.Seq[E] {
	values := m.list()
	return func(yield func(E) bool) {
		for _, e := range values {
			if !yield(e) {
				return
			}
		}
	}
}
