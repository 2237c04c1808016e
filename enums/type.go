package enums

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/enum_ive_go/shared/helper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// MaxVariants is the largest variant count representable by a uint8 enum.
const MaxVariants = math.MaxUint8 + 1

// Type is the metadata bound to one managed enum type E: its name and the
// ordered labels of its variants. A Type is immutable once declared.
type Type[E any] struct {
	name        string
	labels      []string
	values      []E
	byLabel     map[string]int
	index       func(E) int
	fingerprint uint64
}

// Declare builds the descriptor of enum E. The i-th label names the variant E(i).
//
// Every problem found is reported, combined into a single error wrapping
// ErrInvalidDeclaration.
func Declare[E ~uint8](name string, labels ...string) (*Type[E], error) {
	if err := validateDeclaration(name, labels); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeclaration, name, err)
	}

	t := &Type[E]{
		name:    name,
		labels:  append([]string(nil), labels...),
		values:  make([]E, len(labels)),
		byLabel: make(map[string]int, len(labels)),
		index: func(e E) int {
			return int(e)
		},
		fingerprint: fingerprint(labels),
	}
	for i, label := range labels {
		t.values[i] = E(i)
		t.byLabel[label] = i
	}

	zap.L().Named("enums").Debug("declared enum",
		zap.String("enum", name),
		zap.Int("size", len(labels)),
		zap.Strings("labels", labels),
		zap.String("fingerprint", fmt.Sprintf("%016x", t.fingerprint)),
	)
	return t, nil
}

// MustDeclare is the panic-on-failure variant of Declare, meant for
// package-level declarations.
func MustDeclare[E ~uint8](name string, labels ...string) *Type[E] {
	return helper.Must(Declare[E](name, labels...))
}

func validateDeclaration(name string, labels []string) (err error) {
	if name == "" {
		err = multierr.Append(err, fmt.Errorf("empty enum name"))
	}
	switch {
	case len(labels) == 0:
		err = multierr.Append(err, fmt.Errorf("no variants"))
	case len(labels) > MaxVariants:
		err = multierr.Append(err, fmt.Errorf("%d variants exceed the limit of %d", len(labels), MaxVariants))
	}
	seen := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			err = multierr.Append(err, fmt.Errorf("variant %d has an empty label", i))
			continue
		}
		if first, dup := seen[label]; dup {
			err = multierr.Append(err, fmt.Errorf("variant %d duplicates label %q of variant %d", i, label, first))
			continue
		}
		seen[label] = i
	}
	return err
}

// fingerprint hashes the ordered label list. Labels are NUL-separated so
// that ("ab", "c") and ("a", "bc") differ.
func fingerprint(labels []string) uint64 {
	d := xxhash.New()
	for _, label := range labels {
		_, _ = d.WriteString(label)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Name returns the declared enum name.
func (t *Type[E]) Name() string { return t.name }

// Size returns the number of variants.
func (t *Type[E]) Size() int { return len(t.labels) }

// Fingerprint identifies the ordered label list of the enum.
func (t *Type[E]) Fingerprint() uint64 { return t.fingerprint }

// Labels returns a copy of the variant labels in index order.
func (t *Type[E]) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Values returns a copy of the variants in index order.
func (t *Type[E]) Values() []E {
	return append([]E(nil), t.values...)
}

// Contains reports whether e is one of the declared variants.
func (t *Type[E]) Contains(e E) bool {
	i := t.index(e)
	return i >= 0 && i < len(t.labels)
}

// Label returns the label of e, or "Name(n)" when e is not a declared variant.
func (t *Type[E]) Label(e E) string {
	if !t.Contains(e) {
		return fmt.Sprintf("%s(%d)", t.name, t.index(e))
	}
	return t.labels[t.index(e)]
}

// Parse returns the variant labelled label.
func (t *Type[E]) Parse(label string) (E, error) {
	i, ok := t.byLabel[label]
	if !ok {
		var zero E
		return zero, &NotFoundError{Enum: t.name, Value: fmt.Sprintf("%q", label)}
	}
	return t.values[i], nil
}

func (t *Type[E]) String() string {
	return fmt.Sprintf("enum %s%v", t.name, t.labels)
}

func (t *Type[E]) rangeError(i int) error {
	return &RangeError{Enum: t.name, Index: i, Size: len(t.labels)}
}
