package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"unicode"
	"unicode/utf8"

	"github.com/on-the-ground/enum_ive_go/enums"
	"go.uber.org/multierr"
)

// ErrInvalidDefinition wraps every problem reported by Validate.
var ErrInvalidDefinition = errors.New("invalid enum definition")

// File is the input of one generated Go file.
type File struct {
	Package string       `yaml:"package"`
	Enums   []Definition `yaml:"enums"`
}

// Definition describes one enum: its type name and ordered variants.
type Definition struct {
	Name     string   `yaml:"name"`
	Doc      string   `yaml:"doc,omitempty"`
	Variants []string `yaml:"variants"`
	// Labels overrides the string label of each variant; defaults to the
	// variant names.
	Labels []string `yaml:"labels,omitempty"`
	// Prefix names the constants <Name><Variant> so that several enums
	// sharing variant names can live in one package.
	Prefix bool `yaml:"prefix,omitempty"`
}

// Constants returns the Go constant names of the variants.
func (d Definition) Constants() []string {
	consts := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		if d.Prefix {
			consts[i] = d.Name + v
		} else {
			consts[i] = v
		}
	}
	return consts
}

// VariantLabels returns the string labels of the variants.
func (d Definition) VariantLabels() []string {
	if len(d.Labels) > 0 {
		return d.Labels
	}
	return d.Variants
}

// identifiers returns every package-level name a definition introduces.
func (d Definition) identifiers() []string {
	return append([]string{
		d.Name,
		d.Name + "Count",
		typeVar(d.Name),
		"Parse" + d.Name,
		"New" + d.Name + "Array",
	}, d.Constants()...)
}

// Validate checks that f renders into a compilable file. All problems are
// reported together.
func Validate(f File) error {
	var err error
	if !isIdent(f.Package) {
		err = multierr.Append(err, fmt.Errorf("package %q is not a valid identifier", f.Package))
	}
	if len(f.Enums) == 0 {
		err = multierr.Append(err, fmt.Errorf("no enums defined"))
	}

	declared := make(map[string]string)
	for _, d := range f.Enums {
		err = multierr.Append(err, validateDefinition(d))
		for _, id := range d.identifiers() {
			if reserved(id) {
				err = multierr.Append(err, fmt.Errorf("enum %s: identifier %s is predeclared or shadows the enums import", d.Name, id))
				continue
			}
			if owner, dup := declared[id]; dup {
				err = multierr.Append(err, fmt.Errorf("enum %s: identifier %s already declared by enum %s", d.Name, id, owner))
				continue
			}
			declared[id] = d.Name
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return nil
}

func validateDefinition(d Definition) (err error) {
	switch {
	case !isIdent(d.Name):
		err = multierr.Append(err, fmt.Errorf("enum name %q is not a valid identifier", d.Name))
	case d.Name == "V":
		err = multierr.Append(err, fmt.Errorf("enum name V collides with the array constructor's type parameter"))
	}
	for _, v := range d.Variants {
		if !isIdent(v) {
			err = multierr.Append(err, fmt.Errorf("enum %s: variant %q is not a valid identifier", d.Name, v))
		}
	}
	if len(d.Labels) > 0 && len(d.Labels) != len(d.Variants) {
		err = multierr.Append(err, fmt.Errorf("enum %s: %d labels for %d variants", d.Name, len(d.Labels), len(d.Variants)))
	}
	// Same label rules the generated MustDeclare call enforces at init.
	if _, declErr := enums.Declare[uint8](d.Name, d.VariantLabels()...); declErr != nil {
		err = multierr.Append(err, declErr)
	}
	return err
}

// reserved reports names a generated file cannot declare at package level:
// the universe scope (iota, string, error, ...) and the enums import.
func reserved(id string) bool {
	return id == "enums" || types.Universe.Lookup(id) != nil
}

func isIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

func typeVar(name string) string {
	return lowerFirst(name) + "Type"
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
