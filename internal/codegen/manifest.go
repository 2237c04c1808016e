package codegen

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrManifest is returned when a manifest cannot be decoded.
var ErrManifest = errors.New("invalid enum manifest")

// LoadManifest decodes a YAML manifest. Unknown fields are rejected so that
// typos do not silently drop settings. The result is not validated; Render
// does that.
//
//	package: colors
//	enums:
//	  - name: Color
//	    variants: [Red, Green, Blue]
func LoadManifest(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("%w: empty document", ErrManifest)
		}
		return File{}, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return f, nil
}
