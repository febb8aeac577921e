// Package format encodes expression trees for output. Each encoder writes
// one tree per Encode call to the writer it was created with.
package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/ll1/ast"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(n ast.Node) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"tree": func(w io.Writer) Encoder { return NewTreeEncoder(w) },
	"json": func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"yaml": func(w io.Writer) Encoder { return NewYAMLEncoder(w) },
}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	mk, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %v)", name, Names())
	}
	return mk(w), nil
}

// Names lists the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether name is a registered format.
func Valid(name string) bool {
	_, ok := encoders[name]
	return ok
}
