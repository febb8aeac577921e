package format

import (
	"io"

	"github.com/dhamidi/ll1/ast"
)

// TreeEncoder writes the box-drawing rendering of a tree.
type TreeEncoder struct {
	w    io.Writer
	node ast.Node
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(n ast.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	return []byte(ast.Render(e.node)), nil
}
