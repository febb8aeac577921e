package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/ll1/ast"
)

type YAMLEncoder struct {
	w    io.Writer
	node ast.Node
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(n ast.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	yn, err := nodeToJSON(e.node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yn)
}
