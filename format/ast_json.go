package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/ll1/ast"
)

type JSONEncoder struct {
	w    io.Writer
	node ast.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(n ast.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	jn, err := nodeToJSON(e.node)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(jn, "", "  ")
}

// astNode is the shape shared by the JSON and YAML encoders.
type astNode struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Op       string     `json:"op,omitempty" yaml:"op,omitempty"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Pos      int        `json:"pos" yaml:"pos"`
	Children []*astNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func nodeToJSON(n ast.Node) (*astNode, error) {
	switch n := n.(type) {
	case *ast.NumberLiteral:
		return &astNode{Kind: "NumberLiteral", Text: n.Text, Pos: n.Pos()}, nil
	case *ast.UnaryOp:
		operand, err := nodeToJSON(n.Operand)
		if err != nil {
			return nil, err
		}
		return &astNode{Kind: "UnaryOp", Op: n.Op, Pos: n.Pos(), Children: []*astNode{operand}}, nil
	case *ast.BinaryOp:
		left, err := nodeToJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := nodeToJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return &astNode{Kind: "BinaryOp", Op: n.Op, Pos: n.Pos(), Children: []*astNode{left, right}}, nil
	}
	return nil, fmt.Errorf("cannot encode node of type %T", n)
}
