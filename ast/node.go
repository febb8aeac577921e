// Package ast holds the abstract syntax tree of an arithmetic expression,
// the recursive-descent builder that derives it from an accepted token
// sequence, and its box-drawing renderer.
//
// Node hierarchy:
//
//	Node (sealed interface)
//	├── *NumberLiteral - literal source text, never evaluated
//	├── *UnaryOp       - negation of one operand
//	└── *BinaryOp      - + - * / of two operands
package ast

import "fmt"

// Node is implemented by *NumberLiteral, *UnaryOp and *BinaryOp only.
// Code handling nodes switches over these three types.
type Node interface {
	// Pos returns the offset of the node's first token in the input.
	Pos() int
	fmt.Stringer
	node()
}

// NumberLiteral is a literal such as "12", "1.2" or ".4", kept as written.
type NumberLiteral struct {
	Text string
	At   int
}

// UnaryOp applies Op to Operand. The only operator is "-".
type UnaryOp struct {
	Op      string
	Operand Node
	At      int
}

// BinaryOp combines Left and Right with one of "+", "-", "*" or "/".
// At is the position of Left.
type BinaryOp struct {
	Left  Node
	Op    string
	Right Node
	At    int
}

func (n *NumberLiteral) Pos() int { return n.At }
func (n *UnaryOp) Pos() int       { return n.At }
func (n *BinaryOp) Pos() int      { return n.At }

func (*NumberLiteral) node() {}
func (*UnaryOp) node()       {}
func (*BinaryOp) node()      {}

func (n *NumberLiteral) String() string {
	return fmt.Sprintf("NumberLiteral(%s)", n.Text)
}

func (n *UnaryOp) String() string {
	return fmt.Sprintf("UnaryOp(%s, %v)", n.Op, n.Operand)
}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("BinaryOp(%v, %s, %v)", n.Left, n.Op, n.Right)
}

// Literals returns the number literals of n from left to right.
func Literals(n Node) []*NumberLiteral {
	var out []*NumberLiteral
	Walk(n, func(n Node) {
		if lit, ok := n.(*NumberLiteral); ok {
			out = append(out, lit)
		}
	})
	return out
}

// Walk calls fn for n and then for each of its descendants, depth-first,
// left to right.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	switch n := n.(type) {
	case *UnaryOp:
		Walk(n.Operand, fn)
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(n Node) int {
	switch n := n.(type) {
	case *NumberLiteral:
		return 1
	case *UnaryOp:
		return 1 + Depth(n.Operand)
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	}
	return 0
}
