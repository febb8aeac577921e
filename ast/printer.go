package ast

import "strings"

const (
	branch   = "├── "
	corner   = "└── "
	bar      = "│   "
	blank    = "    "
	lineFeed = "\n"
)

// Render draws n as a tree, one node per line. Operators and literal text
// label the nodes; the last child of a node hangs from a corner.
//
//	-
//	├── *
//	│   ├── 12
//	│   └── 3
//	└── .4
func Render(n Node) string {
	var b strings.Builder
	render(&b, n, "", "")
	return b.String()
}

func render(b *strings.Builder, n Node, prefix, childPrefix string) {
	b.WriteString(prefix)
	switch n := n.(type) {
	case *NumberLiteral:
		b.WriteString(n.Text)
		b.WriteString(lineFeed)
	case *UnaryOp:
		b.WriteString(n.Op)
		b.WriteString(lineFeed)
		render(b, n.Operand, childPrefix+corner, childPrefix+blank)
	case *BinaryOp:
		b.WriteString(n.Op)
		b.WriteString(lineFeed)
		render(b, n.Left, childPrefix+branch, childPrefix+bar)
		render(b, n.Right, childPrefix+corner, childPrefix+blank)
	default:
		b.WriteString("?")
		b.WriteString(lineFeed)
	}
}
