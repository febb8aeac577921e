package ast

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ll1/grammar"
	"github.com/dhamidi/ll1/parser"
)

func buildString(t *testing.T, input string) Node {
	t.Helper()
	tokens, err := parser.Parse(input)
	require.NoError(t, err, "parse %q", input)
	n, err := Build(tokens)
	require.NoError(t, err, "build %q", input)
	return n
}

func TestBuildShapes(t *testing.T) {
	for _, test := range []struct {
		Name     string
		Input    string
		Expected string
	}{
		{
			Name:     "Decimal plus integer",
			Input:    "1.2+3",
			Expected: "BinaryOp(NumberLiteral(1.2), +, NumberLiteral(3))",
		},
		{
			Name:     "Group minus leading dot literal",
			Input:    "(12*3)-.4",
			Expected: "BinaryOp(BinaryOp(NumberLiteral(12), *, NumberLiteral(3)), -, NumberLiteral(.4))",
		},
		{
			Name:     "Negation divided by group",
			Input:    "-5/(2+1)",
			Expected: "BinaryOp(UnaryOp(-, NumberLiteral(5)), /, BinaryOp(NumberLiteral(2), +, NumberLiteral(1)))",
		},
		{
			Name:     "Subtraction is left associative",
			Input:    "1-2-3",
			Expected: "BinaryOp(BinaryOp(NumberLiteral(1), -, NumberLiteral(2)), -, NumberLiteral(3))",
		},
		{
			Name:     "Mixed additive operators fold left",
			Input:    "1+2-3+4",
			Expected: "BinaryOp(BinaryOp(BinaryOp(NumberLiteral(1), +, NumberLiteral(2)), -, NumberLiteral(3)), +, NumberLiteral(4))",
		},
		{
			Name:     "Division is left associative",
			Input:    "8/4/2",
			Expected: "BinaryOp(BinaryOp(NumberLiteral(8), /, NumberLiteral(4)), /, NumberLiteral(2))",
		},
		{
			Name:     "Multiplication binds tighter than addition",
			Input:    "1+2*3",
			Expected: "BinaryOp(NumberLiteral(1), +, BinaryOp(NumberLiteral(2), *, NumberLiteral(3)))",
		},
		{
			Name:     "Parentheses override precedence",
			Input:    "(1+2)*3",
			Expected: "BinaryOp(BinaryOp(NumberLiteral(1), +, NumberLiteral(2)), *, NumberLiteral(3))",
		},
		{
			Name:     "Stacked negation",
			Input:    "--5",
			Expected: "UnaryOp(-, UnaryOp(-, NumberLiteral(5)))",
		},
		{
			Name:     "Negation binds tighter than multiplication",
			Input:    "-2*3",
			Expected: "BinaryOp(UnaryOp(-, NumberLiteral(2)), *, NumberLiteral(3))",
		},
		{
			Name:     "Redundant parentheses vanish",
			Input:    "((7))",
			Expected: "NumberLiteral(7)",
		},
		{
			Name:     "Whitespace inside literals is dropped",
			Input:    " 1 2 . 5 ",
			Expected: "NumberLiteral(12.5)",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			n := buildString(t, test.Input)
			assert.Equal(t, test.Expected, n.String())
		})
	}
}

func TestBuildLiteralText(t *testing.T) {
	for input, want := range map[string]string{
		".4":      ".4",
		"12.3":    "12.3",
		"007":     "007",
		"0.000":   "0.000",
		"123456":  "123456",
		".0001":   ".0001",
		"3.14159": "3.14159",
	} {
		n := buildString(t, input)
		lit, ok := n.(*NumberLiteral)
		require.True(t, ok, "%q built %T", input, n)
		assert.Equal(t, want, lit.Text)
	}
}

func TestBuildPositions(t *testing.T) {
	n := buildString(t, "(12*3)-.4")
	bin := n.(*BinaryOp)
	assert.Equal(t, 1, bin.Pos())

	left := bin.Left.(*BinaryOp)
	assert.Equal(t, 1, left.Left.Pos())
	assert.Equal(t, 4, left.Right.Pos())
	assert.Equal(t, 7, bin.Right.Pos())

	neg := buildString(t, " -5").(*UnaryOp)
	assert.Equal(t, 1, neg.Pos())
	assert.Equal(t, 2, neg.Operand.Pos())
}

func TestBuildConstructionErrors(t *testing.T) {
	for _, test := range []struct {
		Input    string
		Expected grammar.Symbol
		Found    string
		Pos      int
	}{
		{Input: "1+", Expected: grammar.Digit, Found: "$", Pos: 2},
		{Input: "(1", Expected: grammar.RParen, Found: "$", Pos: 2},
		{Input: "1)", Expected: grammar.EOF, Found: ")", Pos: 1},
		{Input: "1.", Expected: grammar.Digit, Found: "$", Pos: 2},
		{Input: "", Expected: grammar.Digit, Found: "$", Pos: 0},
	} {
		t.Run(test.Input, func(t *testing.T) {
			n, err := Build(parser.Tokenize(test.Input))
			assert.Nil(t, n)
			var cerr *ConstructionError
			require.True(t, errors.As(err, &cerr), "err = %v", err)
			assert.Equal(t, test.Expected, cerr.Expected)
			assert.Equal(t, test.Found, cerr.Found.Value)
			assert.Equal(t, test.Pos, cerr.Found.Pos)
		})
	}
}

func TestConstructionErrorMessage(t *testing.T) {
	_, err := Build(parser.Tokenize("(1"))
	require.Error(t, err)
	assert.Equal(t, "tree construction: expected ')' but found '$' at position 2", err.Error())
}

func TestMustBuild(t *testing.T) {
	tokens, err := parser.Parse("2*3")
	require.NoError(t, err)
	assert.Equal(t, "BinaryOp(NumberLiteral(2), *, NumberLiteral(3))", MustBuild(tokens).String())

	assert.Panics(t, func() {
		MustBuild(parser.Tokenize("2*"))
	})
}

func TestBuildWithoutEndMarker(t *testing.T) {
	tokens := parser.Tokenize("4/2")
	n, err := Build(tokens[:len(tokens)-1])
	require.NoError(t, err)
	assert.Equal(t, "BinaryOp(NumberLiteral(4), /, NumberLiteral(2))", n.String())
}

// genExpr produces a random sentence of the grammar.
func genExpr(r *rand.Rand, depth int) string {
	var b strings.Builder
	genTerm(r, &b, depth)
	for r.Intn(3) == 0 {
		b.WriteString([]string{"+", "-"}[r.Intn(2)])
		genTerm(r, &b, depth)
	}
	return b.String()
}

func genTerm(r *rand.Rand, b *strings.Builder, depth int) {
	genFactor(r, b, depth)
	for r.Intn(3) == 0 {
		b.WriteString([]string{"*", "/"}[r.Intn(2)])
		genFactor(r, b, depth)
	}
}

func genFactor(r *rand.Rand, b *strings.Builder, depth int) {
	choice := r.Intn(5)
	if depth <= 0 {
		choice = 4
	}
	switch choice {
	case 0:
		b.WriteString("(")
		b.WriteString(genExpr(r, depth-1))
		b.WriteString(")")
	case 1:
		b.WriteString("-")
		genFactor(r, b, depth-1)
	default:
		b.WriteString(genNumber(r))
	}
}

func genNumber(r *rand.Rand) string {
	digits := func() string {
		n := 1 + r.Intn(3)
		var s strings.Builder
		for i := 0; i < n; i++ {
			s.WriteByte(byte('0' + r.Intn(10)))
		}
		return s.String()
	}
	switch r.Intn(3) {
	case 0:
		return "." + digits()
	case 1:
		return digits() + "." + digits()
	}
	return digits()
}

func TestAcceptedInputsAlwaysBuild(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p := parser.New()

	for i := 0; i < 500; i++ {
		input := genExpr(r, 4)
		res, err := p.Parse(input)
		require.NoError(t, err, "parse %q", input)

		n, err := Build(res.Tokens)
		require.NoError(t, err, "build %q", input)

		// Every literal re-lexes and re-parses to itself.
		for _, lit := range Literals(n) {
			tokens, err := parser.Parse(lit.Text)
			require.NoError(t, err, "literal %q of %q", lit.Text, input)
			again, err := Build(tokens)
			require.NoError(t, err)
			relit, ok := again.(*NumberLiteral)
			require.True(t, ok, "literal %q rebuilt as %T", lit.Text, again)
			assert.Equal(t, lit.Text, relit.Text)
		}

		// Literals appear in source order with their source text.
		var joined strings.Builder
		for _, lit := range Literals(n) {
			joined.WriteString(lit.Text)
		}
		var digitsAndDots strings.Builder
		for _, ch := range input {
			if ch == '.' || (ch >= '0' && ch <= '9') {
				digitsAndDots.WriteRune(ch)
			}
		}
		assert.Equal(t, digitsAndDots.String(), joined.String(), "input %q", input)
	}
}

func TestWalkAndDepth(t *testing.T) {
	n := buildString(t, "-5/(2+1)")

	var labels []string
	Walk(n, func(n Node) {
		switch n := n.(type) {
		case *NumberLiteral:
			labels = append(labels, n.Text)
		case *UnaryOp:
			labels = append(labels, "u"+n.Op)
		case *BinaryOp:
			labels = append(labels, n.Op)
		}
	})
	assert.Equal(t, []string{"/", "u-", "5", "+", "2", "1"}, labels)
	assert.Equal(t, 3, Depth(n))
	assert.Equal(t, 0, Depth(nil))

	Walk(nil, func(Node) { t.Error("Walk(nil) called fn") })
}
