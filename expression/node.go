// Package expression contains the combinatorial search engine for the
// 24 game: given four card values, find an arithmetic expression using
// each value exactly once that evaluates to 24.
package expression

import "strconv"

// Precedence classifies a node's top-level operator for rendering.
// Leaves are their own class so they never get parenthesized.
type Precedence int

const (
	PrecLeaf Precedence = iota
	PrecAdditive
	PrecMultiplicative
)

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// operators is the fixed search order. Changing it changes which of
// possibly many valid solutions gets reported.
var operators = [4]Operator{Add, Sub, Mul, Div}

var opSymbols = [4]string{"+", "-", "×", "÷"}

// Symbol returns the display glyph for the operator. The engine emits
// × and ÷ directly; callers render these strings verbatim.
func (o Operator) Symbol() string {
	return opSymbols[o]
}

func (o Operator) Precedence() Precedence {
	if o == Mul || o == Div {
		return PrecMultiplicative
	}
	return PrecAdditive
}

// Apply computes a <op> b. Division by (near-)zero is the caller's
// responsibility to guard; Apply itself never inspects its operands.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	default:
		return a / b
	}
}

// Node is one node of a binary expression tree built during search.
// A node is either a leaf wrapping an original card value (Left and
// Right nil) or a composite owning exactly two children. Nodes are
// immutable once built; Text is cached at construction and always
// re-derivable from the subtree.
type Node struct {
	Value float64
	Text  string
	Prec  Precedence
	Op    Operator
	Left  *Node
	Right *Node
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

func newLeaf(v float64) *Node {
	return &Node{
		Value: v,
		Text:  strconv.FormatFloat(v, 'f', -1, 64),
		Prec:  PrecLeaf,
	}
}

func newComposite(op Operator, left, right *Node) *Node {
	return &Node{
		Value: op.Apply(left.Value, right.Value),
		Text:  renderText(op, left, right),
		Prec:  op.Precedence(),
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// renderText builds the precedence-correct text for left <op> right.
// A child is parenthesized when it binds more loosely than the parent
// operator; a right child is additionally parenthesized at equal
// precedence under - and ÷ to display left-associativity correctly
// (8 - (5 - 2), not 8 - 5 - 2).
func renderText(op Operator, left, right *Node) string {
	opLevel := op.Precedence()
	lt := left.Text
	if !left.IsLeaf() && left.Prec < opLevel {
		lt = "(" + lt + ")"
	}
	rt := right.Text
	if !right.IsLeaf() &&
		(right.Prec < opLevel || (right.Prec == opLevel && (op == Sub || op == Div))) {
		rt = "(" + rt + ")"
	}
	return lt + " " + op.Symbol() + " " + rt
}
