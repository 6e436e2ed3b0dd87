package expression

import (
	"math"

	"github.com/rs/zerolog/log"
)

const (
	// Target is the value every solution must reach.
	Target = 24.0
	// Epsilon absorbs floating-point division error when comparing
	// against Target, and guards near-zero divisors. It is not a
	// domain tolerance; values are never meant to be "almost 24".
	Epsilon = 1e-4
)

// Result is the outcome of one Solve call. Solution and FirstStepHint
// are empty when Solvable is false.
type Result struct {
	Solvable      bool
	Solution      string
	FirstStepHint string
}

// Solve searches for an expression combining all the given numbers,
// each used exactly once, that evaluates to 24. It reports the first
// solution found under a fixed depth-first order, so identical input
// always yields an identical result. Solve is pure and safe to call
// concurrently.
//
// The public entry point takes the game's four card values, but any
// frontier size of at least one number works.
func Solve(numbers []float64) Result {
	frontier := make([]*Node, len(numbers))
	for i, v := range numbers {
		frontier[i] = newLeaf(v)
	}
	root := search(frontier)
	if root == nil {
		log.Debug().Floats64("numbers", numbers).Msg("no solution")
		return Result{}
	}
	return Result{
		Solvable:      true,
		Solution:      root.Text,
		FirstStepHint: firstStep(root),
	}
}

// search combines ordered pairs of frontier nodes with each operator,
// recursing on the shrunken frontier until one node remains. The first
// terminal node within Epsilon of Target propagates straight back up;
// no sibling branches are explored after that.
func search(frontier []*Node) *Node {
	if len(frontier) == 0 {
		return nil
	}
	if len(frontier) == 1 {
		if math.Abs(frontier[0].Value-Target) < Epsilon {
			return frontier[0]
		}
		return nil
	}
	// Ordered pairs, not combinations: subtraction and division are
	// non-commutative, so a-b and b-a are distinct branches.
	for i := range frontier {
		for j := range frontier {
			if i == j {
				continue
			}
			for _, op := range operators {
				if op == Div && math.Abs(frontier[j].Value) < Epsilon {
					continue
				}
				next := make([]*Node, 0, len(frontier)-1)
				for k, n := range frontier {
					if k != i && k != j {
						next = append(next, n)
					}
				}
				next = append(next, newComposite(op, frontier[i], frontier[j]))
				if root := search(next); root != nil {
					return root
				}
			}
		}
	}
	return nil
}

// firstStep renders the innermost operation of a solution tree: the
// first composite, preferring the left subtree, whose children are
// both leaves. A bare-leaf root has no first step.
func firstStep(root *Node) string {
	n := innermost(root)
	if n == nil {
		return ""
	}
	return n.Left.Text + " " + n.Op.Symbol() + " " + n.Right.Text
}

func innermost(n *Node) *Node {
	if n == nil || n.IsLeaf() {
		return nil
	}
	if n.Left.IsLeaf() && n.Right.IsLeaf() {
		return n
	}
	if m := innermost(n.Left); m != nil {
		return m
	}
	return innermost(n.Right)
}
