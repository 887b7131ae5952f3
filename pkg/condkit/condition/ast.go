package condition

import "context"

// Node is a parsed condition expression. The set of variants is
// closed: Or, And and Comparison.
type Node interface {
	isNode()
}

// Or is a logical OR of two conditions. Left is evaluated first and
// Right is skipped when Left is already true.
type Or struct {
	Left  Node
	Right Node
}

func (Or) isNode() {}

// And is a logical AND of two conditions. Left is evaluated first and
// Right is skipped when Left is false.
type And struct {
	Left  Node
	Right Node
}

func (And) isNode() {}

// Comparison holds two raw operand strings and the comparator between
// them. Operands keep their unresolved placeholder text; resolution
// happens on every evaluation, so the same node can be reused for
// different subjects.
type Comparison struct {
	Left  string
	Op    Comparator
	Right string
}

func (Comparison) isNode() {}

// Resolver substitutes placeholder references in comparison operands.
// Implementations must tolerate unresolved references by returning the
// input unchanged, and must be safe to call twice per comparison.
type Resolver interface {
	Resolve(ctx context.Context, subject any, s string) string
}

// Eval evaluates a parsed condition for one subject. Logical nodes
// short-circuit left to right. Comparison operands are resolved fresh
// on every call; nothing is cached across evaluations. A nil resolver
// compares the raw operand text.
func Eval(ctx context.Context, n Node, subject any, r Resolver) bool {
	switch node := n.(type) {
	case Or:
		return Eval(ctx, node.Left, subject, r) || Eval(ctx, node.Right, subject, r)
	case And:
		return Eval(ctx, node.Left, subject, r) && Eval(ctx, node.Right, subject, r)
	case Comparison:
		left, right := node.Left, node.Right
		if r != nil {
			left = r.Resolve(ctx, subject, left)
			right = r.Resolve(ctx, subject, right)
		}
		return node.Op.Compare(left, right)
	default:
		return false
	}
}
