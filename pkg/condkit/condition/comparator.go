package condition

import (
	"strconv"
	"strings"
)

// Comparator is the compiled form of a comparison operator symbol.
type Comparator int

const (
	// Greater, GreaterOrEqual, Less and LessOrEqual compare operands
	// numerically. Non-numeric operands make the comparison
	// unsatisfied, not an error.
	Greater Comparator = iota
	GreaterOrEqual
	Less
	LessOrEqual

	// Equal and NotEqual compare booleans when either operand is a
	// boolean literal, strings otherwise.
	Equal
	NotEqual

	// Contains and NotContains test whether the left operand contains
	// the right as a substring.
	Contains
	NotContains

	// In and NotIn are the mirror: whether the right operand contains
	// the left.
	In
	NotIn
)

// operatorSymbols lists every symbol the tokenizer recognizes, longest
// first so multi-character operators win over their prefixes. The lone
// "=" is tokenized but has no comparator mapping; ParseComparator
// rejects it so the parser can name it in a diagnostic instead of
// folding it into a literal.
var operatorSymbols = []string{"!>>", "!<<", ">=", "<=", "==", "!=", ">>", "<<", ">", "<", "="}

var comparators = map[string]Comparator{
	">":   Greater,
	">=":  GreaterOrEqual,
	"<":   Less,
	"<=":  LessOrEqual,
	"==":  Equal,
	"!=":  NotEqual,
	">>":  Contains,
	"!>>": NotContains,
	"<<":  In,
	"!<<": NotIn,
}

// ParseComparator maps an operator symbol to its Comparator. Symbols
// without a mapping are a parse error.
func ParseComparator(symbol string) (Comparator, error) {
	c, ok := comparators[symbol]
	if !ok {
		return 0, &ParseError{Token: symbol, Message: "unknown comparison operator"}
	}
	return c, nil
}

// String returns the operator symbol.
func (c Comparator) String() string {
	switch c {
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Contains:
		return ">>"
	case NotContains:
		return "!>>"
	case In:
		return "<<"
	case NotIn:
		return "!<<"
	default:
		return "unknown"
	}
}

// ordering reports whether the comparator is one of the four operators
// that try numeric comparison first.
func (c Comparator) ordering() bool {
	return c == Greater || c == GreaterOrEqual || c == Less || c == LessOrEqual
}

// Compare applies the comparator to two resolved operand strings.
//
// Classification runs in a fixed order. Ordering operators parse both
// operands as floats; if either side is not numeric the comparison is
// unsatisfied rather than an error. Otherwise, when either operand is
// a boolean literal ("true"/"false", case-insensitive after trimming),
// only Equal and NotEqual are meaningful and every other operator is
// unsatisfied. Everything else is compared as strings.
func (c Comparator) Compare(left, right string) bool {
	if c.ordering() {
		lf, lerr := strconv.ParseFloat(strings.TrimSpace(left), 64)
		rf, rerr := strconv.ParseFloat(strings.TrimSpace(right), 64)
		if lerr != nil || rerr != nil {
			return false
		}
		switch c {
		case Greater:
			return lf > rf
		case GreaterOrEqual:
			return lf >= rf
		case Less:
			return lf < rf
		default:
			return lf <= rf
		}
	}

	if isBoolLiteral(left) || isBoolLiteral(right) {
		lb, rb := parseBool(left), parseBool(right)
		switch c {
		case Equal:
			return lb == rb
		case NotEqual:
			return lb != rb
		}
		return false
	}

	return compareStrings(c, left, right)
}

// compareStrings dispatches a comparator over plain string operands.
// The ordering arms fall back to lexicographic order; Compare reaches
// them only for operands that were not classified numerically.
func compareStrings(c Comparator, left, right string) bool {
	switch c {
	case Equal:
		return left == right
	case NotEqual:
		return left != right
	case Contains:
		return strings.Contains(left, right)
	case NotContains:
		return !strings.Contains(left, right)
	case In:
		return strings.Contains(right, left)
	case NotIn:
		return !strings.Contains(right, left)
	case Greater:
		return left > right
	case GreaterOrEqual:
		return left >= right
	case Less:
		return left < right
	case LessOrEqual:
		return left <= right
	default:
		return false
	}
}

func isBoolLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// parseBool mirrors the permissive boolean reading used during
// classification: "true" in any case is true, everything else false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
