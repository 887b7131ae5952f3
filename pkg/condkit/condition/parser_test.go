package condition

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Comparison(t *testing.T) {
	node, err := Parse("a >= 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmp, ok := node.(Comparison)
	if !ok {
		t.Fatalf("Parse() = %T, want Comparison", node)
	}
	if cmp.Left != "a" || cmp.Op != GreaterOrEqual || cmp.Right != "5" {
		t.Errorf("Parse() = %+v, want {a >= 5}", cmp)
	}
}

func TestParse_Precedence(t *testing.T) {
	// a || b && c parses as a || (b && c).
	node, err := Parse("a == 1 || b == 2 && c == 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	or, ok := node.(Or)
	if !ok {
		t.Fatalf("root = %T, want Or", node)
	}
	if _, ok := or.Left.(Comparison); !ok {
		t.Errorf("or.Left = %T, want Comparison", or.Left)
	}
	if _, ok := or.Right.(And); !ok {
		t.Errorf("or.Right = %T, want And", or.Right)
	}
}

func TestParse_LeftAssociativeFolding(t *testing.T) {
	// a && b && c folds as (a && b) && c.
	node, err := Parse("a == 1 && b == 2 && c == 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := node.(And)
	if !ok {
		t.Fatalf("root = %T, want And", node)
	}
	inner, ok := outer.Left.(And)
	if !ok {
		t.Fatalf("outer.Left = %T, want And", outer.Left)
	}
	if _, ok := inner.Left.(Comparison); !ok {
		t.Errorf("inner.Left = %T, want Comparison", inner.Left)
	}
	if _, ok := outer.Right.(Comparison); !ok {
		t.Errorf("outer.Right = %T, want Comparison", outer.Right)
	}

	// Same shape for || chains.
	node, err = Parse("a == 1 || b == 2 || c == 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orOuter, ok := node.(Or)
	if !ok {
		t.Fatalf("root = %T, want Or", node)
	}
	if _, ok := orOuter.Left.(Or); !ok {
		t.Errorf("orOuter.Left = %T, want Or", orOuter.Left)
	}
}

func TestParse_ParensOverridePrecedence(t *testing.T) {
	// (a || b) && c puts the Or under the And.
	node, err := Parse("(a == 1 || b == 2) && c == 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, ok := node.(And)
	if !ok {
		t.Fatalf("root = %T, want And", node)
	}
	if _, ok := and.Left.(Or); !ok {
		t.Errorf("and.Left = %T, want Or", and.Left)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty input", "", "expected left operand"},
		{"trailing paren", "1>0)", "unexpected trailing content"},
		{"trailing literal", "1>0 extra == 1", "unexpected trailing content"},
		{"unbalanced open paren", "(1>0", "expected ')'"},
		{"missing operator", "foo bar", "expected comparison operator"},
		{"missing right operand", "a >", "expected right operand"},
		{"missing left operand", "> 5", "expected left operand"},
		{"lone equals", "a = b", "unknown comparison operator"},
		{"double operator", "a == == b", "expected right operand"},
		{"dangling connective", "a == b &&", "expected left operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, node)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %T, want *ParseError", tt.input, err)
			}
			if !strings.Contains(perr.Error(), tt.wantMsg) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.input, perr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_ErrorCarriesOffendingToken(t *testing.T) {
	_, err := Parse("1>0)")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Token != ")" {
		t.Errorf("ParseError.Token = %q, want \")\"", perr.Token)
	}

	_, err = Parse("a = b")
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Token != "=" {
		t.Errorf("ParseError.Token = %q, want \"=\"", perr.Token)
	}
}

func TestParse_QuotedConnectiveIsLiteral(t *testing.T) {
	node, err := Parse("'a && b' == 'a && b'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmp, ok := node.(Comparison)
	if !ok {
		t.Fatalf("Parse() = %T, want Comparison", node)
	}
	if cmp.Left != "a && b" || cmp.Right != "a && b" {
		t.Errorf("operands = %q, %q, want \"a && b\" twice", cmp.Left, cmp.Right)
	}
}
