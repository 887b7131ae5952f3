package condition

import "testing"

func TestParseComparator(t *testing.T) {
	tests := []struct {
		symbol string
		want   Comparator
	}{
		{">", Greater},
		{">=", GreaterOrEqual},
		{"<", Less},
		{"<=", LessOrEqual},
		{"==", Equal},
		{"!=", NotEqual},
		{">>", Contains},
		{"!>>", NotContains},
		{"<<", In},
		{"!<<", NotIn},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := ParseComparator(tt.symbol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseComparator(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
			if got.String() != tt.symbol {
				t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.symbol)
			}
		})
	}
}

func TestParseComparator_Unknown(t *testing.T) {
	for _, symbol := range []string{"=", "~", "=>", ""} {
		if _, err := ParseComparator(symbol); err == nil {
			t.Errorf("ParseComparator(%q) = nil error, want ParseError", symbol)
		}
	}
}

func TestCompare_Numeric(t *testing.T) {
	tests := []struct {
		name  string
		op    Comparator
		left  string
		right string
		want  bool
	}{
		{"greater true", Greater, "2", "1", true},
		{"greater false", Greater, "1", "2", false},
		{"greater equal values", Greater, "1", "1", false},
		{"greater or equal on equal values", GreaterOrEqual, "1", "1", true},
		{"less true", Less, "1.5", "2.5", true},
		{"less or equal false", LessOrEqual, "3", "2.9", false},
		{"floats compared numerically not lexically", Greater, "10", "9", true},
		{"negative numbers", Less, "-2", "-1", true},
		{"whitespace trimmed", GreaterOrEqual, " 5 ", "5", true},
		{"non-numeric left is unsatisfied", Greater, "abc", "1", false},
		{"non-numeric right is unsatisfied", Less, "1", "abc", false},
		{"both non-numeric is unsatisfied", GreaterOrEqual, "abc", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Compare(tt.left, tt.right); got != tt.want {
				t.Errorf("%v.Compare(%q, %q) = %v, want %v", tt.op, tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompare_Boolean(t *testing.T) {
	tests := []struct {
		name  string
		op    Comparator
		left  string
		right string
		want  bool
	}{
		{"equal booleans", Equal, "true", "true", true},
		{"unequal booleans", Equal, "true", "false", false},
		{"not equal booleans", NotEqual, "true", "false", true},
		{"case insensitive", Equal, "TRUE", "true", true},
		{"trimmed", Equal, " false ", "false", true},
		{"one bool one non-bool reads non-bool as false", Equal, "false", "yes", true},
		{"contains is not meaningful for booleans", Contains, "true", "true", false},
		{"in is not meaningful for booleans", In, "false", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Compare(tt.left, tt.right); got != tt.want {
				t.Errorf("%v.Compare(%q, %q) = %v, want %v", tt.op, tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompare_String(t *testing.T) {
	tests := []struct {
		name  string
		op    Comparator
		left  string
		right string
		want  bool
	}{
		{"equal strings", Equal, "hello", "hello", true},
		{"unequal strings", Equal, "hello", "world", false},
		{"not equal", NotEqual, "hello", "world", true},
		{"contains", Contains, "hello world", "world", true},
		{"contains false", Contains, "hello", "world", false},
		{"not contains", NotContains, "hello", "world", true},
		{"in", In, "world", "hello world", true},
		{"in false", In, "hello world", "world", false},
		{"not in", NotIn, "abc", "xyz", true},
		{"numeric-looking strings compared numerically", Equal, "1", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Compare(tt.left, tt.right); got != tt.want {
				t.Errorf("%v.Compare(%q, %q) = %v, want %v", tt.op, tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompareStrings_LexicographicFallback(t *testing.T) {
	// The string dispatch carries ordering arms for completeness; they
	// order lexicographically.
	if !compareStrings(Greater, "b", "a") {
		t.Error(`compareStrings(Greater, "b", "a") = false, want true`)
	}
	if compareStrings(Less, "b", "a") {
		t.Error(`compareStrings(Less, "b", "a") = true, want false`)
	}
	if !compareStrings(LessOrEqual, "a", "a") {
		t.Error(`compareStrings(LessOrEqual, "a", "a") = false, want true`)
	}
}
