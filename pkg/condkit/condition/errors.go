package condition

import "fmt"

// ParseError reports malformed condition input: a missing operand or
// operator, an unknown operator symbol, unbalanced parentheses, or
// trailing content after a complete expression.
type ParseError struct {
	// Token is the text of the offending token. Empty when the input
	// ended where more was expected.
	Token string
	// Message describes what the parser expected.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse condition: %s", e.Message)
	}
	return fmt.Sprintf("parse condition: %s: %q", e.Message, e.Token)
}
