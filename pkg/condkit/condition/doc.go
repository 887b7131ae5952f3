/*
Package condition implements the condition expression language:
tokenizer, recursive-descent parser, and evaluator for boolean
predicates that gate behavior from externally supplied configuration
strings.

# Expression Syntax

	expr       := or
	or         := and ("||" and)*
	and        := primary ("&&" primary)*
	primary    := "(" expr ")" | comparison
	comparison := LITERAL OPERATOR LITERAL

Literals are scanned up to whitespace, a parenthesis, or the start of
a connective or operator. Quoting with '...' or "..." makes whitespace,
parentheses and operator-looking text inert, and a backslash escapes
the following character:

	'a && b' == 'a && b'        // quoted connective is literal text

# Operators

	>    >=   <    <=           Numeric comparison; non-numeric
	                            operands are unsatisfied (false)
	==   !=                     Equality; boolean when either side is
	                            true/false, string otherwise
	>>   !>>                    Left contains right (and negation)
	<<   !<<                    Right contains left (and negation)

Logical connectives && and || short-circuit strictly left to right,
with || binding loosest:

	a == 1 || b == 1 && c == 1   // a == 1 || (b == 1 && c == 1)

# Placeholders

Comparison operands keep their raw text through parsing. Each
evaluation resolves both operands through the injected Resolver, so a
parsed Node can be reused concurrently for different subjects:

	node, err := condition.Parse("%level% >= 5")
	if err != nil {
	    // *ParseError with the offending token
	}
	ok := condition.Eval(ctx, node, subject, resolver)

# Errors

Structural problems are reported at parse time as *ParseError. Type
mismatches at evaluation time are not errors: a numeric operator over
non-numeric resolved operands simply evaluates to false.
*/
package condition
