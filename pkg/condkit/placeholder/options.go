package placeholder

// MissingAction specifies how to handle unresolved placeholders.
type MissingAction int

const (
	// MissingKeep keeps the placeholder as-is when the name is not
	// found. This is the default and matches the resolver contract:
	// unresolved references pass through unchanged.
	MissingKeep MissingAction = iota

	// MissingEmpty replaces the placeholder with an empty string when
	// the name is not found.
	MissingEmpty

	// MissingError returns an error when a name is not found.
	MissingError
)

// Option configures an Expander.
type Option func(*Expander)

// WithMissingAction sets how unresolved placeholders are handled.
//
// Default: MissingKeep (keep placeholder as-is)
func WithMissingAction(action MissingAction) Option {
	return func(e *Expander) {
		e.missingAction = action
	}
}

// WithPercentStyle enables or disables %name% pattern expansion.
//
// Default: true (enabled)
func WithPercentStyle(enabled bool) Option {
	return func(e *Expander) {
		e.percentStyle = enabled
	}
}

// WithBraceStyle enables or disables ${name} pattern expansion.
//
// Default: true (enabled)
func WithBraceStyle(enabled bool) Option {
	return func(e *Expander) {
		e.braceStyle = enabled
	}
}

// WithMaxDepth sets how many rounds of nested expansion run before
// giving up. Values below 1 are clamped to 1.
//
// Default: 8
func WithMaxDepth(depth int) Option {
	return func(e *Expander) {
		if depth < 1 {
			depth = 1
		}
		e.maxDepth = depth
	}
}
