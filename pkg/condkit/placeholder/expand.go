package placeholder

import (
	"fmt"
	"regexp"
	"strings"
)

// Regular expressions for placeholder patterns.
var (
	// percentPattern matches %name% - name starts with a letter or
	// underscore and may carry argument segments separated by
	// underscores, dots, colons or dashes (e.g. %stat_kills:today%).
	percentPattern = regexp.MustCompile(`%([a-zA-Z_][a-zA-Z0-9_.:-]*)%`)

	// bracePattern matches ${name}.
	bracePattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_.:-]*)\}`)
)

// LookupFunc returns the value for a placeholder name and whether the
// name is known.
type LookupFunc func(name string) (string, bool)

// Expander substitutes placeholder patterns in strings.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	missingAction MissingAction
	percentStyle  bool
	braceStyle    bool
	maxDepth      int
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingKeep (keep placeholders as-is)
//   - PercentStyle: enabled (%name%)
//   - BraceStyle: enabled (${name})
//   - MaxDepth: 8 rounds of nested expansion
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingKeep,
		percentStyle:  true,
		braceStyle:    true,
		maxDepth:      8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand substitutes placeholder patterns in s using the provided vars.
//
// Values may themselves contain placeholders; expansion repeats until
// the text stops changing or MaxDepth rounds have run. Errors are only
// returned when MissingAction is MissingError and a placeholder is not
// found.
func (e *Expander) Expand(s string, vars map[string]any) (string, error) {
	return e.ExpandWith(s, func(name string) (string, bool) {
		if vars == nil {
			return "", false
		}
		v, ok := vars[name]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%v", v), true
	})
}

// ExpandWith substitutes placeholder patterns in s, resolving each
// name through lookup. This is the core used by map- and store-backed
// resolvers.
func (e *Expander) ExpandWith(s string, lookup LookupFunc) (string, error) {
	if s == "" {
		return "", nil
	}

	result := s
	var missing []string

	for depth := 0; depth < e.maxDepth; depth++ {
		// Only the final round's misses count; earlier rounds may have
		// been fixed up by nested expansion.
		missing = nil
		expanded := e.expandOnce(result, lookup, &missing)
		if expanded == result {
			break
		}
		result = expanded
	}

	if len(missing) > 0 {
		return result, &MissingPlaceholderError{Names: missing}
	}
	return result, nil
}

// expandOnce runs a single substitution round over both styles.
func (e *Expander) expandOnce(s string, lookup LookupFunc, missing *[]string) string {
	replace := func(match, name string) string {
		if value, ok := lookup(name); ok {
			return value
		}
		switch e.missingAction {
		case MissingEmpty:
			return ""
		case MissingError:
			*missing = append(*missing, name)
			return match
		default: // MissingKeep
			return match
		}
	}

	result := s
	if e.percentStyle {
		result = percentPattern.ReplaceAllStringFunc(result, func(match string) string {
			return replace(match, match[1:len(match)-1])
		})
	}
	if e.braceStyle {
		result = bracePattern.ReplaceAllStringFunc(result, func(match string) string {
			return replace(match, match[2:len(match)-1])
		})
	}
	return result
}

// MissingPlaceholderError is returned when MissingError is set and one
// or more placeholders are not found.
type MissingPlaceholderError struct {
	// Names is the list of unresolved placeholder names.
	Names []string
}

// Error implements the error interface.
func (e *MissingPlaceholderError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("unresolved placeholder: %s", e.Names[0])
	}
	return fmt.Sprintf("unresolved placeholders: %s", strings.Join(e.Names, ", "))
}

// defaultExpander is the package-level expander with default settings.
var defaultExpander = NewExpander()

// Expand substitutes placeholders in s using the default expander.
// Unresolved placeholders stay as-is, so text with no known references
// passes through unchanged.
func Expand(s string, vars map[string]any) string {
	// Default expander never returns errors (MissingKeep).
	result, _ := defaultExpander.Expand(s, vars)
	return result
}
