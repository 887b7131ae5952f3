package resolve

import (
	"context"

	"github.com/condkit/condkit/pkg/condkit/placeholder"
)

// VarsFunc derives the variable map for a subject. It is called once
// per Resolve, so values reflect the subject's current state.
type VarsFunc func(ctx context.Context, subject any) map[string]any

// Vars resolves placeholders from a per-subject variable map.
type Vars struct {
	fn       VarsFunc
	expander *placeholder.Expander
}

// NewVars creates a resolver that expands placeholders against the
// map produced by fn. Expansion keeps unresolved references as-is
// unless configured otherwise.
func NewVars(fn VarsFunc, opts ...placeholder.Option) *Vars {
	return &Vars{
		fn:       fn,
		expander: placeholder.NewExpander(opts...),
	}
}

// Static creates a resolver over a fixed variable map, ignoring the
// subject. Useful for globals and for tests.
func Static(vars map[string]any, opts ...placeholder.Option) *Vars {
	return NewVars(func(context.Context, any) map[string]any {
		return vars
	}, opts...)
}

// Resolve implements Resolver.
func (v *Vars) Resolve(ctx context.Context, subject any, s string) string {
	vars := v.fn(ctx, subject)
	out, err := v.expander.Expand(s, vars)
	if err != nil {
		// The resolver contract is to degrade to the input, not fail.
		return s
	}
	return out
}
