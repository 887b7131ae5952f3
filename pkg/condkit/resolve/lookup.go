package resolve

import (
	"context"
	"fmt"

	"github.com/condkit/condkit/pkg/condkit/placeholder"
	"github.com/condkit/condkit/pkg/condkit/store"
)

// ScopeFunc maps a subject to its variable-store scope.
type ScopeFunc func(subject any) string

// Lookup resolves each placeholder through a variable store, scoped by
// subject. Store errors (including unknown names) leave the
// placeholder unresolved.
type Lookup struct {
	store    store.Store
	scope    ScopeFunc
	expander *placeholder.Expander
}

// NewLookup creates a store-backed resolver. A nil scope function
// stringifies the subject with %v.
func NewLookup(st store.Store, scope ScopeFunc, opts ...placeholder.Option) *Lookup {
	if scope == nil {
		scope = func(subject any) string {
			return fmt.Sprintf("%v", subject)
		}
	}
	return &Lookup{
		store:    st,
		scope:    scope,
		expander: placeholder.NewExpander(opts...),
	}
}

// Resolve implements Resolver.
func (l *Lookup) Resolve(ctx context.Context, subject any, s string) string {
	scope := l.scope(subject)
	out, err := l.expander.ExpandWith(s, func(name string) (string, bool) {
		value, err := l.store.Get(ctx, scope, name)
		if err != nil {
			return "", false
		}
		return value, true
	})
	if err != nil {
		return s
	}
	return out
}
