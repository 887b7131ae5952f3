// Package resolve provides placeholder resolvers: the collaborators
// that turn raw operand text into concrete values for one subject.
//
// A resolver must tolerate unresolved references by returning its
// input unchanged, and must be cheap to call repeatedly (the evaluator
// calls it twice per comparison).
package resolve

import "context"

// Resolver resolves placeholder references in text for a subject.
type Resolver interface {
	Resolve(ctx context.Context, subject any, s string) string
}

// Func adapts a function to the Resolver interface.
type Func func(ctx context.Context, subject any, s string) string

// Resolve implements Resolver.
func (f Func) Resolve(ctx context.Context, subject any, s string) string {
	return f(ctx, subject, s)
}

// Identity returns a resolver that returns every input unchanged.
// It is the default when no resolver is configured.
func Identity() Resolver {
	return Func(func(_ context.Context, _ any, s string) string {
		return s
	})
}

// Chain applies resolvers in order, feeding each one's output to the
// next. Use it to layer, for example, per-subject variables over a
// shared store.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context, subject any, s string) string {
	for _, r := range c {
		s = r.Resolve(ctx, subject, s)
	}
	return s
}
