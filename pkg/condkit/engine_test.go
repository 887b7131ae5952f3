package condkit

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condkit/condkit/pkg/condkit/condition"
	"github.com/condkit/condkit/pkg/condkit/resolve"
)

// countingResolver substitutes %name% placeholders from a map and
// counts Resolve calls.
type countingResolver struct {
	mu    sync.Mutex
	vars  map[string]string
	calls int
}

func (r *countingResolver) Resolve(_ context.Context, _ any, s string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for name, value := range r.vars {
		s = strings.ReplaceAll(s, "%"+name+"%", value)
	}
	return s
}

func (r *countingResolver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// TestNew_Defaults verifies an engine works with zero options.
func TestNew_Defaults(t *testing.T) {
	engine := New()
	defer engine.Close()

	ok, err := engine.Evaluate(context.Background(), nil, "abc == abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestEvaluate verifies blocking evaluation across operator families.
func TestEvaluate(t *testing.T) {
	engine := New(WithResolver(resolve.Static(map[string]any{
		"level":  7,
		"rank":   "admin",
		"active": true,
		"title":  "hello world",
	})))
	defer engine.Close()

	tests := []struct {
		expression string
		want       bool
	}{
		{"%level% >= 5", true},
		{"%level% < 5", false},
		{"%level% == 7", true},
		{"%rank% == admin", true},
		{"%rank% != admin", false},
		{"%active% == TRUE", true},
		{"'%title%' >> world", true},
		{"'%title%' !>> world", false},
		{"%rank% << administrator", true},
		{"%level% >= 5 && %rank% == admin", true},
		{"%level% >= 10 || %rank% == admin", true},
		{"%level% >= 10 && %rank% == admin", false},
		{"(%level% >= 10 || %level% <= 8) && %active% == true", true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := engine.Evaluate(context.Background(), nil, tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEvaluate_ParseError verifies malformed expressions surface a
// typed error and a false result.
func TestEvaluate_ParseError(t *testing.T) {
	engine := New()
	defer engine.Close()

	tests := []string{
		"",
		"a == b )",
		"(a == b",
		"a = b",
		"a == b extra",
		"a == b &&",
	}

	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			got, err := engine.Evaluate(context.Background(), nil, expression)
			assert.False(t, got)
			require.Error(t, err)

			var parseErr *condition.ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *condition.ParseError, got %T", err)
		})
	}
}

// TestEvaluate_ResolvesFreshPerCall verifies results track mutable state.
func TestEvaluate_ResolvesFreshPerCall(t *testing.T) {
	r := &countingResolver{vars: map[string]string{"level": "7"}}
	engine := New(WithResolver(r))
	defer engine.Close()

	ctx := context.Background()

	ok, err := engine.Evaluate(ctx, nil, "%level% >= 5")
	require.NoError(t, err)
	assert.True(t, ok)

	r.mu.Lock()
	r.vars["level"] = "3"
	r.mu.Unlock()

	ok, err = engine.Evaluate(ctx, nil, "%level% >= 5")
	require.NoError(t, err)
	assert.False(t, ok, "second evaluation should see the updated value")
}

// TestEvaluate_SubjectThreading verifies the subject reaches the resolver.
func TestEvaluate_SubjectThreading(t *testing.T) {
	r := resolve.NewVars(func(_ context.Context, subject any) map[string]any {
		return map[string]any{"id": subject}
	})
	engine := New(WithResolver(r))
	defer engine.Close()

	ctx := context.Background()

	ok, err := engine.Evaluate(ctx, 42, "%id% == 42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Evaluate(ctx, 7, "%id% == 42")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEvaluateAll verifies conjunction semantics over multiple lines.
func TestEvaluateAll(t *testing.T) {
	engine := New(WithResolver(resolve.Static(map[string]any{
		"level": 7,
		"rank":  "admin",
	})))
	defer engine.Close()

	ctx := context.Background()

	t.Run("empty slice is vacuously true", func(t *testing.T) {
		ok, err := engine.EvaluateAll(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = engine.EvaluateAll(ctx, nil, []string{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("all lines true", func(t *testing.T) {
		ok, err := engine.EvaluateAll(ctx, nil, []string{
			"%level% >= 5",
			"%rank% == admin",
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("any false line fails the whole block", func(t *testing.T) {
		ok, err := engine.EvaluateAll(ctx, nil, []string{
			"%level% >= 5",
			"%rank% == guest",
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("parse failure returns false and the error", func(t *testing.T) {
		ok, err := engine.EvaluateAll(ctx, nil, []string{
			"%level% >= 5",
			"%rank% ==",
		})
		assert.False(t, ok)

		var parseErr *condition.ParseError
		require.True(t, errors.As(err, &parseErr))
	})
}

// TestEvaluateAll_ShortCircuits verifies lines after the first false
// line are never evaluated.
func TestEvaluateAll_ShortCircuits(t *testing.T) {
	r := &countingResolver{vars: map[string]string{"a": "1", "b": "2"}}
	engine := New(WithResolver(r))
	defer engine.Close()

	ok, err := engine.EvaluateAll(context.Background(), nil, []string{
		"%a% == 0",
		"%b% == 2",
		"%b% == 2",
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// Only the first line's two operands were resolved.
	assert.Equal(t, 2, r.callCount())
}

// TestEvaluateAll_ShortCircuitSkipsMalformedLine verifies a false line
// stops the walk before a later malformed line is ever parsed: the
// result is a plain false, not a parse error.
func TestEvaluateAll_ShortCircuitSkipsMalformedLine(t *testing.T) {
	r := &countingResolver{vars: map[string]string{"a": "1"}}
	engine := New(WithResolver(r))
	defer engine.Close()

	ok, err := engine.EvaluateAll(context.Background(), nil, []string{
		"%a% == 1",
		"%a% == 0",
		"%a% >=",
	})
	require.NoError(t, err, "the malformed line must never be parsed")
	assert.False(t, ok)

	// Lines one and two resolved two operands each; line three none.
	assert.Equal(t, 4, r.callCount())
}

// TestEngine_Close verifies Close is idempotent and safe with a pool.
func TestEngine_Close(t *testing.T) {
	engine := New(WithWorkers(2), WithQueueSize(4))

	ok, err := engine.Evaluate(context.Background(), nil, "1 == 1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, engine.Close())
	assert.NotPanics(t, func() { _ = engine.Close() })
}

// TestNewEvalID verifies the evaluation ID shape.
func TestNewEvalID(t *testing.T) {
	id := newEvalID()
	assert.Len(t, id, len("eval-")+8)
	assert.Equal(t, "eval-", id[:5])

	other := newEvalID()
	assert.NotEqual(t, id, other)
}

// TestEvaluate_NumericStrings verifies numeric comparison of resolved text.
func TestEvaluate_NumericStrings(t *testing.T) {
	engine := New()
	defer engine.Close()

	// "10" > "9" numerically even though "10" < "9" lexicographically.
	ok, err := engine.Evaluate(context.Background(), nil, "10 > 9")
	require.NoError(t, err)
	assert.True(t, ok)
}
