/*
Package condkit evaluates boolean condition expressions against
application subjects.

# Overview

condkit is a small condition language plus an execution coordinator.
Expressions combine typed comparisons with && and || and parentheses:

	level >= 5 && (rank == admin || rank == moderator)

The language core (tokenizer, parser, evaluator) lives in the
condition subpackage; this package provides the Engine that ties
parsing, operand resolution, and observability together, and adds
asynchronous evaluation on top.

# Basic Usage

Create an engine and evaluate expressions:

	engine := condkit.New(
	    condkit.WithResolver(resolve.Static(map[string]any{
	        "level": 7,
	        "rank":  "admin",
	    })),
	)
	defer engine.Close()

	ok, err := engine.Evaluate(ctx, nil, "%level% >= 5 && %rank% == admin")

Operands are resolved through the configured Resolver on every
evaluation, so results track live state. Without a resolver, operands
compare as their raw text.

# Multi-Line Conditions

EvaluateAll treats a slice of expressions as a conjunction with
short-circuiting; an empty slice is vacuously true:

	ok, err := engine.EvaluateAll(ctx, player, []string{
	    "%level% >= 5",
	    "%region% == eu",
	})

# Asynchronous Evaluation

EvaluateAsync and EvaluateAllAsync return a Future instead of
blocking. The async path never fails: parse errors and panics
collapse to a false result with a logged warning.

	f := engine.EvaluateAsync(ctx, player, "%level% >= 5")
	f.Then(func(ok bool) { ... })
	result, err := f.Wait(ctx)

Work runs on the engine's worker Executor (WithWorkers configures an
engine-owned pool); Future callbacks run on the callback Executor,
which NewSerial can pin to a single goroutine.

# Configuration

FromConfig builds engine options from a YAML/JSON settings file,
including a backing variable store (memory, SQLite, or Postgres):

	cfg, _ := config.FromFile("condkit.yaml")
	opts, err := condkit.FromConfig(ctx, cfg)
	engine := condkit.New(opts...)

# Subpackages

  - condition: tokenizer, parser, AST, comparison semantics
  - placeholder: %name% and ${name} expansion
  - resolve: operand resolver implementations
  - store: variable stores (memory, SQLite, Postgres)
  - observability: slog helpers, OTel metrics and tracing
  - config: typed settings maps and file loading
*/
package condkit
