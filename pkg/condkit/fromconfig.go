package condkit

import (
	"context"
	"fmt"

	"github.com/condkit/condkit/pkg/condkit/config"
	"github.com/condkit/condkit/pkg/condkit/observability"
	"github.com/condkit/condkit/pkg/condkit/placeholder"
	"github.com/condkit/condkit/pkg/condkit/resolve"
	"github.com/condkit/condkit/pkg/condkit/store"
)

// FromConfig builds engine options from a configuration map, loaded
// for example with config.FromFile.
//
// Recognized keys:
//
//	workers:    int   # worker pool size, 0 = goroutine per task
//	queue_size: int   # worker pool queue capacity
//	metrics:    bool  # enable OTel metrics
//	tracing:    bool  # enable OTel tracing
//	store:            # variable store backing operand resolution
//	  driver: memory | sqlite | postgres
//	  path:   vars.db               # sqlite only
//	  dsn:    postgres://...        # postgres only
//	placeholder:      # expansion behavior for the store resolver
//	  missing_action: keep | empty | error
//	  max_depth:      int
//	  percent_style:  bool
//	  brace_style:    bool
//
// When a store section is present, the engine owns the store and
// closes it in Close. The store resolver scopes lookups by the
// stringified subject; build a resolve.Lookup yourself if you need a
// custom scope function.
func FromConfig(ctx context.Context, cfg config.Config) ([]Option, error) {
	var opts []Option

	if cfg.Has("workers") {
		opts = append(opts, WithWorkers(cfg.Int("workers", 0)))
	}
	if cfg.Has("queue_size") {
		opts = append(opts, WithQueueSize(cfg.Int("queue_size", 16)))
	}
	if cfg.Bool("metrics", false) {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	}
	if cfg.Bool("tracing", false) {
		opts = append(opts, WithTracing(observability.NewSpanManager()))
	}

	if cfg.Has("store") {
		st, err := openStore(ctx, cfg.Sub("store"))
		if err != nil {
			return nil, err
		}
		resolver := resolve.NewLookup(st, nil, placeholderOptions(cfg.Sub("placeholder"))...)
		opts = append(opts,
			WithResolver(resolver),
			func(c *engineConfig) {
				c.closers = append(c.closers, st)
			},
		)
	}

	return opts, nil
}

// openStore constructs the variable store named by the config section.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	driver := cfg.String("driver", "memory")
	switch driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		return store.NewSQLiteStore(cfg.String("path", "condkit.db"))
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.String("dsn", ""))
	default:
		return nil, fmt.Errorf("unknown store driver: %q", driver)
	}
}

// placeholderOptions translates a placeholder config section into
// expander options. Absent keys keep the expander defaults.
func placeholderOptions(cfg config.Config) []placeholder.Option {
	var opts []placeholder.Option

	if cfg.Has("missing_action") {
		switch cfg.String("missing_action", "keep") {
		case "empty":
			opts = append(opts, placeholder.WithMissingAction(placeholder.MissingEmpty))
		case "error":
			opts = append(opts, placeholder.WithMissingAction(placeholder.MissingError))
		}
	}
	if cfg.Has("max_depth") {
		opts = append(opts, placeholder.WithMaxDepth(cfg.Int("max_depth", 8)))
	}
	if cfg.Has("percent_style") {
		opts = append(opts, placeholder.WithPercentStyle(cfg.Bool("percent_style", true)))
	}
	if cfg.Has("brace_style") {
		opts = append(opts, placeholder.WithBraceStyle(cfg.Bool("brace_style", true)))
	}
	return opts
}
