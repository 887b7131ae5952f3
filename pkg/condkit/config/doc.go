/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
This is how engine settings are loaded from YAML/JSON files without verbose
type assertions and nil checks.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "workers":     4,
	    "tracing":     true,
	    "placeholder": map[string]any{"max_depth": 8},
	})

	workers := cfg.Int("workers", 1)                      // 4
	tracing := cfg.Bool("tracing", false)                 // true
	depth := cfg.Sub("placeholder").Int("max_depth", 8)   // 8
	missing := cfg.String("missing", "default")           // "default"

# Type Coercion

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("30s", "1h30m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

Numeric types handle reasonable conversions:
  - int from float64 (only when there is no fractional part)
  - int from int64

All methods return the default value if:
  - The key is missing
  - The value cannot be converted to the requested type

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("condkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	cfg, err = config.FromYAML(yamlBytes)
	cfg, err = config.FromJSON(jsonBytes)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
