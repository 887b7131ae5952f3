/*
Package placeholder substitutes named references in strings.

Two styles are recognized: %name% and ${name}. Names start with a
letter or underscore and may carry argument segments separated by
underscores, dots, colons or dashes:

	%player_name%
	%stat_kills:today%
	${region}

Values may themselves contain placeholders; expansion repeats until
the text is stable, bounded by a configurable depth.

Unresolved references are kept as-is by default, so arbitrary text can
be pushed through an Expander safely:

	out := placeholder.Expand("lvl %level%", map[string]any{"level": 7})
	// out: "lvl 7"
	out = placeholder.Expand("50% off", nil)
	// out: "50% off" (no placeholder matched)
*/
package placeholder
