// Package catalog defines the static course structure: ordered chapters, each
// holding ordered lessons with durations, difficulties, and prerequisites.
//
// The catalog is configuration data, not computed state. It is loaded once
// from TOML (a built-in course definition or a file named in the config) and
// validated on load: declared lesson counts must match, lesson ids must encode
// their chapter and position, and prerequisites may only point backwards in
// the course sequence. Flattening chapters in declared order yields the single
// canonical ordering used for next/previous navigation; lessons never sort by
// string comparison of their ids.
package catalog
