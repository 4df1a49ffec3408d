// Package progress defines the learner-state domain types: the progress
// record, learner settings, completion timestamps, notes, bookmarks, the
// access log, and study sessions.
//
// Loading stored state always goes through a defaulting pass: stored JSON is
// unmarshalled over a canonical default value, so fields missing from older
// or partially written blobs keep their defaults instead of failing. Record
// Normalize then repairs anything the merge cannot express (invalid enum
// values, completions for lessons that no longer exist).
package progress
