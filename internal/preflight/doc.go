// Package preflight provides readiness checks for the paths, catalog, and
// database that studytrack depends on.
//
// The CLI "studytrack doctor" command runs RunAll and renders one line per
// check. Each check is gated by its config: an unset ntfy topic skips the
// ntfy check entirely.
package preflight
