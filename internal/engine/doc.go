// Package engine implements the progress tracker's business rules on top of
// the catalog and the persistent store: completion tracking, navigation,
// recommendations, statistics, milestones, streaks, notes, bookmarks,
// sessions, and state transfer.
//
// Every mutating operation persists synchronously before returning. When the
// store is unavailable the engine degrades to in-memory defaults rather than
// failing; only this session's writes are lost.
package engine
