// Package store persists learner state as independently keyed blobs in
// SQLite.
//
// The store holds no business logic: it maps string keys to opaque byte
// values and leaves encoding and invariants to the engine. Opening the store
// takes a flock on the data directory, so a second concurrent process gets
// ErrLocked instead of silently losing writes in a read-modify-write race;
// within one process all access is serialized by the engine. Schema changes
// bump the version in schema.go.
package store
