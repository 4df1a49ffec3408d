package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"studytrack/internal/catalog"
	"studytrack/internal/notifications"
	"studytrack/internal/progress"
	"studytrack/internal/store"
)

// Store is the persistence surface the engine needs. *store.Store satisfies
// it; tests may substitute an in-memory implementation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, entries map[string][]byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// state is the in-memory copy of every persisted blob. It is loaded lazily on
// first use and kept authoritative for the rest of the session, so a failing
// store degrades to in-memory operation instead of crashing callers.
type state struct {
	loaded    bool
	record    progress.Record
	times     progress.CompletionTimes
	notes     progress.Notes
	bookmarks progress.Bookmarks
	accessLog progress.AccessLog
	session   *progress.Session
}

// Engine owns all reads and writes of learner state. It enforces the
// invariants the raw store cannot: catalog-resolvable lesson ids, idempotent
// completion, synchronous persistence of every mutation.
//
// The engine is synchronous and single-threaded by design; callers invoke it
// from one goroutine.
type Engine struct {
	cat      *catalog.Catalog
	store    Store
	logger   *slog.Logger
	notifier notifications.Service
	defaults progress.Settings
	now      func() time.Time
	client   string

	state       state
	subscribers []func(Change)
}

// Option customizes engine construction.
type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use this to pin
// streak and session arithmetic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithClient sets the client label recorded in access-log entries.
func WithClient(client string) Option {
	return func(e *Engine) {
		e.client = client
	}
}

// New constructs an engine. The store may be nil, in which case the engine
// operates on defaults without persistence (the degraded mode used when the
// store cannot be opened).
func New(cat *catalog.Catalog, st Store, logger *slog.Logger, notifier notifications.Service, defaults progress.Settings, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notifications.NewNoop()
	}
	e := &Engine{
		cat:      cat,
		store:    st,
		logger:   logger.With("component", "engine"),
		notifier: notifier,
		defaults: defaults,
		now:      time.Now,
		client:   "cli",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the course catalog the engine operates on.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// ensureLoaded populates the in-memory state from the store, defaulting every
// blob that is absent or unreadable. Store and decode failures are logged and
// recovered; they never propagate to callers.
func (e *Engine) ensureLoaded(ctx context.Context) {
	if e.state.loaded {
		return
	}

	now := e.now()
	e.state.record = progress.NewRecord(e.cat.TotalLessons(), e.cat.First().ID, e.defaults, now)
	e.state.times = progress.CompletionTimes{}
	e.state.notes = progress.Notes{}
	e.state.bookmarks = progress.Bookmarks{}
	e.state.accessLog = progress.AccessLog{}
	e.state.session = nil

	e.loadBlob(ctx, store.KeyProgress, &e.state.record)
	e.loadBlob(ctx, store.KeyCompletionTimes, &e.state.times)
	e.loadBlob(ctx, store.KeyNotes, &e.state.notes)
	e.loadBlob(ctx, store.KeyBookmarks, &e.state.bookmarks)
	e.loadBlob(ctx, store.KeyAccessLog, &e.state.accessLog)

	var session progress.Session
	if e.loadBlob(ctx, store.KeyCurrentSession, &session) && session.ID != "" {
		e.state.session = &session
	}

	// Settings are persisted both inside the record and as their own blob;
	// the dedicated blob wins when present.
	e.loadBlob(ctx, store.KeySettings, &e.state.record.Settings)

	e.state.record.Normalize(e.cat.TotalLessons(), e.cat.First().ID, e.defaults, e.knownLessons(), now)
	e.state.loaded = true
}

// loadBlob unmarshals the blob under key over dst, leaving dst untouched when
// the key is absent or the data is unreadable. It reports whether stored data
// was applied.
func (e *Engine) loadBlob(ctx context.Context, key string, dst any) bool {
	if e.store == nil {
		return false
	}
	data, found, err := e.store.Get(ctx, key)
	if err != nil {
		e.logger.Warn("store read failed, using defaults", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		e.logger.Warn("stored blob is malformed, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// write persists one blob, logging failures instead of returning them. A
// failed write leaves the in-memory state authoritative for this session.
func (e *Engine) write(ctx context.Context, key string, value any) {
	if e.store == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		e.logger.Error("marshal blob", "key", key, "error", err)
		return
	}
	if err := e.store.Set(ctx, key, data); err != nil {
		e.logger.Warn("store write failed, state kept in memory", "key", key, "error", err)
	}
}

// persistRecord stamps lastUpdated and writes the progress record along with
// the settings blob.
func (e *Engine) persistRecord(ctx context.Context) {
	e.state.record.LastUpdated = e.now()
	e.write(ctx, store.KeyProgress, e.state.record)
	e.write(ctx, store.KeySettings, e.state.record.Settings)
}

func (e *Engine) knownLessons() map[string]struct{} {
	known := make(map[string]struct{}, e.cat.TotalLessons())
	for _, lesson := range e.cat.Lessons() {
		known[lesson.ID] = struct{}{}
	}
	return known
}

// Record returns a copy of the current progress record.
func (e *Engine) Record(ctx context.Context) progress.Record {
	e.ensureLoaded(ctx)
	rec := e.state.record
	rec.CompletedLessons = append([]string{}, rec.CompletedLessons...)
	return rec
}

// CompletionTimes returns a copy of the completion-time audit trail.
func (e *Engine) CompletionTimes(ctx context.Context) progress.CompletionTimes {
	e.ensureLoaded(ctx)
	out := make(progress.CompletionTimes, len(e.state.times))
	for id, ts := range e.state.times {
		out[id] = ts
	}
	return out
}
