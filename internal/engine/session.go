package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/progress"
	"studytrack/internal/store"
)

// BeginSession starts a study sitting on the given lesson, ending any session
// already in progress. It reports false for unknown lesson ids.
func (e *Engine) BeginSession(ctx context.Context, lessonID string) (progress.Session, bool) {
	lesson, ok := e.cat.LessonByID(lessonID)
	if !ok {
		return progress.Session{}, false
	}
	e.ensureLoaded(ctx)

	if e.state.session != nil {
		e.EndSession(ctx)
	}

	now := e.now()
	session := progress.Session{
		ID:        uuid.NewString(),
		LessonID:  lesson.ID,
		StartTime: now,
		Client:    e.client,
	}
	e.state.session = &session
	e.state.record.LastAccessDate = now

	e.write(ctx, store.KeyCurrentSession, session)
	e.persistRecord(ctx)
	e.emit(Change{Kind: ChangeSession, LessonID: lesson.ID})
	return session, true
}

// EndSession closes the in-progress session, adding its elapsed time to the
// accumulated study time. It reports false when no session is active.
func (e *Engine) EndSession(ctx context.Context) (time.Duration, bool) {
	e.ensureLoaded(ctx)
	if e.state.session == nil {
		return 0, false
	}

	elapsed := e.now().Sub(e.state.session.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	lessonID := e.state.session.LessonID
	e.state.session = nil
	e.state.record.TotalStudyTime += elapsed.Seconds()

	if e.store != nil {
		if err := e.store.Remove(ctx, store.KeyCurrentSession); err != nil {
			e.logger.Warn("store write failed, state kept in memory", "key", store.KeyCurrentSession, "error", err)
		}
	}
	e.persistRecord(ctx)
	e.emit(Change{Kind: ChangeSession, LessonID: lessonID})
	return elapsed, true
}

// CurrentSession returns the in-progress session, if any.
func (e *Engine) CurrentSession(ctx context.Context) (progress.Session, bool) {
	e.ensureLoaded(ctx)
	if e.state.session == nil {
		return progress.Session{}, false
	}
	return *e.state.session, true
}

// RecordAccess appends a visit to the capped access log and refreshes the
// record's last-access date.
func (e *Engine) RecordAccess(ctx context.Context, page string) {
	e.ensureLoaded(ctx)

	now := e.now()
	e.state.accessLog = e.state.accessLog.Append(progress.AccessEntry{
		Page:      page,
		Timestamp: now,
		Client:    e.client,
	})
	e.state.record.LastAccessDate = now

	e.write(ctx, store.KeyAccessLog, e.state.accessLog)
	e.persistRecord(ctx)
}

// AccessLog returns a copy of the retained access entries, oldest first.
func (e *Engine) AccessLog(ctx context.Context) progress.AccessLog {
	e.ensureLoaded(ctx)
	return append(progress.AccessLog{}, e.state.accessLog...)
}
