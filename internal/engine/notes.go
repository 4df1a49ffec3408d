package engine

import (
	"context"
	"strings"

	"studytrack/internal/progress"
	"studytrack/internal/store"
)

// SaveNote stores or replaces the note attached to a lesson. It reports false
// for unknown lesson ids or empty content.
func (e *Engine) SaveNote(ctx context.Context, lessonID, content string) bool {
	lesson, ok := e.cat.LessonByID(lessonID)
	if !ok {
		return false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return false
	}
	e.ensureLoaded(ctx)

	e.state.notes[lesson.ID] = progress.Note{Content: content, UpdatedAt: e.now()}
	e.write(ctx, store.KeyNotes, e.state.notes)
	e.emit(Change{Kind: ChangeNote, LessonID: lesson.ID})
	return true
}

// Note returns the note attached to a lesson.
func (e *Engine) Note(ctx context.Context, lessonID string) (progress.Note, bool) {
	e.ensureLoaded(ctx)
	note, ok := e.state.notes[lessonID]
	return note, ok
}

// Notes returns a copy of all lesson notes keyed by lesson id.
func (e *Engine) Notes(ctx context.Context) progress.Notes {
	e.ensureLoaded(ctx)
	out := make(progress.Notes, len(e.state.notes))
	for id, note := range e.state.notes {
		out[id] = note
	}
	return out
}

// DeleteNote removes the note attached to a lesson. It reports false when no
// note exists.
func (e *Engine) DeleteNote(ctx context.Context, lessonID string) bool {
	e.ensureLoaded(ctx)
	if _, ok := e.state.notes[lessonID]; !ok {
		return false
	}
	delete(e.state.notes, lessonID)
	e.write(ctx, store.KeyNotes, e.state.notes)
	e.emit(Change{Kind: ChangeNote, LessonID: lessonID})
	return true
}

// ToggleBookmark flips the bookmark state of a lesson. The first result
// reports whether the lesson is bookmarked afterwards; the second is false
// for unknown ids.
func (e *Engine) ToggleBookmark(ctx context.Context, lessonID string) (bookmarked, ok bool) {
	lesson, found := e.cat.LessonByID(lessonID)
	if !found {
		return false, false
	}
	e.ensureLoaded(ctx)

	e.state.bookmarks, bookmarked = e.state.bookmarks.Toggle(lesson.ID)
	e.write(ctx, store.KeyBookmarks, e.state.bookmarks)
	e.emit(Change{Kind: ChangeBookmark, LessonID: lesson.ID})
	return bookmarked, true
}

// IsBookmarked reports whether the lesson is bookmarked.
func (e *Engine) IsBookmarked(ctx context.Context, lessonID string) bool {
	e.ensureLoaded(ctx)
	return e.state.bookmarks.Contains(lessonID)
}

// Bookmarks returns the bookmarked lesson ids in insertion order.
func (e *Engine) Bookmarks(ctx context.Context) progress.Bookmarks {
	e.ensureLoaded(ctx)
	return append(progress.Bookmarks{}, e.state.bookmarks...)
}

// Settings returns the current learner settings.
func (e *Engine) Settings(ctx context.Context) progress.Settings {
	e.ensureLoaded(ctx)
	return e.state.record.Settings
}

// UpdateSettings applies a mutation to the learner settings and persists the
// result. Invalid values are repaired against the configured defaults.
func (e *Engine) UpdateSettings(ctx context.Context, apply func(*progress.Settings)) progress.Settings {
	e.ensureLoaded(ctx)

	apply(&e.state.record.Settings)
	e.state.record.Normalize(e.cat.TotalLessons(), e.cat.First().ID, e.defaults, e.knownLessons(), e.now())
	e.persistRecord(ctx)
	e.emit(Change{Kind: ChangeSettings})
	return e.state.record.Settings
}
