package engine

import (
	"context"
	"time"

	"studytrack/internal/catalog"
	"studytrack/internal/store"
)

// MarkComplete records the lesson as completed and persists the change before
// returning. It reports false for ids the catalog cannot resolve and for
// lessons that are already completed; an already-completed lesson keeps its
// original completion time.
func (e *Engine) MarkComplete(ctx context.Context, lessonID string) bool {
	lesson, ok := e.cat.LessonByID(lessonID)
	if !ok {
		e.logger.Warn("ignoring completion for unknown lesson", "lesson", lessonID)
		return false
	}
	e.ensureLoaded(ctx)

	now := e.now()
	firstToday := !e.hasCompletionOn(now)
	if !e.state.record.Complete(lesson.ID) {
		return false
	}
	e.state.times[lesson.ID] = now
	if lesson.Chapter > e.state.record.CurrentChapter {
		e.state.record.CurrentChapter = lesson.Chapter
	}
	e.state.record.LastAccessDate = now

	e.persistRecord(ctx)
	e.write(ctx, store.KeyCompletionTimes, e.state.times)
	e.emit(Change{Kind: ChangeCompleted, LessonID: lesson.ID})

	e.notifyProgress(ctx, firstToday)
	return true
}

// UnmarkComplete removes the lesson from the completed set. The completion
// time entry is kept as an audit trail. It reports false when the lesson was
// not completed or the id is unknown.
func (e *Engine) UnmarkComplete(ctx context.Context, lessonID string) bool {
	lesson, ok := e.cat.LessonByID(lessonID)
	if !ok {
		return false
	}
	e.ensureLoaded(ctx)

	if !e.state.record.Uncomplete(lesson.ID) {
		return false
	}
	e.persistRecord(ctx)
	e.emit(Change{Kind: ChangeUncompleted, LessonID: lesson.ID})
	return true
}

// IsCompleted reports whether the lesson is currently completed.
func (e *Engine) IsCompleted(ctx context.Context, lessonID string) bool {
	e.ensureLoaded(ctx)
	return e.state.record.IsCompleted(lessonID)
}

// SetCurrentLesson moves the course position pointer. It reports false for
// ids the catalog cannot resolve.
func (e *Engine) SetCurrentLesson(ctx context.Context, lessonID string) bool {
	lesson, ok := e.cat.LessonByID(lessonID)
	if !ok {
		return false
	}
	e.ensureLoaded(ctx)

	e.state.record.CurrentLesson = lesson.ID
	e.state.record.CurrentChapter = lesson.Chapter
	e.state.record.LastAccessDate = e.now()
	e.persistRecord(ctx)
	e.emit(Change{Kind: ChangeCurrentLesson, LessonID: lesson.ID})
	return true
}

// CurrentLesson returns the lesson the learner is positioned on.
func (e *Engine) CurrentLesson(ctx context.Context) catalog.Lesson {
	e.ensureLoaded(ctx)
	lesson, ok := e.cat.LessonByID(e.state.record.CurrentLesson)
	if !ok {
		// Normalize keeps the pointer resolvable; fall back defensively.
		return e.cat.First()
	}
	return lesson
}

// NextLesson returns the lesson after the current position in course order.
// The second result is false at the end of the course.
func (e *Engine) NextLesson(ctx context.Context) (catalog.Lesson, bool) {
	e.ensureLoaded(ctx)
	return e.cat.NextOf(e.state.record.CurrentLesson)
}

// PreviousLesson returns the lesson before the current position in course
// order. The second result is false at the start of the course.
func (e *Engine) PreviousLesson(ctx context.Context) (catalog.Lesson, bool) {
	e.ensureLoaded(ctx)
	return e.cat.PreviousOf(e.state.record.CurrentLesson)
}

// RecommendedLessons returns up to count uncompleted lessons, in course
// order, whose prerequisites are all completed.
func (e *Engine) RecommendedLessons(ctx context.Context, count int) []catalog.Lesson {
	e.ensureLoaded(ctx)

	out := make([]catalog.Lesson, 0, count)
	for _, lesson := range e.cat.Lessons() {
		if len(out) == count {
			break
		}
		if e.state.record.IsCompleted(lesson.ID) {
			continue
		}
		ready := true
		for _, prereq := range lesson.Prerequisites {
			if !e.state.record.IsCompleted(prereq) {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, lesson)
		}
	}
	return out
}

// hasCompletionOn reports whether any completion time falls on the same local
// calendar day as ts.
func (e *Engine) hasCompletionOn(ts time.Time) bool {
	day := ts.Local().Format("2006-01-02")
	for _, completed := range e.state.times {
		if completed.Local().Format("2006-01-02") == day {
			return true
		}
	}
	return false
}

// notifyProgress fires milestone, streak, and course-completion notifications
// after a newly completed lesson. Notifier failures are logged, never
// surfaced.
func (e *Engine) notifyProgress(ctx context.Context, firstToday bool) {
	completed := len(e.state.record.CompletedLessons)
	total := e.cat.TotalLessons()

	for _, target := range milestoneLadder(total) {
		if completed == target {
			if err := e.notifier.NotifyMilestoneReached(ctx, target, completed, total); err != nil {
				e.logger.Warn("milestone notification failed", "error", err)
			}
			break
		}
	}

	if completed == total {
		if err := e.notifier.NotifyCourseCompleted(ctx, total); err != nil {
			e.logger.Warn("course completion notification failed", "error", err)
		}
	}

	if firstToday {
		if streak := currentStreak(e.state.times, e.now()); streak >= 3 {
			if err := e.notifier.NotifyStreak(ctx, streak); err != nil {
				e.logger.Warn("streak notification failed", "error", err)
			}
		}
	}
}
