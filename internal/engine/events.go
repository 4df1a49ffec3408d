package engine

// ChangeKind identifies the kind of state mutation a Change describes.
type ChangeKind string

const (
	ChangeCompleted     ChangeKind = "completed"
	ChangeUncompleted   ChangeKind = "uncompleted"
	ChangeCurrentLesson ChangeKind = "current-lesson"
	ChangeSettings      ChangeKind = "settings"
	ChangeNote          ChangeKind = "note"
	ChangeBookmark      ChangeKind = "bookmark"
	ChangeSession       ChangeKind = "session"
	ChangeImported      ChangeKind = "imported"
	ChangeReset         ChangeKind = "reset"
)

// Change describes one committed state mutation. LessonID is empty for
// mutations that do not target a single lesson.
type Change struct {
	Kind     ChangeKind
	LessonID string
}

// Subscribe registers a callback invoked synchronously after every committed
// mutation. Subscribers run on the mutating goroutine and must not call back
// into the engine.
func (e *Engine) Subscribe(fn func(Change)) {
	if fn == nil {
		return
	}
	e.subscribers = append(e.subscribers, fn)
}

func (e *Engine) emit(change Change) {
	for _, fn := range e.subscribers {
		fn(change)
	}
}
