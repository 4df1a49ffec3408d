package progress

import (
	"time"
)

// CompletionTimes maps lesson id to the time it was completed. The map is an
// append-only audit trail: unmarking a completion leaves its entry in place,
// and re-marking overwrites it with the new time.
type CompletionTimes map[string]time.Time

// Note is a learner note attached to one lesson.
type Note struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Notes maps lesson id to the learner's note.
type Notes map[string]Note

// Bookmarks is the set of bookmarked lesson ids, independent of completion.
type Bookmarks []string

// Contains reports whether the lesson is bookmarked.
func (b Bookmarks) Contains(lessonID string) bool {
	for _, id := range b {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Toggle adds the lesson when absent and removes it when present. The second
// return value reports whether the lesson is bookmarked afterwards.
func (b Bookmarks) Toggle(lessonID string) (Bookmarks, bool) {
	for i, id := range b {
		if id == lessonID {
			return append(b[:i], b[i+1:]...), false
		}
	}
	return append(b, lessonID), true
}

// AccessLogCap is the number of access entries retained.
const AccessLogCap = 100

// AccessEntry records one page or lesson visit.
type AccessEntry struct {
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	Client    string    `json:"client"`
}

// AccessLog is a capped ring of the most recent access entries.
type AccessLog []AccessEntry

// Append adds an entry, dropping the oldest entries beyond AccessLogCap.
func (l AccessLog) Append(entry AccessEntry) AccessLog {
	l = append(l, entry)
	if len(l) > AccessLogCap {
		l = l[len(l)-AccessLogCap:]
	}
	return l
}

// Session tracks one in-progress study sitting.
type Session struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lessonId"`
	StartTime time.Time `json:"startTime"`
	Client    string    `json:"client"`
}
