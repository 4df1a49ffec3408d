package store

// Blob keys. Each piece of learner state is independently readable,
// writable, and removable under its own key.
const (
	KeyProgress        = "progress"
	KeyCurrentLesson   = "current_lesson"
	KeyCurrentSession  = "current_session"
	KeyAccessLog       = "access_log"
	KeyNotes           = "notes"
	KeyBookmarks       = "bookmarks"
	KeySettings        = "settings"
	KeyCompletionTimes = "completion_times"
)

// AllKeys lists every blob key the tracker persists.
var AllKeys = []string{
	KeyProgress,
	KeyCurrentLesson,
	KeyCurrentSession,
	KeyAccessLog,
	KeyNotes,
	KeyBookmarks,
	KeySettings,
	KeyCompletionTimes,
}
