package progress

import (
	"time"
)

// Settings holds learner preferences. They ride along inside the progress
// record and are also persisted as their own blob so partial updates never
// rewrite the whole record.
type Settings struct {
	Notifications bool    `json:"notifications"`
	Autoplay      bool    `json:"autoplay"`
	Speed         float64 `json:"speed"`
	Theme         string  `json:"theme"`
	Language      string  `json:"language"`
}

// Record is the mutable per-learner state. One record exists per data
// directory; every mutation is persisted before the mutating call returns.
type Record struct {
	TotalLessons     int       `json:"totalLessons"`
	CompletedLessons []string  `json:"completedLessons"`
	CurrentChapter   int       `json:"currentChapter"`
	CurrentLesson    string    `json:"currentLesson"`
	StartDate        time.Time `json:"startDate"`
	LastAccessDate   time.Time `json:"lastAccessDate"`
	LastUpdated      time.Time `json:"lastUpdated"`
	TotalStudyTime   float64   `json:"totalStudyTime"`
	Settings         Settings  `json:"settings"`
}

// DefaultSettings returns the canonical settings defaults.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Autoplay:      false,
		Speed:         1.0,
		Theme:         "light",
		Language:      "en",
	}
}

// NewRecord builds a fresh record for a course of totalLessons lessons,
// starting at firstLesson.
func NewRecord(totalLessons int, firstLesson string, settings Settings, now time.Time) Record {
	return Record{
		TotalLessons:     totalLessons,
		CompletedLessons: []string{},
		CurrentChapter:   1,
		CurrentLesson:    firstLesson,
		StartDate:        now,
		LastAccessDate:   now,
		LastUpdated:      now,
		Settings:         settings,
	}
}

// Normalize repairs a record loaded from storage so older or partially
// written data never produces missing-field errors downstream. The catalog is
// the source of truth for the lesson count; knownLessons filters completions
// that no longer resolve.
func (r *Record) Normalize(totalLessons int, firstLesson string, defaults Settings, knownLessons map[string]struct{}, now time.Time) {
	r.TotalLessons = totalLessons
	if r.CompletedLessons == nil {
		r.CompletedLessons = []string{}
	} else if knownLessons != nil {
		kept := r.CompletedLessons[:0]
		for _, id := range r.CompletedLessons {
			if _, ok := knownLessons[id]; ok {
				kept = append(kept, id)
			}
		}
		r.CompletedLessons = kept
	}
	if r.CurrentChapter < 1 {
		r.CurrentChapter = 1
	}
	if r.CurrentLesson == "" {
		r.CurrentLesson = firstLesson
	}
	if knownLessons != nil {
		if _, ok := knownLessons[r.CurrentLesson]; !ok {
			r.CurrentLesson = firstLesson
		}
	}
	if r.StartDate.IsZero() {
		r.StartDate = now
	}
	if r.LastAccessDate.IsZero() {
		r.LastAccessDate = now
	}
	if r.TotalStudyTime < 0 {
		r.TotalStudyTime = 0
	}
	r.Settings.normalize(defaults)
}

func (s *Settings) normalize(defaults Settings) {
	if s.Speed <= 0 {
		s.Speed = defaults.Speed
	}
	switch s.Theme {
	case "light", "dark":
	default:
		s.Theme = defaults.Theme
	}
	if s.Language == "" {
		s.Language = defaults.Language
	}
}

// IsCompleted reports whether the lesson is in the completed set.
func (r *Record) IsCompleted(lessonID string) bool {
	for _, id := range r.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Complete adds a lesson to the completed set. It reports false when the
// lesson was already completed.
func (r *Record) Complete(lessonID string) bool {
	if r.IsCompleted(lessonID) {
		return false
	}
	r.CompletedLessons = append(r.CompletedLessons, lessonID)
	return true
}

// Uncomplete removes a lesson from the completed set. It reports false when
// the lesson was not completed.
func (r *Record) Uncomplete(lessonID string) bool {
	for i, id := range r.CompletedLessons {
		if id == lessonID {
			r.CompletedLessons = append(r.CompletedLessons[:i], r.CompletedLessons[i+1:]...)
			return true
		}
	}
	return false
}
