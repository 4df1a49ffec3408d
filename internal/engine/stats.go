package engine

import (
	"context"
	"math"
	"time"

	"studytrack/internal/progress"
)

// ChapterProgress is the per-chapter slice of a statistics snapshot.
type ChapterProgress struct {
	ChapterID int    `json:"chapterId"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// Statistics is a derived, read-only snapshot of learner progress.
type Statistics struct {
	CompletedCount        int               `json:"completedCount"`
	TotalCount            int               `json:"totalCount"`
	CompletionRatePercent int               `json:"completionRatePercent"`
	StudyDays             int               `json:"studyDays"`
	TotalStudyTime        float64           `json:"totalStudyTime"`
	AverageTimePerLesson  float64           `json:"averageTimePerLesson"`
	CurrentStreak         int               `json:"currentStreak"`
	Chapters              []ChapterProgress `json:"chapters"`
}

// Milestone is the next completion target on the milestone ladder.
type Milestone struct {
	Target     int `json:"target"`
	Remaining  int `json:"remaining"`
	Percentage int `json:"percentage"`
}

// Statistics computes a progress snapshot from the current state.
func (e *Engine) Statistics(ctx context.Context) Statistics {
	e.ensureLoaded(ctx)

	rec := e.state.record
	completed := len(rec.CompletedLessons)
	total := e.cat.TotalLessons()

	stats := Statistics{
		CompletedCount: completed,
		TotalCount:     total,
		TotalStudyTime: rec.TotalStudyTime,
		CurrentStreak:  currentStreak(e.state.times, e.now()),
	}
	if total > 0 {
		stats.CompletionRatePercent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	if elapsed := e.now().Sub(rec.StartDate); elapsed > 0 {
		stats.StudyDays = int(math.Ceil(elapsed.Hours() / 24))
	}
	if completed > 0 {
		stats.AverageTimePerLesson = rec.TotalStudyTime / float64(completed)
	}

	for _, chapter := range e.cat.Chapters() {
		done := 0
		for _, lesson := range chapter.Lessons {
			if rec.IsCompleted(lesson.ID) {
				done++
			}
		}
		cp := ChapterProgress{
			ChapterID: chapter.ID,
			Title:     chapter.Title,
			Completed: done,
			Total:     chapter.TotalLessons,
		}
		if cp.Total > 0 {
			cp.Percent = int(math.Round(float64(done) / float64(cp.Total) * 100))
		}
		stats.Chapters = append(stats.Chapters, cp)
	}
	return stats
}

// NextMilestone returns the first milestone target strictly above the current
// completed count. The second result is false once the course is complete.
func (e *Engine) NextMilestone(ctx context.Context) (Milestone, bool) {
	e.ensureLoaded(ctx)

	completed := len(e.state.record.CompletedLessons)
	total := e.cat.TotalLessons()
	if completed >= total {
		return Milestone{}, false
	}
	for _, target := range milestoneLadder(total) {
		if target > completed {
			return Milestone{
				Target:     target,
				Remaining:  target - completed,
				Percentage: int(math.Round(float64(completed) / float64(target) * 100)),
			}, true
		}
	}
	return Milestone{}, false
}

// milestoneLadder returns the fixed milestone thresholds, with the course
// size as the final rung.
func milestoneLadder(total int) []int {
	return []int{10, 25, 50, 75, total}
}

// currentStreak counts consecutive local calendar days with at least one
// completion, walking backwards from today. A day without completions,
// including today, ends the walk.
func currentStreak(times progress.CompletionTimes, now time.Time) int {
	if len(times) == 0 {
		return 0
	}
	days := make(map[string]struct{}, len(times))
	for _, ts := range times {
		days[ts.Local().Format("2006-01-02")] = struct{}{}
	}

	streak := 0
	for {
		day := now.AddDate(0, 0, -streak).Local().Format("2006-01-02")
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
	}
}
