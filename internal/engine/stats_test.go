package engine_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studytrack/internal/engine"
	"studytrack/internal/progress"
	"studytrack/internal/store"
	"studytrack/internal/testsupport"
)

func TestCompletionRateAndMilestone(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, testsupport.NewMemStore())

	for _, id := range []string{"1-1", "1-2", "1-3", "1-4", "1-5"} {
		eng.MarkComplete(ctx, id)
	}

	stats := eng.Statistics(ctx)
	if stats.CompletedCount != 5 || stats.TotalCount != 7 {
		t.Fatalf("expected 5/7 completed, got %d/%d", stats.CompletedCount, stats.TotalCount)
	}
	if stats.CompletionRatePercent != 71 {
		t.Fatalf("expected completion rate 71, got %d", stats.CompletionRatePercent)
	}

	milestone, ok := eng.NextMilestone(ctx)
	if !ok {
		t.Fatal("expected a next milestone")
	}
	if milestone.Target != 10 || milestone.Remaining != 5 {
		t.Fatalf("expected target 10 remaining 5, got %+v", milestone)
	}
	if milestone.Percentage != 50 {
		t.Fatalf("expected milestone percentage 50, got %d", milestone.Percentage)
	}
}

func TestNoMilestoneWhenCourseComplete(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, testsupport.NewMemStore())

	for _, lesson := range eng.Catalog().Lessons() {
		eng.MarkComplete(ctx, lesson.ID)
	}
	if milestone, ok := eng.NextMilestone(ctx); ok {
		t.Fatalf("expected no milestone after course completion, got %+v", milestone)
	}
}

func TestPerChapterBreakdown(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, testsupport.NewMemStore())

	eng.MarkComplete(ctx, "1-1")
	eng.MarkComplete(ctx, "1-2")
	eng.MarkComplete(ctx, "2-1")

	stats := eng.Statistics(ctx)
	if len(stats.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %v", stats.Chapters)
	}
	first, second := stats.Chapters[0], stats.Chapters[1]
	if first.Completed != 2 || first.Total != 5 || first.Percent != 40 {
		t.Fatalf("unexpected chapter 1 breakdown: %+v", first)
	}
	if second.Completed != 1 || second.Total != 2 || second.Percent != 50 {
		t.Fatalf("unexpected chapter 2 breakdown: %+v", second)
	}
}

// seedCompletionTimes stores a completion-times blob directly, bypassing the
// engine, so streak tests control the calendar exactly.
func seedCompletionTimes(t testing.TB, st *testsupport.MemStore, times progress.CompletionTimes) {
	t.Helper()
	blob, err := json.Marshal(times)
	if err != nil {
		t.Fatalf("marshal completion times: %v", err)
	}
	st.Data[store.KeyCompletionTimes] = blob
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)

	st := testsupport.NewMemStore()
	seedCompletionTimes(t, st, progress.CompletionTimes{
		"1-1": now,
		"1-2": now.AddDate(0, 0, -1),
		"1-3": now.AddDate(0, 0, -3),
	})

	eng := newEngine(t, st, engine.WithClock(func() time.Time { return now }))
	if got := eng.Statistics(ctx).CurrentStreak; got != 2 {
		t.Fatalf("expected streak 2 (gap two days ago), got %d", got)
	}
}

func TestStreakIsZeroWithoutCompletionToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)

	st := testsupport.NewMemStore()
	seedCompletionTimes(t, st, progress.CompletionTimes{
		"1-1": now.AddDate(0, 0, -1),
		"1-2": now.AddDate(0, 0, -2),
	})

	eng := newEngine(t, st, engine.WithClock(func() time.Time { return now }))
	if got := eng.Statistics(ctx).CurrentStreak; got != 0 {
		t.Fatalf("expected streak 0 when today has no completion, got %d", got)
	}
}

func TestStudyDaysCeiling(t *testing.T) {
	ctx := context.Background()
	st := testsupport.NewMemStore()

	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	first := newEngine(t, st, engine.WithClock(func() time.Time { return start }))
	first.MarkComplete(ctx, "1-1")

	// 60 hours later: ceil(60/24) = 3 study days.
	later := start.Add(60 * time.Hour)
	second := newEngine(t, st, engine.WithClock(func() time.Time { return later }))
	if got := second.Statistics(ctx).StudyDays; got != 3 {
		t.Fatalf("expected 3 study days, got %d", got)
	}
}

func TestAverageTimePerCompletedLesson(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)
	current := base

	eng := newEngine(t, testsupport.NewMemStore(), engine.WithClock(func() time.Time { return current }))

	eng.BeginSession(ctx, "1-1")
	current = base.Add(10 * time.Minute)
	eng.EndSession(ctx)

	eng.MarkComplete(ctx, "1-1")
	eng.MarkComplete(ctx, "1-2")

	stats := eng.Statistics(ctx)
	if stats.TotalStudyTime != 600 {
		t.Fatalf("expected 600 seconds of study time, got %v", stats.TotalStudyTime)
	}
	if stats.AverageTimePerLesson != 300 {
		t.Fatalf("expected 300 seconds per completed lesson, got %v", stats.AverageTimePerLesson)
	}
}
