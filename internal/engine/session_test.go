package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studytrack/internal/engine"
	"studytrack/internal/progress"
	"studytrack/internal/testsupport"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)
	current := base

	eng := newEngine(t, testsupport.NewMemStore(), engine.WithClock(func() time.Time { return current }))

	if _, ok := eng.CurrentSession(ctx); ok {
		t.Fatal("expected no session before BeginSession")
	}
	if _, ok := eng.BeginSession(ctx, "9-9"); ok {
		t.Fatal("expected unknown lesson id to be rejected")
	}

	session, ok := eng.BeginSession(ctx, "1-1")
	if !ok {
		t.Fatal("BeginSession failed")
	}
	if session.ID == "" || session.LessonID != "1-1" {
		t.Fatalf("unexpected session: %+v", session)
	}

	current = base.Add(25 * time.Minute)
	elapsed, ok := eng.EndSession(ctx)
	if !ok {
		t.Fatal("EndSession failed")
	}
	if elapsed != 25*time.Minute {
		t.Fatalf("expected 25m elapsed, got %v", elapsed)
	}
	if _, ok := eng.CurrentSession(ctx); ok {
		t.Fatal("expected session cleared after EndSession")
	}
	if _, ok := eng.EndSession(ctx); ok {
		t.Fatal("expected second EndSession to report no session")
	}

	if got := eng.Record(ctx).TotalStudyTime; got != (25 * time.Minute).Seconds() {
		t.Fatalf("expected study time accumulated, got %v", got)
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	st := testsupport.NewMemStore()

	first := newEngine(t, st)
	started, ok := first.BeginSession(ctx, "1-2")
	if !ok {
		t.Fatal("BeginSession failed")
	}

	second := newEngine(t, st)
	resumed, ok := second.CurrentSession(ctx)
	if !ok {
		t.Fatal("expected session visible after reload")
	}
	if resumed.ID != started.ID || resumed.LessonID != "1-2" {
		t.Fatalf("expected session %+v, got %+v", started, resumed)
	}
}

func TestBeginSessionEndsPreviousSession(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)
	current := base

	eng := newEngine(t, testsupport.NewMemStore(), engine.WithClock(func() time.Time { return current }))

	eng.BeginSession(ctx, "1-1")
	current = base.Add(5 * time.Minute)
	replacement, ok := eng.BeginSession(ctx, "1-2")
	if !ok {
		t.Fatal("BeginSession failed")
	}
	if replacement.LessonID != "1-2" {
		t.Fatalf("expected session on 1-2, got %+v", replacement)
	}

	// The implicit end banked the first session's time.
	if got := eng.Record(ctx).TotalStudyTime; got != (5 * time.Minute).Seconds() {
		t.Fatalf("expected 300s banked from first session, got %v", got)
	}
}

func TestAccessLogIsCapped(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, testsupport.NewMemStore())

	for i := 0; i < progress.AccessLogCap+20; i++ {
		eng.RecordAccess(ctx, fmt.Sprintf("page-%d", i))
	}

	log := eng.AccessLog(ctx)
	if len(log) != progress.AccessLogCap {
		t.Fatalf("expected log capped at %d, got %d", progress.AccessLogCap, len(log))
	}
	if log[0].Page != "page-20" {
		t.Fatalf("expected oldest entries dropped, first is %s", log[0].Page)
	}
	if log[len(log)-1].Page != fmt.Sprintf("page-%d", progress.AccessLogCap+19) {
		t.Fatalf("unexpected newest entry: %s", log[len(log)-1].Page)
	}
}
