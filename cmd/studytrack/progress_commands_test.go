package main

import (
	"testing"
)

func TestCompleteThenStats(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"complete", "1-1"}, env.configPath)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	requireContains(t, out, "Completed 1-1")
	requireContains(t, out, "1 of 20 lessons")

	out, _, err = runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "1 of 20 lessons (5%)")
	requireContains(t, out, "Next milestone: 10 lessons (9 to go")
}

func TestCompleteAlreadyCompletedLesson(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"complete", "1-1"}, env.configPath); err != nil {
		t.Fatalf("complete: %v", err)
	}
	out, _, err := runCLI(t, []string{"complete", "1-1"}, env.configPath)
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	requireContains(t, out, "already completed")

	out, _, err = runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "1 of 20 lessons")
}

func TestCompleteRejectsUnknownLesson(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"complete", "bogus"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown lesson id")
	}
	requireContains(t, err.Error(), "unknown lesson")
}

func TestUncompleteRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"complete", "1-2"}, env.configPath); err != nil {
		t.Fatalf("complete: %v", err)
	}
	out, _, err := runCLI(t, []string{"uncomplete", "1-2"}, env.configPath)
	if err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	requireContains(t, out, "Removed completion for 1-2")

	out, _, err = runCLI(t, []string{"uncomplete", "1-2"}, env.configPath)
	if err != nil {
		t.Fatalf("uncomplete again: %v", err)
	}
	requireContains(t, out, "was not completed")
}

func TestCurrentShowsAndSets(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"current"}, env.configPath)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	requireContains(t, out, "1-1")

	out, _, err = runCLI(t, []string{"current", "1-3"}, env.configPath)
	if err != nil {
		t.Fatalf("current 1-3: %v", err)
	}
	requireContains(t, out, "1-3")

	// Pointer persists across invocations.
	out, _, err = runCLI(t, []string{"next"}, env.configPath)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	requireContains(t, out, "1-4")
}

func TestPrevAtCourseStart(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"prev"}, env.configPath)
	if err != nil {
		t.Fatalf("prev: %v", err)
	}
	requireContains(t, out, "Already at the first lesson")
}

func TestLessonsListsCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"lessons"}, env.configPath)
	if err != nil {
		t.Fatalf("lessons: %v", err)
	}
	requireContains(t, out, "1-1")
	requireContains(t, out, "current")

	out, _, err = runCLI(t, []string{"lessons", "--chapter", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("lessons --chapter: %v", err)
	}
	requireContains(t, out, "2-1")
	if _, _, err := runCLI(t, []string{"lessons", "--chapter", "99"}, env.configPath); err == nil {
		t.Fatal("expected error for missing chapter")
	}
}

func TestStatsJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"complete", "1-1"}, env.configPath); err != nil {
		t.Fatalf("complete: %v", err)
	}
	out, _, err := runCLI(t, []string{"stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stats --json: %v", err)
	}
	requireContains(t, out, `"completedCount": 1`)
	requireContains(t, out, `"completionRatePercent": 5`)
}

func TestRecommendListsUnlockedLessons(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, out, "1-1")
}
