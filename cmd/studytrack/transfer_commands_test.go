package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, id := range []string{"1-1", "1-2", "1-3"} {
		if _, _, err := runCLI(t, []string{"complete", id}, env.configPath); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	exportPath := filepath.Join(env.baseDir, "backup.json")
	out, _, err := runCLI(t, []string{"export", "-o", exportPath}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Exported learner state")

	if _, _, err := runCLI(t, []string{"reset", "--yes"}, env.configPath); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, _, err = runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats after reset: %v", err)
	}
	requireContains(t, out, "0 of 20 lessons")

	out, _, err = runCLI(t, []string{"import", exportPath}, env.configPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "3 of 20 lessons completed")
}

func TestImportRejectsPayloadWithoutVersion(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"complete", "1-1"}, env.configPath); err != nil {
		t.Fatalf("complete: %v", err)
	}

	badPath := filepath.Join(env.baseDir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"progress":{"completedLessons":["1-2"]}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, []string{"import", badPath}, env.configPath)
	if err == nil {
		t.Fatal("expected import rejection")
	}
	requireContains(t, err.Error(), "existing progress is unchanged")

	out, _, err := runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "1 of 20 lessons")
}

func TestResetRequiresConfirmation(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"reset"}, env.configPath)
	if err == nil {
		t.Fatal("expected reset without --yes to fail")
	}
	requireContains(t, err.Error(), "--yes")
}
