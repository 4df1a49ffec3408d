package store_test

import (
	"context"
	"errors"
	"testing"

	"studytrack/internal/store"
	"studytrack/internal/testsupport"
)

func TestSetGetRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, found, err := s.Get(ctx, store.KeyProgress); err != nil || found {
		t.Fatalf("expected absent key, got found=%v err=%v", found, err)
	}

	if err := s.Set(ctx, store.KeyProgress, []byte(`{"totalLessons":20}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, found, err := s.Get(ctx, store.KeyProgress)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if string(value) != `{"totalLessons":20}` {
		t.Fatalf("unexpected value: %s", value)
	}

	// Overwrite replaces the previous blob.
	if err := s.Set(ctx, store.KeyProgress, []byte(`{}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, _, _ = s.Get(ctx, store.KeyProgress)
	if string(value) != `{}` {
		t.Fatalf("expected overwritten value, got %s", value)
	}
}

func TestRemoveAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, key := range []string{store.KeyNotes, store.KeyBookmarks, store.KeySettings} {
		if err := s.Set(ctx, key, []byte("x")); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	if err := s.Remove(ctx, store.KeyNotes); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, found, _ := s.Get(ctx, store.KeyNotes); found {
		t.Fatal("expected removed key absent")
	}
	// Removing an absent key is not an error.
	if err := s.Remove(ctx, store.KeyNotes); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected empty store, got %v", keys)
	}
}

func TestSetAllIsAtomic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entries := map[string][]byte{
		store.KeyProgress:  []byte("a"),
		store.KeyNotes:     []byte("b"),
		store.KeyBookmarks: []byte("c"),
	}
	if err := s.SetAll(ctx, entries); err != nil {
		t.Fatalf("SetAll: %v", err)
	}
	for key, want := range entries {
		got, found, err := s.Get(ctx, key)
		if err != nil || !found || string(got) != string(want) {
			t.Fatalf("key %s: got %q found=%v err=%v", key, got, found, err)
		}
	}
}

func TestSecondOpenFailsWithErrLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.MustOpenStore(t, cfg)

	if _, err := store.Open(cfg); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestReopenAfterCloseSeesData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	first, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.Set(ctx, store.KeyProgress, []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second := testsupport.MustOpenStore(t, cfg)
	value, found, err := second.Get(ctx, store.KeyProgress)
	if err != nil || !found || string(value) != "persisted" {
		t.Fatalf("expected persisted value, got %q found=%v err=%v", value, found, err)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	health, err := s.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists {
		t.Fatalf("unexpected health: %+v", health)
	}
	if !health.IntegrityCheck {
		t.Fatalf("expected integrity check to pass: %+v", health)
	}
}
