package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studytrack/internal/progress"
	"studytrack/internal/store"
)

// ExportVersion is the payload format version written by Export and required
// by Import.
const ExportVersion = "1.0"

// ExportPayload is the self-contained backup of all learner state.
type ExportPayload struct {
	ExportDate      time.Time                `json:"exportDate"`
	Version         string                   `json:"version"`
	Progress        progress.Record          `json:"progress"`
	Notes           progress.Notes           `json:"notes"`
	Bookmarks       progress.Bookmarks       `json:"bookmarks"`
	Settings        progress.Settings        `json:"settings"`
	CompletionTimes progress.CompletionTimes `json:"completionTimes"`
}

// Export serializes the full learner state as an indented JSON document.
func (e *Engine) Export(ctx context.Context) ([]byte, error) {
	e.ensureLoaded(ctx)

	payload := ExportPayload{
		ExportDate:      e.now(),
		Version:         ExportVersion,
		Progress:        e.state.record,
		Notes:           e.state.notes,
		Bookmarks:       e.state.bookmarks,
		Settings:        e.state.record.Settings,
		CompletionTimes: e.state.times,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export payload: %w", err)
	}
	return data, nil
}

type importPayload struct {
	Version         string                   `json:"version"`
	Progress        *progress.Record         `json:"progress"`
	Notes           progress.Notes           `json:"notes"`
	Bookmarks       progress.Bookmarks       `json:"bookmarks"`
	Settings        *progress.Settings       `json:"settings"`
	CompletionTimes progress.CompletionTimes `json:"completionTimes"`
}

// Import replaces the learner state with the contents of an export payload.
// A payload missing the version or progress fields is rejected with
// *ImportError and leaves the stored state untouched; the write itself is
// all-or-nothing.
func (e *Engine) Import(ctx context.Context, data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return &ImportError{Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}
	if payload.Version == "" {
		return &ImportError{Reason: "missing version field"}
	}
	if payload.Progress == nil {
		return &ImportError{Reason: "missing progress field"}
	}
	e.ensureLoaded(ctx)

	now := e.now()
	record := *payload.Progress
	if payload.Settings != nil {
		record.Settings = *payload.Settings
	}
	record.Normalize(e.cat.TotalLessons(), e.cat.First().ID, e.defaults, e.knownLessons(), now)
	record.LastUpdated = now

	notes := payload.Notes
	if notes == nil {
		notes = progress.Notes{}
	}
	bookmarks := payload.Bookmarks
	if bookmarks == nil {
		bookmarks = progress.Bookmarks{}
	}
	times := payload.CompletionTimes
	if times == nil {
		times = progress.CompletionTimes{}
	}

	entries := make(map[string][]byte, 5)
	for key, value := range map[string]any{
		store.KeyProgress:        record,
		store.KeyNotes:           notes,
		store.KeyBookmarks:       bookmarks,
		store.KeySettings:        record.Settings,
		store.KeyCompletionTimes: times,
	} {
		blob, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		entries[key] = blob
	}
	if e.store != nil {
		if err := e.store.SetAll(ctx, entries); err != nil {
			return fmt.Errorf("import learner state: %w", err)
		}
	}

	e.state.record = record
	e.state.notes = notes
	e.state.bookmarks = bookmarks
	e.state.times = times
	e.emit(Change{Kind: ChangeImported})
	e.logger.Info("imported learner state",
		"completed", len(record.CompletedLessons),
		"notes", len(notes),
		"bookmarks", len(bookmarks))
	return nil
}

// ClearAll erases all stored learner state and resets the in-memory state to
// defaults.
func (e *Engine) ClearAll(ctx context.Context) error {
	if e.store != nil {
		if err := e.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear learner state: %w", err)
		}
	}
	e.state = state{}
	e.ensureLoaded(ctx)
	e.emit(Change{Kind: ChangeReset})
	e.logger.Info("cleared learner state")
	return nil
}
