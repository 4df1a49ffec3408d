package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

type lessonView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Chapter    int    `json:"chapter"`
	Duration   int    `json:"duration"`
	Difficulty string `json:"difficulty"`
	Completed  bool   `json:"completed"`
	Current    bool   `json:"current"`
	Bookmarked bool   `json:"bookmarked"`
	HasNote    bool   `json:"hasNote"`
}

func newLessonsCommand(cmdCtx *commandContext) *cobra.Command {
	var chapterFlag int
	var jsonFlag bool
	var onlyComplete bool
	var onlyIncomplete bool
	var searchFlag string

	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List course lessons and their progress state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyComplete && onlyIncomplete {
				return fmt.Errorf("--complete and --incomplete are mutually exclusive")
			}
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				views := collectLessonViews(ctx, eng, chapterFlag)
				if chapterFlag > 0 && len(views) == 0 {
					return fmt.Errorf("chapter %d not found", chapterFlag)
				}
				views = filterLessonViews(views, onlyComplete, onlyIncomplete, searchFlag)
				if jsonFlag {
					return writeJSON(cmd, views)
				}

				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{
						v.ID,
						v.Title,
						formatLessonDuration(v.Duration),
						v.Difficulty,
						lessonStatus(v.Completed, v.Current, v.Bookmarked, v.HasNote),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Length", "Difficulty", "Status"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&chapterFlag, "chapter", 0, "Only list lessons from this chapter")
	cmd.Flags().BoolVar(&onlyComplete, "complete", false, "Only list completed lessons")
	cmd.Flags().BoolVar(&onlyIncomplete, "incomplete", false, "Only list lessons not yet completed")
	cmd.Flags().StringVar(&searchFlag, "search", "", "Only list lessons whose title matches")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

func filterLessonViews(views []lessonView, onlyComplete, onlyIncomplete bool, search string) []lessonView {
	search = strings.ToLower(strings.TrimSpace(search))
	out := views[:0]
	for _, v := range views {
		if onlyComplete && !v.Completed {
			continue
		}
		if onlyIncomplete && v.Completed {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(v.Title), search) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func collectLessonViews(ctx context.Context, eng *engine.Engine, chapter int) []lessonView {
	current := eng.CurrentLesson(ctx)
	notes := eng.Notes(ctx)

	var views []lessonView
	for _, lesson := range eng.Catalog().Lessons() {
		if chapter > 0 && lesson.Chapter != chapter {
			continue
		}
		_, hasNote := notes[lesson.ID]
		views = append(views, lessonView{
			ID:         lesson.ID,
			Title:      lesson.Title,
			Chapter:    lesson.Chapter,
			Duration:   lesson.Duration,
			Difficulty: lesson.Difficulty.Label(),
			Completed:  eng.IsCompleted(ctx, lesson.ID),
			Current:    lesson.ID == current.ID,
			Bookmarked: eng.IsBookmarked(ctx, lesson.ID),
			HasNote:    hasNote,
		})
	}
	return views
}
