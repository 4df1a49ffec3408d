package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/catalog"
	"studytrack/internal/engine"
)

func newCompleteCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <lesson-id>",
		Short: "Mark a lesson as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				id := args[0]
				lesson, ok := eng.Catalog().LessonByID(id)
				if !ok {
					return unknownLessonError(id)
				}
				if !eng.MarkComplete(ctx, id) {
					fmt.Fprintf(cmd.OutOrStdout(), "Lesson %s is already completed\n", id)
					return nil
				}
				stats := eng.Statistics(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %s (%d of %d lessons, %d%%)\n",
					lessonLabel(lesson), stats.CompletedCount, stats.TotalCount, stats.CompletionRatePercent)
				if milestone, ok := eng.NextMilestone(ctx); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Next milestone: %d lessons (%d to go)\n",
						milestone.Target, milestone.Remaining)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Course complete, congratulations!")
				}
				return nil
			})
		},
	}
}

func newUncompleteCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "uncomplete <lesson-id>",
		Short: "Remove a lesson from the completed set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				id := args[0]
				if _, ok := eng.Catalog().LessonByID(id); !ok {
					return unknownLessonError(id)
				}
				if !eng.UnmarkComplete(ctx, id) {
					fmt.Fprintf(cmd.OutOrStdout(), "Lesson %s was not completed\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed completion for %s\n", id)
				return nil
			})
		},
	}
}

func newCurrentCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "current [lesson-id]",
		Short: "Show or set the current lesson",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				if len(args) == 1 {
					if !eng.SetCurrentLesson(ctx, args[0]) {
						return unknownLessonError(args[0])
					}
				}
				printLessonDetail(ctx, cmd, eng, eng.CurrentLesson(ctx))
				return nil
			})
		},
	}
}

func newNextCommand(cmdCtx *commandContext) *cobra.Command {
	var move bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the lesson after the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				lesson, ok := eng.NextLesson(ctx)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Already at the last lesson of the course")
					return nil
				}
				if move {
					eng.SetCurrentLesson(ctx, lesson.ID)
				}
				printLessonDetail(ctx, cmd, eng, lesson)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&move, "move", false, "Also move the current-lesson pointer")
	return cmd
}

func newPrevCommand(cmdCtx *commandContext) *cobra.Command {
	var move bool

	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Show the lesson before the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				lesson, ok := eng.PreviousLesson(ctx)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Already at the first lesson of the course")
					return nil
				}
				if move {
					eng.SetCurrentLesson(ctx, lesson.ID)
				}
				printLessonDetail(ctx, cmd, eng, lesson)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&move, "move", false, "Also move the current-lesson pointer")
	return cmd
}

func newRecommendCommand(cmdCtx *commandContext) *cobra.Command {
	var count int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest lessons whose prerequisites are met",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				lessons := eng.RecommendedLessons(ctx, count)
				if jsonFlag {
					return writeJSON(cmd, lessons)
				}

				out := cmd.OutOrStdout()
				if len(lessons) == 0 {
					stats := eng.Statistics(ctx)
					if stats.CompletedCount >= stats.TotalCount {
						fmt.Fprintln(out, "All lessons are completed, nothing left to recommend")
					} else {
						fmt.Fprintln(out, "No lessons are unlocked; complete outstanding prerequisites first")
					}
					return nil
				}

				rows := make([][]string, 0, len(lessons))
				for _, lesson := range lessons {
					rows = append(rows, []string{
						lesson.ID,
						lesson.Title,
						formatLessonDuration(lesson.Duration),
						lesson.Difficulty.Label(),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Length", "Difficulty"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Maximum number of recommendations")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

func printLessonDetail(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, lesson catalog.Lesson) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (chapter %d, %s, %s)\n",
		lessonLabel(lesson), lesson.Chapter, formatLessonDuration(lesson.Duration), lesson.Difficulty.Label())
	if lesson.Description != "" {
		fmt.Fprintf(out, "  %s\n", lesson.Description)
	}
	if len(lesson.Prerequisites) > 0 {
		fmt.Fprintf(out, "  Prerequisites: %v\n", lesson.Prerequisites)
	}
	fmt.Fprintf(out, "  Completed: %s  Bookmarked: %s\n",
		yesNo(eng.IsCompleted(ctx, lesson.ID)), yesNo(eng.IsBookmarked(ctx, lesson.ID)))
	if note, ok := eng.Note(ctx, lesson.ID); ok {
		fmt.Fprintf(out, "  Note: %s\n", note.Content)
	}
}

func unknownLessonError(id string) error {
	return fmt.Errorf("unknown lesson %q (ids look like 2-3: chapter 2, lesson 3; run `studytrack lessons`)", id)
}
