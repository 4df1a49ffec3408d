package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

func newBookmarkCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <lesson-id>",
		Short: "Toggle a lesson bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				bookmarked, ok := eng.ToggleBookmark(ctx, args[0])
				if !ok {
					return unknownLessonError(args[0])
				}
				if bookmarked {
					fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed bookmark from %s\n", args[0])
				}
				return nil
			})
		},
	}
}

func newBookmarksCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List bookmarked lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				bookmarks := eng.Bookmarks(ctx)
				if jsonFlag {
					return writeJSON(cmd, bookmarks)
				}

				out := cmd.OutOrStdout()
				if len(bookmarks) == 0 {
					fmt.Fprintln(out, "No bookmarks yet; add one with `studytrack bookmark <lesson-id>`")
					return nil
				}
				rows := make([][]string, 0, len(bookmarks))
				for _, id := range bookmarks {
					title := ""
					if lesson, ok := eng.Catalog().LessonByID(id); ok {
						title = lesson.Title
					}
					rows = append(rows, []string{id, title, yesNo(eng.IsCompleted(ctx, id))})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Completed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}
