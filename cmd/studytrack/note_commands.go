package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

func newNoteCommand(cmdCtx *commandContext) *cobra.Command {
	var deleteFlag bool

	cmd := &cobra.Command{
		Use:   "note <lesson-id> [text...]",
		Short: "Show, set, or delete the note on a lesson",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				id := args[0]
				out := cmd.OutOrStdout()

				if deleteFlag {
					if len(args) > 1 {
						return fmt.Errorf("--delete does not take note text")
					}
					if !eng.DeleteNote(ctx, id) {
						fmt.Fprintf(out, "No note on %s\n", id)
						return nil
					}
					fmt.Fprintf(out, "Deleted note on %s\n", id)
					return nil
				}

				if len(args) > 1 {
					text := strings.Join(args[1:], " ")
					if !eng.SaveNote(ctx, id, text) {
						return unknownLessonError(id)
					}
					fmt.Fprintf(out, "Saved note on %s\n", id)
					return nil
				}

				note, ok := eng.Note(ctx, id)
				if !ok {
					fmt.Fprintf(out, "No note on %s\n", id)
					return nil
				}
				fmt.Fprintf(out, "%s (updated %s)\n", note.Content, note.UpdatedAt.Format("2006-01-02 15:04"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&deleteFlag, "delete", false, "Delete the note instead of showing it")
	return cmd
}

func newNotesCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List all lesson notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				notes := eng.Notes(ctx)
				if jsonFlag {
					return writeJSON(cmd, notes)
				}

				out := cmd.OutOrStdout()
				if len(notes) == 0 {
					fmt.Fprintln(out, "No notes yet; add one with `studytrack note <lesson-id> <text>`")
					return nil
				}

				ids := make([]string, 0, len(notes))
				for id := range notes {
					ids = append(ids, id)
				}
				sort.Strings(ids)

				rows := make([][]string, 0, len(ids))
				for _, id := range ids {
					note := notes[id]
					rows = append(rows, []string{
						id,
						note.UpdatedAt.Format("2006-01-02"),
						excerpt(note.Content, 60),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Updated", "Note"},
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
