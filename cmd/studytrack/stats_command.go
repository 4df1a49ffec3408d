package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

func newStatsCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				stats := eng.Statistics(ctx)
				milestone, hasMilestone := eng.NextMilestone(ctx)

				if jsonFlag {
					payload := struct {
						engine.Statistics
						NextMilestone *engine.Milestone `json:"nextMilestone,omitempty"`
					}{Statistics: stats}
					if hasMilestone {
						payload.NextMilestone = &milestone
					}
					return writeJSON(cmd, payload)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Completed:      %d of %d lessons (%d%%)\n",
					stats.CompletedCount, stats.TotalCount, stats.CompletionRatePercent)
				fmt.Fprintf(out, "Current streak: %d day(s)\n", stats.CurrentStreak)
				fmt.Fprintf(out, "Study days:     %d since starting\n", stats.StudyDays)
				fmt.Fprintf(out, "Study time:     %s total", formatStudyTime(stats.TotalStudyTime))
				if stats.CompletedCount > 0 {
					fmt.Fprintf(out, " (%s per completed lesson)", formatStudyTime(stats.AverageTimePerLesson))
				}
				fmt.Fprintln(out)
				if hasMilestone {
					fmt.Fprintf(out, "Next milestone: %d lessons (%d to go, %d%% there)\n",
						milestone.Target, milestone.Remaining, milestone.Percentage)
				} else {
					fmt.Fprintln(out, "Next milestone: none, the course is complete")
				}

				rows := make([][]string, 0, len(stats.Chapters))
				for _, chapter := range stats.Chapters {
					rows = append(rows, []string{
						fmt.Sprintf("%d", chapter.ChapterID),
						chapter.Title,
						fmt.Sprintf("%d/%d", chapter.Completed, chapter.Total),
						fmt.Sprintf("%d%%", chapter.Percent),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Chapter", "Title", "Done", "Progress"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}
