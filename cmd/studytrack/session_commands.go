package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

func newSessionCommand(cmdCtx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage study sessions",
	}

	sessionCmd.AddCommand(newSessionStartCommand(cmdCtx))
	sessionCmd.AddCommand(newSessionEndCommand(cmdCtx))
	sessionCmd.AddCommand(newSessionShowCommand(cmdCtx))

	return sessionCmd
}

func newSessionStartCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start <lesson-id>",
		Short: "Start a study session on a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				session, ok := eng.BeginSession(ctx, args[0])
				if !ok {
					return unknownLessonError(args[0])
				}
				lesson, _ := eng.Catalog().LessonByID(session.LessonID)
				fmt.Fprintf(cmd.OutOrStdout(), "Started session on %s at %s\n",
					lessonLabel(lesson), session.StartTime.Format("15:04"))
				return nil
			})
		},
	}
}

func newSessionEndCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				elapsed, ok := eng.EndSession(ctx)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "No study session in progress")
					return nil
				}
				total := eng.Record(ctx).TotalStudyTime
				fmt.Fprintf(cmd.OutOrStdout(), "Session ended after %s (%s studied in total)\n",
					formatStudyTime(elapsed.Seconds()), formatStudyTime(total))
				return nil
			})
		},
	}
}

func newSessionShowCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				session, ok := eng.CurrentSession(ctx)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "No study session in progress")
					return nil
				}
				lesson, _ := eng.Catalog().LessonByID(session.LessonID)
				fmt.Fprintf(cmd.OutOrStdout(), "Studying %s since %s (%s elapsed)\n",
					lessonLabel(lesson),
					session.StartTime.Format("15:04"),
					formatStudyTime(time.Since(session.StartTime).Seconds()))
				return nil
			})
		},
	}
}
