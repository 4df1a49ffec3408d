package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studytrack/internal/engine"
)

func newExportCommand(cmdCtx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all learner state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				data, err := eng.Export(ctx)
				if err != nil {
					return err
				}

				target := strings.TrimSpace(outputPath)
				if target == "" || target == "-" {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported learner state to %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import learner state from an export file",
		Long:  "Import learner state from a studytrack export. Pass \"-\" to read from stdin.\nThe import replaces existing progress, notes, bookmarks, and settings.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				var data []byte
				var err error
				if args[0] == "-" {
					data, err = io.ReadAll(cmd.InOrStdin())
				} else {
					data, err = os.ReadFile(args[0])
				}
				if err != nil {
					return fmt.Errorf("read import data: %w", err)
				}

				if err := eng.Import(ctx, data); err != nil {
					var importErr *engine.ImportError
					if errors.As(err, &importErr) {
						return fmt.Errorf("%s; existing progress is unchanged", importErr.Reason)
					}
					return err
				}

				stats := eng.Statistics(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported learner state: %d of %d lessons completed\n",
					stats.CompletedCount, stats.TotalCount)
				return nil
			})
		},
	}
}

func newResetCommand(cmdCtx *commandContext) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress, notes, and bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("reset erases all progress; re-run with --yes to confirm")
			}
			return cmdCtx.withEngine(cmd, func(ctx context.Context, eng *engine.Engine) error {
				if err := eng.ClearAll(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All progress erased")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the reset")
	return cmd
}
