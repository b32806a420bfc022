// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-organizer/internal/journal"
	"github.com/pdiddy/file-organizer/pkg/types"
)

var errNoJournal = errors.New("no journal configured: set journal.path in file-organizer.yaml or FILE_ORGANIZER_JOURNAL_PATH")

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "Show past runs recorded in the move journal",
		Long: `History lists the organize runs recorded in the journal, newest first.
Pass a run ID to list the files that run moved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, v, args)
		},
	}
	cmd.Flags().Int("limit", 20, "maximum number of runs to list (0 = all)")
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}

func runHistory(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	if cfg.Journal.Path == "" {
		return errNoJournal
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if len(args) == 1 {
		if _, err := j.Run(ctx, args[0]); err != nil {
			return err
		}
		moves, err := j.Moves(ctx, args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(out, moves)
		}
		return writeMoves(out, moves)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := j.Runs(ctx, limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(out, runs)
	}
	return writeRuns(out, runs)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRuns(out io.Writer, runs []journal.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := "ok"
		switch {
		case r.Error != "":
			status = r.Error
		case r.FinishedAt.IsZero():
			status = "unfinished"
		}
		rows = append(rows, []string{
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.BaseDir,
			strconv.Itoa(r.Moved),
			strconv.Itoa(r.Skipped),
			status,
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Run", "Started", "Directory", "Moved", "Skipped", "Status"},
		rows, 4, 5))
	return nil
}

func writeMoves(out io.Writer, moves []types.Move) error {
	if len(moves) == 0 {
		fmt.Fprintln(out, "No files were moved in this run.")
		return nil
	}
	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		rows = append(rows, []string{m.Source, m.Category, m.Destination})
	}
	fmt.Fprintln(out, renderTable(out, []string{"File", "Category", "Destination"}, rows))
	fmt.Fprintf(out, "\n%d files\n", len(moves))
	return nil
}
