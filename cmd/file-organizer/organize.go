// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-organizer/internal/journal"
	"github.com/pdiddy/file-organizer/internal/organize"
	"github.com/pdiddy/file-organizer/internal/selector"
	"github.com/pdiddy/file-organizer/pkg/types"
)

var errNoDirectory = errors.New("no directory given and stdin is not a terminal: pass DIR to organize")

func newOrganizeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [DIR]",
		Short: "Move the files in DIR into category folders",
		Long: `Organize creates one folder per category inside DIR and moves each
file found directly in DIR into the folder matching its extension. Files
with an unknown extension go to Other.

When DIR is omitted an interactive menu asks for the directory; this
needs a terminal on stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" && !isTerminal(cmd.InOrStdin()) {
				return errNoDirectory
			}
			return runOrganize(cmd, v, dir)
		},
	}
	addOrganizeFlags(cmd)
	return cmd
}

func addOrganizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("on-collision", "", "what to do when the destination exists: error, rename, skip, or overwrite (default error)")
	cmd.Flags().Bool("quiet", false, "do not print each move")
}

func runOrganize(cmd *cobra.Command, v *viper.Viper, dir string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("on-collision"); f != nil && f.Changed {
		cfg.OnCollision = types.CollisionPolicy(f.Value.String())
	}

	out := cmd.OutOrStdout()
	progress := out
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		progress = io.Discard
	}

	var rec organize.Recorder
	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer j.Close()
		rec = j
	}

	org, err := organize.New(cfg, rec, progress, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = selector.New(cmd.InOrStdin(), out).Select()
		if err != nil {
			return err
		}
	}

	summary, err := org.Run(cmd.Context(), dir)
	if err != nil {
		if summary.Moved > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d file(s) were moved before the run stopped\n", summary.Moved)
		}
		return err
	}

	fmt.Fprintf(out, "Files organized in the directory: %s\n", dir)
	for _, name := range summary.Categories() {
		fmt.Fprintf(progress, "  %-14s %d\n", name+":", summary.ByCategory[name])
	}
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "%d file(s) skipped because the destination already existed\n", summary.Skipped)
	}
	return nil
}
