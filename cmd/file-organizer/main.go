// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the file-organizer CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/file-organizer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can build independent trees.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "file-organizer",
		Short: "Sort the files in a directory into category folders",
		Long: `file-organizer moves every file directly inside a directory into a
subfolder named after its category (Images, Documents, Music, ..., Other).
The category is chosen from the file extension, case-insensitively. Only the
top level of the directory is read; subfolders are left alone.

Run without a subcommand to pick the directory from an interactive menu.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, v, "")
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./file-organizer.yaml or ~/.config/file-organizer/config.yaml)")
	addOrganizeFlags(rootCmd)

	rootCmd.AddCommand(newOrganizeCmd(v))
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newHistoryCmd(v))

	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("file-organizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "file-organizer"))
		}
	}

	v.SetEnvPrefix("FILE_ORGANIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("on_collision", string(types.CollisionError))
	v.SetDefault("lock_dir", "")
	v.SetDefault("journal.path", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

// loadConfig reads the organizer settings from v.
func loadConfig(v *viper.Viper) (types.OrganizerConfig, error) {
	var cfg types.OrganizerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}
