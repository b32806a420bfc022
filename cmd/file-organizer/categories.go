// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/file-organizer/internal/category"
)

// categoryEntry is the serialized form of one category.
type categoryEntry struct {
	Priority   int      `json:"priority" yaml:"priority"`
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories and the extensions they claim",
		Long: `Categories prints the category table in priority order. When an
extension is listed by several categories, the first one wins; use --shared
to see those extensions and where they end up.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}
	cmd.Flags().String("format", "table", "output format: table, yaml, or json")
	cmd.Flags().Bool("shared", false, "list extensions claimed by more than one category")
	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	shared, _ := cmd.Flags().GetBool("shared")
	out := cmd.OutOrStdout()

	if shared {
		return writeShared(out)
	}

	entries := categoryEntries()
	switch format {
	case "table", "":
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			exts := strings.Join(e.Extensions, " ")
			if e.Name == category.Other {
				exts = "(everything else)"
			}
			rows = append(rows, []string{strconv.Itoa(e.Priority), e.Name, exts})
		}
		fmt.Fprintln(out, renderTable(out, []string{"#", "Category", "Extensions"}, rows, 1))
		return nil
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling categories: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
}

func categoryEntries() []categoryEntry {
	cats := category.All()
	entries := make([]categoryEntry, len(cats))
	for i, c := range cats {
		exts := c.Extensions
		if exts == nil {
			exts = []string{}
		}
		entries[i] = categoryEntry{Priority: i + 1, Name: c.Name, Extensions: exts}
	}
	return entries
}

func writeShared(out io.Writer) error {
	seen := make(map[string]bool)
	var rows [][]string
	for _, c := range category.All() {
		for _, ext := range c.Extensions {
			if seen[ext] {
				continue
			}
			seen[ext] = true
			owners := category.Owners(ext)
			if len(owners) < 2 {
				continue
			}
			rows = append(rows, []string{ext, owners[0], strings.Join(owners[1:], ", ")})
		}
	}
	fmt.Fprintln(out, renderTable(out, []string{"Extension", "Goes to", "Also listed in"}, rows))
	return nil
}
