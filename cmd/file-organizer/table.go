// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderTable formats rows under headers. Columns listed in rightAligned
// (1-based) are right aligned. Terminals get a colored style; pipes and
// files get plain box drawing.
func renderTable(w io.Writer, headers []string, rows [][]string, rightAligned ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if isTerminal(w) {
		tw.SetStyle(table.StyleColoredDark)
	}

	tw.AppendHeader(toRow(headers))
	for _, row := range rows {
		tw.AppendRow(toRow(row))
	}

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, n := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(cells []string) table.Row {
	r := make(table.Row, len(cells))
	for i, c := range cells {
		r[i] = c
	}
	return r
}

// isTerminal reports whether v is a file attached to a terminal. It accepts
// both the command's stdin and its output writers.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
