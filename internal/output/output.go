// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v2"

	"github.com/fmq/fmq/internal/config"
	"github.com/fmq/fmq/internal/log"
)

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// Colored reports whether styled output should actually be used: the user
// asked for it and stdout is a terminal, not a pipe.
func Colored(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stdout.Fd()))
}

// Spit writes the result set to w in the requested format. headers names
// the columns; each row carries one value per column. Text mode joins
// columns with a tab, so single-column result sets come out as plain
// lines. If w is nil, os.Stdout is used.
func Spit(w io.Writer, format string, headers []string, rows [][]any, colored bool) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		jsonOutput, err := json.MarshalIndent(toMaps(headers, rows), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(toMaps(headers, rows))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, _ = w.Write(yamlOutput)
	case "table":
		TableWriter(w, headers, rows, colored)
	default:
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = InterfaceToString(cell, "-")
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	}

	return nil
}

// TableWriter renders the result set in tabular form honoring the color
// option. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(w io.Writer, headers []string, rows [][]any, colored bool) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if colored {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, cell := range row {
			cells[i][j] = InterfaceToString(cell, "-")
		}
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers(headers...).
		BorderHeader(false).
		Rows(cells...)

	fmt.Fprintln(w, t)
}

// Summary renders a humanized match summary, e.g.
// "matched 1,204 of 52,310 documents".
func Summary(matched, total int) string {
	return fmt.Sprintf("matched %s of %s documents",
		humanize.Comma(int64(matched)), humanize.Comma(int64(total)))
}

// toMaps pairs each row with the column headers for structured output.
func toMaps(headers []string, rows [][]any) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		m := make(map[string]any, len(headers))
		for j, h := range headers {
			if j < len(row) {
				m[h] = row[j]
			}
		}
		out[i] = m
	}
	return out
}

// getColors resolves the table colors from the config file, falling back
// to defaults chosen for the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	log.Tracef("table colors resolved: dark=%v", isDark)

	return
}
