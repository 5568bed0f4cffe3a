// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/fmq/fmq/internal/meta"
	"github.com/fmq/fmq/internal/output"
	"github.com/fmq/fmq/internal/values"
)

// valuesCommandAction is the action handler for the "values" subcommand. It
// aggregates the distinct values of one frontmatter property across the
// vault. Dotted property names drill into nested structures.
func valuesCommandAction(ctx context.Context, cmd *cli.Command) error {
	property := cmd.Args().First()
	if property == "" {
		return fmt.Errorf("missing property name")
	}

	_, docs, err := loadVaultDocuments(ctx, cmd)
	if err != nil {
		return err
	}

	counts := values.Collect(docs, property)

	log.Debugf("property %q has %d distinct values across %d documents",
		property, len(counts), len(docs))

	if len(counts) == 0 {
		return ErrNoResults
	}

	showCount := cmd.Bool("count")

	var rows [][]any
	headers := []string{"value"}
	if showCount {
		headers = append(headers, "count")
	}
	for _, e := range values.Sorted(counts, showCount) {
		row := []any{e.Value}
		if showCount {
			row = append(row, e.Count)
		}
		rows = append(rows, row)
	}

	colored := output.Colored(cmd.Bool("color"))
	return output.Spit(os.Stdout, cmd.String("output"), headers, rows, colored)
}

// valuesCommandBuilder constructs the cli.Command for "values", wiring
// metadata, flags, and action handlers.
func valuesCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "values",
		Usage:     "list the distinct values of a frontmatter property",
		UsageText: "fmq values PROPERTY [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "count",
				Usage: "show occurrence counts and sort by them",
				Value: false,
			},
		},
		Action: valuesCommandAction,
		Meta:   meta,
	}).Build()
}
