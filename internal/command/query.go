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
	"github.com/fmq/fmq/internal/query"
)

// queryCommandAction is the action handler for the "query" subcommand. It
// parses the query expression, evaluates it against every document in the
// vault, and emits the paths of the documents that matched.
func queryCommandAction(ctx context.Context, cmd *cli.Command) error {
	expr := cmd.Args().First()
	if expr == "" {
		return fmt.Errorf("missing query expression")
	}

	parsed, err := query.Parse(expr)
	if err != nil {
		return err
	}

	_, docs, err := loadVaultDocuments(ctx, cmd)
	if err != nil {
		return err
	}

	abs := cmd.Bool("abs")

	var rows [][]any
	for _, doc := range docs {
		if !query.Evaluate(parsed, doc.Frontmatter) {
			continue
		}
		p := doc.Rel
		if abs {
			p = doc.Path
		}
		rows = append(rows, []any{p})
	}

	log.Infof("%s", output.Summary(len(rows), len(docs)))

	if len(rows) == 0 {
		return ErrNoResults
	}

	colored := output.Colored(cmd.Bool("color"))
	return output.Spit(os.Stdout, cmd.String("output"), []string{"path"}, rows, colored)
}

// queryCommandBuilder constructs the cli.Command for "query", wiring
// metadata, flags, and action handlers.
func queryCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "query",
		Usage:     "list documents whose frontmatter matches an expression",
		UsageText: "fmq query EXPRESSION [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "abs",
				Usage: "print absolute paths instead of vault-relative ones",
				Value: false,
			},
		},
		Action: queryCommandAction,
		Meta:   meta,
	}).Build()
}
