// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fmq/fmq/internal/config"
	"github.com/fmq/fmq/internal/meta"
	"github.com/fmq/fmq/internal/util"
	"github.com/fmq/fmq/internal/vault"
)

// ErrNoResults signals that the command ran cleanly but matched nothing.
// main maps it to a distinct exit code so scripts can branch on it.
var ErrNoResults = errors.New("no results")

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// loadVaultDocuments resolves the vault directory and loads every markdown
// document that carries frontmatter. With --stdin set, the document list
// comes from stdin instead of a directory walk.
func loadVaultDocuments(ctx context.Context, cmd *cli.Command) (string, []vault.Document, error) {
	dir, err := util.ParseVaultDir(cmd.String("vault"))
	if err != nil {
		return "", nil, err
	}

	var paths []string
	if cmd.Bool("stdin") {
		paths = vault.ReadPathsFromStdin(os.Stdin)
	} else {
		extra, _ := config.GetStringSlice("ignore", nil)
		paths, err = vault.CollectMarkdownFiles(dir, extra...)
		if err != nil {
			return "", nil, err
		}
	}

	workers := int(cmd.Int("workers"))
	if workers == 0 {
		workers, _ = config.GetInt("workers", 0)
	}

	docs, err := vault.LoadDocuments(ctx, dir, paths, workers)
	if err != nil {
		return "", nil, err
	}

	return dir, docs, nil
}
