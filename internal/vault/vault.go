// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/fmq/fmq/internal/frontmatter"
	"github.com/fmq/fmq/internal/log"
)

// ignoreFiles are the pattern files honored at the vault root, in
// gitignore syntax.
var ignoreFiles = []string{".gitignore", ".fmqignore"}

// Document is one markdown file with its decoded frontmatter.
type Document struct {
	Path        string // absolute path
	Rel         string // path relative to the vault root
	Frontmatter map[string]any
	ModTime     time.Time
}

// CollectMarkdownFiles walks the vault root and returns all *.md files,
// honoring .gitignore and .fmqignore at the root plus any extra patterns
// (gitignore syntax, typically from the config file). Hidden files are not
// skipped. Unreadable subtrees are logged and skipped, never fatal.
func CollectMarkdownFiles(root string, extraPatterns ...string) ([]string, error) {
	matchers := loadIgnoreMatchers(root, extraPatterns)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("skipping unreadable entry: path=%s err=%v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" || matchesAny(matchers, rel+"/") || matchesAny(matchers, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".md" {
			return nil
		}
		if matchesAny(matchers, rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("collected markdown files: root=%s count=%d", root, len(files))
	return files, nil
}

// ReadPathsFromStdin reads a newline-delimited path list, skipping blank
// lines. Used with --stdin to query a pre-selected file set.
func ReadPathsFromStdin(r io.Reader) []string {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

// LoadDocuments reads and decodes frontmatter for the given files
// concurrently. Files without a usable frontmatter block are dropped.
// Result order follows the input order regardless of scheduling. workers
// <= 0 means one worker per CPU.
func LoadDocuments(ctx context.Context, root string, paths []string, workers int) ([]Document, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	loaded := make([]*Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fm, ok := frontmatter.Load(path)
			if !ok {
				return nil
			}

			doc := Document{Path: path, Rel: path, Frontmatter: fm}
			if rel, err := filepath.Rel(root, path); err == nil {
				doc.Rel = rel
			}
			if info, err := os.Stat(path); err == nil {
				doc.ModTime = info.ModTime()
			}

			loaded[i] = &doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(paths))
	for _, doc := range loaded {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}

	log.Debugf("loaded documents: candidates=%d with_frontmatter=%d", len(paths), len(docs))
	return docs, nil
}

func loadIgnoreMatchers(root string, extraPatterns []string) []*gitignore.GitIgnore {
	var matchers []*gitignore.GitIgnore

	for _, name := range ignoreFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		m, err := gitignore.CompileIgnoreFile(path)
		if err != nil {
			log.Warnf("ignoring unreadable ignore file: path=%s err=%v", path, err)
			continue
		}
		matchers = append(matchers, m)
	}

	if len(extraPatterns) > 0 {
		matchers = append(matchers, gitignore.CompileIgnoreLines(extraPatterns...))
	}

	return matchers
}

func matchesAny(matchers []*gitignore.GitIgnore, rel string) bool {
	for _, m := range matchers {
		if m.MatchesPath(rel) {
			return true
		}
	}
	return false
}
