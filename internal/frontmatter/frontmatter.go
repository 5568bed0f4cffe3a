// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fmq/fmq/internal/log"
)

const delimiter = "---"

// Load reads a markdown file and extracts its frontmatter mapping. The
// second return is false when the file cannot be read or carries no usable
// frontmatter; that is not an error condition, the document is simply
// skipped by callers.
func Load(path string) (map[string]any, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("skipping unreadable file: path=%s err=%v", path, err)
		return nil, false
	}
	return Extract(string(content))
}

// Extract parses the frontmatter block out of raw document content. The
// document must open with a "---" line (leading whitespace tolerated); the
// block runs to the next line starting with "---". The block is decoded as
// a YAML mapping. Anything else - no delimiter, unterminated block,
// invalid YAML, non-mapping YAML - yields (nil, false).
func Extract(content string) (map[string]any, bool) {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if !strings.HasPrefix(trimmed, delimiter) {
		return nil, false
	}

	after := trimmed[len(delimiter):]
	end := strings.Index(after, "\n"+delimiter)
	if end < 0 {
		return nil, false
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(after[:end]), &fm); err != nil {
		return nil, false
	}
	if fm == nil {
		return nil, false
	}

	return fm, true
}
