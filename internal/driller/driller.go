// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

// Drill navigates a frontmatter mapping using a flexible dot path
// supporting array indexes, e.g. "author.name" or "links[0].target". The
// mapping is rendered to JSON once and navigated with gjson. A missing or
// invalid path yields an empty Result.
func Drill(frontmatter map[string]any, path string) gjson.Result {
	raw, err := json.Marshal(normalizeTree(frontmatter))
	if err != nil {
		return gjson.Result{}
	}
	return drillJSON(string(raw), path)
}

func drillJSON(jsonData string, path string) gjson.Result {
	parts := strings.Split(path, ".")
	current := gjson.Parse(jsonData)

	for _, p := range parts {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [], which we can throw away.

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 && matches[2] != "" {
					val = arr[0]
				}
				// Otherwise keep the whole list.
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// normalizeTree rewrites a decoded YAML tree into a JSON-friendly shape:
// map keys become strings and yaml timestamps become their YYYY-MM-DD
// spelling instead of the RFC3339 form json.Marshal would emit.
func normalizeTree(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalizeTree(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeTree(item)
		}
		return out
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	default:
		return v
	}
}
