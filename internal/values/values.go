// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fmq/fmq/internal/driller"
	"github.com/fmq/fmq/internal/vault"
)

// Collect tallies the distinct values of one frontmatter property across
// all documents. A sequence-valued property contributes one tally per
// element; scalar properties contribute one. A dotted property name drills
// into nested mappings. Documents lacking the property, empty strings and
// non-scalar leaves are skipped.
func Collect(docs []vault.Document, property string) map[string]int {
	counts := make(map[string]int)

	for _, doc := range docs {
		value, ok := resolve(doc.Frontmatter, property)
		if !ok {
			continue
		}

		switch v := value.(type) {
		case []any:
			for _, item := range v {
				if s, ok := valueToString(item); ok {
					counts[s]++
				}
			}
		default:
			if s, ok := valueToString(v); ok {
				counts[s]++
			}
		}
	}

	return counts
}

// Entry is one distinct value with its occurrence count.
type Entry struct {
	Value string
	Count int
}

// Sorted orders a tally for presentation. byCount sorts count descending
// with value ascending on ties; otherwise entries sort by value
// ascending.
func Sorted(counts map[string]int, byCount bool) []Entry {
	entries := make([]Entry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, Entry{Value: v, Count: c})
	}

	if byCount {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Value < entries[j].Value
		})
		return entries
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})
	return entries
}

// Format renders a tally as text lines. Without counts, values sort
// ascending. With counts, entries sort by count descending, then value
// ascending, rendered as "value: N".
func Format(counts map[string]int, showCount bool) []string {
	entries := Sorted(counts, showCount)
	lines := make([]string, len(entries))
	for i, e := range entries {
		if showCount {
			lines[i] = fmt.Sprintf("%s: %d", e.Value, e.Count)
		} else {
			lines[i] = e.Value
		}
	}
	return lines
}

// resolve fetches a property from the frontmatter. Plain names are
// top-level (exact-key) lookups, matching query-side behavior for the
// common case; dotted names are handed to the driller.
func resolve(fm map[string]any, property string) (any, bool) {
	if fm == nil {
		return nil, false
	}

	if !strings.Contains(property, ".") {
		v, ok := fm[property]
		return v, ok
	}

	result := driller.Drill(fm, property)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

func valueToString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02"), true
		}
		return v.Format(time.RFC3339), true
	default:
		return "", false
	}
}
