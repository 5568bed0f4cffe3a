// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package values

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fmq/fmq/internal/vault"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// collectTestCase represents a single test case for TestCollect.
type collectTestCase struct {
	Name     string           `yaml:"name"`
	Docs     []map[string]any `yaml:"docs"`
	Property string           `yaml:"property"`
	Want     map[string]int   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func docsFrom(fms []map[string]any) []vault.Document {
	docs := make([]vault.Document, len(fms))
	for i, fm := range fms {
		docs[i] = vault.Document{Rel: "doc.md", Frontmatter: fm}
	}
	return docs
}

func TestCollect(t *testing.T) {
	var tests []collectTestCase
	require.NoError(t, loadTestData("collect_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := Collect(docsFrom(tt.Docs), tt.Property)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestFormatSorted(t *testing.T) {
	counts := map[string]int{"beta": 1, "alpha": 2, "gamma": 1}

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, Format(counts, false))
}

func TestFormatWithCounts(t *testing.T) {
	counts := map[string]int{"beta": 1, "alpha": 2, "gamma": 1}

	// Count descending, then value ascending on ties.
	assert.Equal(t,
		[]string{"alpha: 2", "beta: 1", "gamma: 1"},
		Format(counts, true))
}

func TestFormatEmpty(t *testing.T) {
	assert.Empty(t, Format(map[string]int{}, false))
	assert.Empty(t, Format(map[string]int{}, true))
}
