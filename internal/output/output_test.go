// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"slice marshals as json", []any{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceToString(tt.value))
		})
	}

	assert.Equal(t, "-", InterfaceToString(nil, "-"))
	assert.Equal(t, "-", InterfaceToString("", "-"))
}

func TestSpitText(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]any{{"a.md"}, {"sub/b.md"}}

	require.NoError(t, Spit(&buf, "text", []string{"path"}, rows, false))
	assert.Equal(t, "a.md\nsub/b.md\n", buf.String())
}

func TestSpitTextMultiColumn(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]any{{"active", 2}, {"done", 1}}

	require.NoError(t, Spit(&buf, "text", []string{"value", "count"}, rows, false))
	assert.Equal(t, "active\t2\ndone\t1\n", buf.String())
}

func TestSpitJSON(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]any{{"a.md"}, {"b.md"}}

	require.NoError(t, Spit(&buf, "json", []string{"path"}, rows, false))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a.md", decoded[0]["path"])
}

func TestSpitYAML(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]any{{"active", 2}}

	require.NoError(t, Spit(&buf, "yaml", []string{"value", "count"}, rows, false))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "active", decoded[0]["value"])
	assert.Equal(t, 2, decoded[0]["count"])
}

func TestSpitTable(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]any{{"active", 2}, {"done", 1}}

	require.NoError(t, Spit(&buf, "table", []string{"value", "count"}, rows, false))

	out := buf.String()
	assert.Contains(t, out, "active")
	assert.Contains(t, out, "done")
}

func TestTableWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, []string{"path"}, nil, false)
	assert.Empty(t, buf.String())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "matched 3 of 10 documents", Summary(3, 10))
	assert.Equal(t, "matched 1,204 of 52,310 documents", Summary(1204, 52310))
}

func TestColoredNotATerminal(t *testing.T) {
	// Test stdout is never a terminal, so color must be suppressed even
	// when requested.
	assert.False(t, Colored(true))
	assert.False(t, Colored(false))
}
