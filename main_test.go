// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no version flag",
			args:     []string{"fmq", "query", "status = true"},
			expected: false,
		},
		{
			name:     "long flag",
			args:     []string{"fmq", "--version"},
			expected: true,
		},
		{
			name:     "short flag",
			args:     []string{"fmq", "-v"},
			expected: true,
		},
		{
			name:     "flag after command",
			args:     []string{"fmq", "query", "--version"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.expected {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command appends help",
			args:     []string{"fmq"},
			expected: []string{"fmq", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"fmq", "query", "status = true"},
			expected: []string{"fmq", "query", "status = true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestProcessSetOnly_NoSet(t *testing.T) {
	// Without an @set argument the args pass through untouched.
	args := []string{"fmq", "query", "status = true", "--output", "json"}
	result := processSetOnly(args)
	expected := []string{"fmq", "query", "status = true", "--output", "json"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestProcessSetOnly_UnknownSetRemoved(t *testing.T) {
	// An @set with no config entries is simply stripped.
	args := []string{"fmq", "query", "@nope", "status = true"}
	result := processSetOnly(args)
	expected := []string{"fmq", "query", "status = true"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}
