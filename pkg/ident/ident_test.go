package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	re := regexp.MustCompile(`^asm_[0-9a-f]{12}$`)
	id := New(PrefixAssessment)
	require.Regexp(t, re, id)
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New(PrefixFinding)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "assessment id", id: "asm_a1b2c3d4e5f6", expected: "asm"},
		{name: "request id", id: "req_000000000000", expected: "req"},
		{name: "no underscore", id: "deadbeef", expected: ""},
		{name: "leading underscore", id: "_abc", expected: ""},
		{name: "empty", id: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Prefix(tt.id))
		})
	}
}
