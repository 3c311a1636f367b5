// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/export"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// DecodeDocument parses exported courses in either format.
func DecodeDocument(t *testing.T, out string, format export.Format) export.Document {
	t.Helper()
	var doc export.Document
	switch format {
	case export.FormatJSON:
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
	default:
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	}
	return doc
}

// Sections returns the distinct sections of c in driving order, with runs of
// the same section collapsed.
func Sections(c export.Course) []string {
	var out []string
	for _, wp := range c.Waypoints {
		if len(out) == 0 || out[len(out)-1] != wp.Section {
			out = append(out, wp.Section)
		}
	}
	return out
}

// AssertEveryRingOnce checks that the courses of a whole group drive every
// headland ring exactly once between them.
func AssertEveryRingOnce(t *testing.T, doc export.Document) {
	t.Helper()
	require.NotEmpty(t, doc.Courses)
	seen := make(map[int]int)
	for _, c := range doc.Courses {
		for _, r := range c.Rings {
			seen[r]++
		}
	}
	total := doc.Courses[0].Headlands
	require.Len(t, seen, total, "rings driven: %v", seen)
	for r := 1; r <= total; r++ {
		require.Equal(t, 1, seen[r], "ring %d", r)
	}
}
