package system

import (
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/app"
	"github.com/specialistvlad/coursegridgo/internal/course"
	"github.com/specialistvlad/coursegridgo/internal/headland"
	"github.com/specialistvlad/coursegridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: invalid group settings fail the run without output
func TestRun_InvalidGroupFailsWithoutOutput(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
field "f" {
  boundary = rect(0, 0, 100, 100)
}

vehicle_group {
  vehicles      = 2
  working_width = 5
  position      = 0
}
`,
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{})

	// --- Assert ---
	require.ErrorIs(t, result.Err, course.ErrInvalidConfig)
	assert.Empty(t, result.Output)
}

// Test for: a field too small for its headlands fails the run
func TestRun_FieldTooSmallForHeadlands(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
field "tiny" {
  boundary = rect(0, 0, 20, 20)
}

vehicle_group {
  vehicles      = 2
  headlands     = 4
  working_width = 4
}
`,
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{All: true})

	// --- Assert ---
	require.ErrorIs(t, result.Err, headland.ErrFieldTooSmall)
	assert.Empty(t, result.Output)
}
