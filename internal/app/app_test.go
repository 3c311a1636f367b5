package app_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/app"
	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/export"
	"github.com/specialistvlad/coursegridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const northField = `
field "north" {
  boundary = rect(0, 0, 200, 120)
  island "pond" {
    outline = rect(90, 55, 100, 70)
  }
}
`

const southField = `
field "south" {
  boundary = [[0, 0], [150, 0], [150, 90], [0, 90]]
}
`

func group(position int, headlandFirst bool) string {
	return fmt.Sprintf(`
vehicle_group {
  vehicles       = 3
  headlands      = 4
  working_width  = 6
  bypass_islands = true
  position       = %d
  headland_first = %t
}
`, position, headlandFirst)
}

func TestRun_SingleVehicleYAML(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"fields/north.hcl": northField,
		"group.hcl":        group(1, true),
	}, app.Config{})

	require.NoError(t, result.Err)
	doc := testutil.DecodeDocument(t, result.Output, export.FormatYAML)
	require.Len(t, doc.Courses, 1)
	c := doc.Courses[0]
	assert.Equal(t, "north", c.Field)
	assert.Equal(t, 1, c.Position)
	assert.Equal(t, 3, c.HeadlandIndex)
	assert.Equal(t, 6, c.Headlands)
	assert.Equal(t, []int{3, 6}, c.Rings)
	assert.Equal(t, []string{"headland", "center"}, testutil.Sections(c))
	assert.Contains(t, result.LogOutput, "requested=4")
	assert.Contains(t, result.LogOutput, "adjusted=6")
	assert.Contains(t, result.LogOutput, "(100.000000000000, 60.000000000000)", "field centroid")
	assert.Contains(t, result.LogOutput, "small=[pond]")
}

func TestRun_AllPositionsCenterFirstJSON(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"north.hcl": northField,
		"group.hcl": group(0, false),
	}, app.Config{All: true, Parallel: true, Format: export.FormatJSON})

	require.NoError(t, result.Err)
	doc := testutil.DecodeDocument(t, result.Output, export.FormatJSON)
	require.Len(t, doc.Courses, 3)
	for i, c := range doc.Courses {
		assert.Equal(t, i-1, c.Position)
		assert.Equal(t, i+1, c.HeadlandIndex)
		assert.Equal(t, []string{"center", "headland"}, testutil.Sections(c))
	}
	testutil.AssertEveryRingOnce(t, doc)
}

func TestRun_PositionOverrideAndFieldChoice(t *testing.T) {
	t.Parallel()
	pos := -1

	result := testutil.RunApp(t, map[string]string{
		"north.hcl": northField,
		"south.hcl": southField,
		"group.hcl": group(1, true),
	}, app.Config{Field: "south", Position: &pos})

	require.NoError(t, result.Err)
	doc := testutil.DecodeDocument(t, result.Output, export.FormatYAML)
	require.Len(t, doc.Courses, 1)
	assert.Equal(t, "south", doc.Courses[0].Field)
	assert.Equal(t, -1, doc.Courses[0].Position)
	assert.Equal(t, []int{1, 4}, doc.Courses[0].Rings)
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "course.yaml")

	result := testutil.RunApp(t, map[string]string{
		"north.hcl": northField,
		"group.hcl": group(0, true),
	}, app.Config{OutputPath: out})

	require.NoError(t, result.Err)
	assert.Empty(t, result.Output)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := testutil.DecodeDocument(t, string(data), export.FormatYAML)
	assert.Len(t, doc.Courses, 1)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		files map[string]string
		cfg   app.Config
		check func(t *testing.T, err error)
	}{
		{
			name:  "ambiguous field",
			files: map[string]string{"n.hcl": northField, "s.hcl": southField, "g.hcl": group(0, true)},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, config.ErrFieldNotFound) },
		},
		{
			name:  "no group",
			files: map[string]string{"n.hcl": northField},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, app.ErrNoGroup) },
		},
		{
			name:  "position outside the group",
			files: map[string]string{"n.hcl": northField, "g.hcl": group(0, true)},
			cfg:   app.Config{Position: intPtr(2)},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "position 2") },
		},
		{
			name:  "broken file",
			files: map[string]string{"n.hcl": `field "n" {`},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "application startup panicked") },
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunApp(t, tc.files, tc.cfg)

			require.Error(t, result.Err)
			tc.check(t, result.Err)
		})
	}
}

func intPtr(i int) *int { return &i }

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := app.NewConfig(app.Config{})
	assert.Error(t, err, "config path is required")

	_, err = app.NewConfig(app.Config{ConfigPath: "x", Format: "xml"})
	assert.Error(t, err)

	_, err = app.NewConfig(app.Config{ConfigPath: "x", All: true, Position: intPtr(0)})
	assert.Error(t, err)

	cfg, err := app.NewConfig(app.Config{ConfigPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, export.FormatYAML, cfg.Format)
}
