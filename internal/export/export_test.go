package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/course"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func generate(t *testing.T, position int) *course.MultiVehicleCourse {
	t.Helper()
	boundary, err := geom.NewPolygon(geom.Pt(0, 0), geom.Pt(120, 0), geom.Pt(120, 80), geom.Pt(0, 80))
	require.NoError(t, err)
	s, err := course.NewBuilder().
		SetVehicles(2).
		SetHeadlands(1).
		SetWorkingWidth(5).
		SetTurningRadius(5).
		SetPosition(position).
		Build()
	require.NoError(t, err)
	c, err := course.DefaultCollaborators(boundary, nil, s)
	require.NoError(t, err)
	m, err := course.New(testContext(), s, c)
	require.NoError(t, err)
	return m
}

func TestNewCourse(t *testing.T) {
	t.Parallel()
	m := generate(t, 1)

	c, err := NewCourse("north", m)
	require.NoError(t, err)

	assert.Equal(t, "north", c.Field)
	assert.Equal(t, 2, c.Vehicles)
	assert.Equal(t, 1, c.Position)
	assert.Equal(t, 2, c.HeadlandIndex)
	assert.Equal(t, 2, c.Headlands)
	assert.Equal(t, []int{2}, c.Rings)
	assert.True(t, c.HeadlandFirst)
	require.Len(t, c.Waypoints, m.Path().Len())
	assert.Equal(t, "headland", c.Waypoints[0].Section)
	assert.Equal(t, "center", c.Waypoints[len(c.Waypoints)-1].Section)
	assert.InDelta(t, m.Path().Length(), c.Length, 1e-3)
	assert.InDelta(t, c.Length, c.Waypoints[len(c.Waypoints)-1].Distance, 1e-2)
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()
	c, err := NewCourse("north", generate(t, -1))
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, Write(buf, FormatYAML, []Course{c}))

	assert.Contains(t, buf.String(), "courses:\n")
	assert.Contains(t, buf.String(), "rings: [1]")
	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Courses, 1)
	assert.Equal(t, c.Waypoints, doc.Courses[0].Waypoints)
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()
	c, err := NewCourse("north", generate(t, -1))
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, Write(buf, FormatJSON, []Course{c, c}))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Courses, 2)
	assert.NotContains(t, buf.String(), "detour", "false detour flags are omitted")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]Format{"yaml": FormatYAML, "YML": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Error(t, Write(io.Discard, Format("xml"), nil))
}
