package course

import (
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/specialistvlad/coursegridgo/internal/island"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(t *testing.T, x0, y0, x1, y1 float64) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1))
	require.NoError(t, err)
	return p
}

func TestDefaultCollaborators_IslandRouter(t *testing.T) {
	boundary := rect(t, 0, 0, 200, 120)
	islands := []island.Island{{Name: "pond", Outline: rect(t, 90, 55, 100, 70)}}
	wide := func(b *Builder) { b.SetWorkingWidth(6) }

	c, err := DefaultCollaborators(boundary, nil, settings(t, 3, 4, 0, wide))
	require.NoError(t, err)
	assert.Nil(t, c.Islands, "no islands and no bypass")

	c, err = DefaultCollaborators(boundary, islands, settings(t, 3, 4, 0, wide))
	require.NoError(t, err)
	require.NotNil(t, c.Islands, "islands without bypass still get a router")

	c, err = DefaultCollaborators(boundary, islands, settings(t, 3, 4, 0, wide, func(b *Builder) { b.SetBypassIslands(true) }))
	require.NoError(t, err)
	require.NotNil(t, c.Islands)
	r := c.Islands.(*island.Router)
	assert.Equal(t, []string{"pond"}, r.Small(), "default big size is three widths")
	assert.Empty(t, r.Big())
}

func TestDefaultCollaborators_NarrowWidthMakesPondBig(t *testing.T) {
	boundary := rect(t, 0, 0, 200, 120)
	islands := []island.Island{{Name: "pond", Outline: rect(t, 90, 55, 100, 70)}}

	c, err := DefaultCollaborators(boundary, islands, settings(t, 3, 4, 0, func(b *Builder) { b.SetBypassIslands(true) }))
	require.NoError(t, err)

	assert.Equal(t, []string{"pond"}, c.Islands.(*island.Router).Big())
}

func TestNew_RealField(t *testing.T) {
	boundary := rect(t, 0, 0, 200, 120)
	islands := []island.Island{{Name: "pond", Outline: rect(t, 90, 55, 100, 70)}}

	for _, headlandFirst := range []bool{true, false} {
		for _, pos := range ValidPositions(3) {
			s, err := NewBuilder().
				SetVehicles(3).
				SetHeadlands(4).
				SetWorkingWidth(6).
				SetTurningRadius(6).
				SetPosition(pos).
				SetHeadlandFirst(headlandFirst).
				SetBypassIslands(true).
				Build()
			require.NoError(t, err)
			c, err := DefaultCollaborators(boundary, islands, s)
			require.NoError(t, err)

			m, err := New(testContext(), s, c)
			require.NoError(t, err, "position %d headland_first=%v", pos, headlandFirst)

			assert.Equal(t, 6, m.Settings().Headlands)
			rings, err := m.HeadlandRings(pos)
			require.NoError(t, err)
			idx := m.PositionToHeadlandIndex(pos)
			assert.Equal(t, []int{idx, idx + 3}, rings)

			p := m.Path()
			require.Greater(t, p.Len(), 0)
			if headlandFirst {
				assert.Equal(t, geom.SectionHeadland, p.Waypoints[0].Section)
				assert.Equal(t, geom.SectionCenter, p.Waypoints[p.Len()-1].Section)
			} else {
				assert.Equal(t, geom.SectionCenter, p.Waypoints[0].Section)
				assert.Equal(t, geom.SectionHeadland, p.Waypoints[p.Len()-1].Section)
			}

			var detoured bool
			for _, wp := range m.CenterPath().Waypoints {
				require.False(t, islands[0].Outline.Contains(wp.Point), "waypoint %v inside the island", wp.Point)
				detoured = detoured || wp.Detour
			}
			assert.True(t, detoured, "the center crosses the pond")
		}
	}
}
