package course

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuilder() *Builder {
	return NewBuilder().
		SetVehicles(3).
		SetHeadlands(4).
		SetWorkingWidth(6).
		SetPosition(1).
		SetTurningRadius(5).
		SetStartLocation(geom.Pt(1, 2))
}

func TestBuilder_Build(t *testing.T) {
	s, err := validBuilder().SetBypassIslands(true).SetHeadlandFirst(false).Build()
	require.NoError(t, err)

	assert.Equal(t, 3, s.Vehicles)
	assert.Equal(t, 4, s.Headlands, "Build does not normalize the headland count")
	assert.True(t, s.BypassIslands)
	assert.False(t, s.HeadlandFirst)
	assert.Equal(t, geom.Pt(1, 2), s.StartLocation)
	assert.InDelta(t, 18, s.RowSpacing(), 1e-9)
	assert.InDelta(t, 18, s.RowWidth(), 1e-9)
	assert.InDelta(t, 6, s.HeadlandWidth(), 1e-9)
	assert.Equal(t, 3, s.HeadlandIndex())
}

func TestBuilder_DerivedWidthsFollowSetters(t *testing.T) {
	b := validBuilder()
	s, err := b.Build()
	require.NoError(t, err)

	s2, err := b.SetVehicles(4).SetPosition(2).SetWorkingWidth(5).Build()
	require.NoError(t, err)

	assert.InDelta(t, 18, s.RowWidth(), 1e-9, "earlier snapshot is unaffected")
	assert.InDelta(t, 20, s2.RowWidth(), 1e-9)
	assert.InDelta(t, 5, s2.HeadlandWidth(), 1e-9)
}

func TestBuilder_Defaults(t *testing.T) {
	s, err := NewBuilder().SetWorkingWidth(3).SetTurningRadius(3).Build()
	require.NoError(t, err)

	assert.Equal(t, 1, s.Vehicles)
	assert.True(t, s.HeadlandFirst)
	assert.Zero(t, s.Position)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder)
		field string
	}{
		{name: "no vehicles", build: func(b *Builder) { b.SetVehicles(0) }, field: "vehicles"},
		{name: "negative headlands", build: func(b *Builder) { b.SetHeadlands(-1) }, field: "headlands"},
		{name: "zero width", build: func(b *Builder) { b.SetWorkingWidth(0) }, field: "working_width"},
		{name: "zero turning radius", build: func(b *Builder) { b.SetTurningRadius(0) }, field: "turning_radius"},
		{name: "negative island size", build: func(b *Builder) { b.SetBigIslandSize(-1) }, field: "big_island_size"},
		{name: "position out of range", build: func(b *Builder) { b.SetPosition(2) }, field: "position"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := validBuilder()
			tc.build(b)

			_, err := b.Build()

			require.ErrorIs(t, err, ErrInvalidConfig)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestSettings_LogValue(t *testing.T) {
	s, err := validBuilder().Build()
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	slog.New(slog.NewTextHandler(buf, nil)).Info("settings", "settings", s)

	assert.Contains(t, buf.String(), "settings.vehicles=3")
	assert.Contains(t, buf.String(), "settings.position=1")
}
