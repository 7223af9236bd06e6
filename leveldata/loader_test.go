package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/shapeshift/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestLoad(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "levels/a_first.tmx")
	require.NoError(t, err)

	assert.Equal(t, "a_first", level.Name)
	assert.Equal(t, 1200, level.Width)
	assert.Equal(t, 700, level.Height)
	assert.Equal(t, math.Vec2{X: 150, Y: 550}, level.Spawn)

	require.Len(t, level.Blocks, 2)
	assert.Equal(t, Block{X: 0, Y: 600, W: 1200, H: 100}, level.Blocks[0])
	assert.Equal(t, 120.0, level.Blocks[1].Travel)

	require.Len(t, level.Transformers, 2)
	grow := level.Transformers[0]
	assert.Equal(t, shape.AddRight, grow.Kind)
	assert.Equal(t, 35.0, grow.Radius)
	assert.Equal(t, math.Vec2{X: 400, Y: 500}, grow.Position)
	assert.Equal(t, math.Vec2{X: 4, Y: -6}, grow.Spit)

	turn := level.Transformers[1]
	assert.Equal(t, shape.RotateClockwise, turn.Kind)
	assert.Equal(t, DefaultRadius, turn.Radius)
	assert.Equal(t, math.Vec2{}, turn.Spit)

	require.Len(t, level.Caves, 1)
	assert.Equal(t, math.Vec2{X: 1000, Y: 550}, level.Caves[0].Position)
	assert.True(t, level.Caves[0].Target.Equals(shape.New(shape.Cell{X: 0, Y: 0}, shape.Cell{X: 1, Y: 0})))
}

func TestZonesKeepMapOrder(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "levels/a_first.tmx")
	require.NoError(t, err)

	zones := level.Zones()
	require.Len(t, zones, 2)
	assert.Equal(t, shape.AddRight, zones[0].Kind)
	assert.Equal(t, shape.RotateClockwise, zones[1].Kind)
	assert.Equal(t, level.Transformers[0].Spit, zones[0].Spit)
}

func TestLoadAllSortsByName(t *testing.T) {
	levels, err := LoadAll(os.DirFS("testdata"), "levels")
	require.NoError(t, err)

	require.Len(t, levels, 2)
	assert.Equal(t, "a_first", levels[0].Name)
	assert.Equal(t, "b_second", levels[1].Name)
	assert.Empty(t, levels[1].Transformers)
}

func TestLoadErrors(t *testing.T) {
	fsys := os.DirFS("testdata")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"unknown kind", "broken/bad_kind.tmx", "mirror"},
		{"missing spawn", "broken/no_spawn.tmx", "PlayerSpawn"},
		{"bad cells", "broken/bad_cells.tmx", "cave"},
		{"missing file", "broken/nope.tmx", "nope.tmx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fsys, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, err := LoadAll(os.DirFS("testdata"), "nowhere")
	assert.Error(t, err)
}

// Every shipped level must be finishable by passing its zones in map order.
func TestShippedLevelsReachTheirCave(t *testing.T) {
	levels, err := LoadAll(os.DirFS("../assets"), "levels")
	require.NoError(t, err)
	require.NotEmpty(t, levels)

	for _, level := range levels {
		t.Run(level.Name, func(t *testing.T) {
			body := shape.Unit()
			for _, z := range level.Zones() {
				assert.Greater(t, z.Spit.X, 0.0, "zone %v must throw the body forward", z.Kind)
				body = shape.Apply(z.Kind, body)
			}

			require.Len(t, level.Caves, 1)
			assert.True(t, body.Equals(level.Caves[0].Target), "body %s, cave %s", body, level.Caves[0].Target)
		})
	}
}
