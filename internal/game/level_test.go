package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	lvl := DefaultLevel()
	assert.Equal(t, "default", lvl.Name)
	assert.Equal(t, 10, lvl.Map.Cols)
	assert.Equal(t, 10, lvl.Map.Rows)
	assert.Equal(t, 5.0, lvl.Map.TileSize)

	assert.Equal(t, 20.0, lvl.SpawnX)
	assert.Equal(t, 20.0, lvl.SpawnZ)
	assert.Equal(t, [][2]float64{{40, 5}, {40, 35}, {10, 40}}, lvl.EnemySpawns)

	// Border ring is solid.
	for i := 0; i < 10; i++ {
		assert.Equal(t, CellWall, lvl.Map.CellAt(i, 0))
		assert.Equal(t, CellWall, lvl.Map.CellAt(i, 9))
		assert.Equal(t, CellWall, lvl.Map.CellAt(0, i))
		assert.Equal(t, CellWall, lvl.Map.CellAt(9, i))
	}
	assert.False(t, lvl.Map.IsSolid(lvl.SpawnX, lvl.SpawnZ))
}

func TestBuiltinLevels(t *testing.T) {
	names := BuiltinLevelNames()
	assert.Equal(t, []string{"corridor", "default"}, names)
	for _, n := range names {
		lvl, err := BuiltinLevel(n)
		require.NoError(t, err, n)
		assert.NotEmpty(t, lvl.EnemySpawns, n)
		assert.Equal(t, n, lvl.Name, "a builtin is named after its key")

		data, err := builtinLevels.ReadFile("levels/" + n + ".yaml")
		require.NoError(t, err)
		parsed, err := ParseLevel(data)
		require.NoError(t, err)
		assert.Equal(t, n, parsed.Name, "name: in %s.yaml should match the file name", n)
	}

	_, err := BuiltinLevel("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corridor")
}

func TestParseLevel_Errors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"no spawn": {
			yaml: "width: 2\nheight: 1\ntile_size: 5\nlayout: [[0, 1]]\n",
			want: ErrNoSpawn,
		},
		"short row": {
			yaml: "width: 3\nheight: 1\ntile_size: 5\nlayout: [[2, 0]]\n",
			want: ErrBadLayout,
		},
		"row count": {
			yaml: "width: 1\nheight: 2\ntile_size: 5\nlayout: [[2]]\n",
			want: ErrBadLayout,
		},
		"unknown code": {
			yaml: "width: 2\nheight: 1\ntile_size: 5\nlayout: [[2, 7]]\n",
			want: ErrBadLayout,
		},
		"two spawns": {
			yaml: "width: 2\nheight: 1\ntile_size: 5\nlayout: [[2, 2]]\n",
			want: ErrBadLayout,
		},
		"zero tile": {
			yaml: "width: 1\nheight: 1\ntile_size: 0\nlayout: [[2]]\n",
			want: ErrBadLayout,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLevel([]byte(c.yaml))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseLevel_Malformed(t *testing.T) {
	_, err := ParseLevel([]byte("layout: {not: a list"))
	assert.Error(t, err)
}

func TestLoadLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tiny.yaml")
	data := []byte("name: tiny\nwidth: 3\nheight: 1\ntile_size: 2\nlayout: [[2, 0, 3]]\n")
	require.NoError(t, os.WriteFile(file, data, 0o644))

	lvl, err := LoadLevel(file)
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)
	assert.Equal(t, 0.0, lvl.SpawnX)
	assert.Equal(t, [][2]float64{{4, 0}}, lvl.EnemySpawns)
}

func TestLayoutFromRows(t *testing.T) {
	lvl, err := LayoutFromRows(5,
		"#####",
		"#P.E#",
		"#####",
	).Build()
	require.NoError(t, err)
	assert.Equal(t, 5, lvl.Map.Cols)
	assert.Equal(t, 3, lvl.Map.Rows)
	assert.Equal(t, 5.0, lvl.SpawnX)
	assert.Equal(t, 5.0, lvl.SpawnZ)
	assert.Equal(t, [][2]float64{{15, 5}}, lvl.EnemySpawns)

	_, err = LayoutFromRows(5, "#P?#").Build()
	assert.ErrorIs(t, err, ErrBadLayout)

	// Ragged rows are rejected rather than padded.
	_, err = LayoutFromRows(5, "#P#", "##").Build()
	assert.ErrorIs(t, err, ErrBadLayout)
}
