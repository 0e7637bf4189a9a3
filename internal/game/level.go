package game

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var builtinLevels embed.FS

var (
	// ErrNoSpawn is returned when a layout has no player start cell.
	ErrNoSpawn = errors.New("level has no player spawn")
	// ErrBadLayout is returned when the layout does not match the declared size
	// or contains unknown cell codes.
	ErrBadLayout = errors.New("bad level layout")
)

// LevelDef is the on-disk description of a level.
type LevelDef struct {
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
	Layout   [][]int `yaml:"layout"` // [row][col] cell codes
}

// Level is a validated, ready-to-play level: the occupancy grid plus the
// spawn points found in it.
type Level struct {
	Name        string
	Map         *GridMap
	SpawnX      float64
	SpawnZ      float64
	EnemySpawns [][2]float64 // world coordinates, row-major order
}

// Build validates the definition and constructs the level.
func (d LevelDef) Build() (*Level, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrBadLayout, d.Width, d.Height)
	}
	if d.TileSize <= 0 {
		return nil, fmt.Errorf("%w: invalid tile size %v", ErrBadLayout, d.TileSize)
	}
	if len(d.Layout) != d.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadLayout, len(d.Layout), d.Height)
	}

	gm := NewGridMap(d.Width, d.Height, d.TileSize)
	for row, cells := range d.Layout {
		if len(cells) != d.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, row, len(cells), d.Width)
		}
		for col, code := range cells {
			if code < 0 || code >= int(cellCodeCount) {
				return nil, fmt.Errorf("%w: unknown cell code %d at (%d,%d)", ErrBadLayout, code, col, row)
			}
			gm.setCell(col, row, CellCode(code))
		}
	}

	spawns := gm.Find(CellSpawn)
	switch {
	case len(spawns) == 0:
		return nil, ErrNoSpawn
	case len(spawns) > 1:
		return nil, fmt.Errorf("%w: %d player spawns, want 1", ErrBadLayout, len(spawns))
	}

	lvl := &Level{Name: d.Name, Map: gm}
	lvl.SpawnX, lvl.SpawnZ = gm.CellCenter(spawns[0][0], spawns[0][1])
	for _, c := range gm.Find(CellEnemySpawn) {
		x, z := gm.CellCenter(c[0], c[1])
		lvl.EnemySpawns = append(lvl.EnemySpawns, [2]float64{x, z})
	}
	return lvl, nil
}

// ParseLevel decodes and builds a YAML level definition.
func ParseLevel(data []byte) (*Level, error) {
	var def LevelDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	return def.Build()
}

// LoadLevel reads a level from a YAML file.
func LoadLevel(file string) (*Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", file, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level file %s: %w", file, err)
	}
	return lvl, nil
}

// BuiltinLevel loads one of the levels shipped with the binary by name. The
// level is named after its key so reports and replays agree.
func BuiltinLevel(name string) (*Level, error) {
	data, err := builtinLevels.ReadFile(path.Join("levels", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown builtin level %q (have: %s)", name, strings.Join(BuiltinLevelNames(), ", "))
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("builtin level %q: %w", name, err)
	}
	lvl.Name = name
	return lvl, nil
}

// BuiltinLevelNames lists the shipped levels, sorted.
func BuiltinLevelNames() []string {
	entries, err := builtinLevels.ReadDir("levels")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// DefaultLevel returns the original demo map.
func DefaultLevel() *Level {
	lvl, err := BuiltinLevel("default")
	if err != nil {
		// The embedded file is part of the build; failing here is a packaging bug.
		panic(err)
	}
	return lvl
}

// LayoutFromRows builds a definition from ASCII rows, used by tests and the
// headless tool: '#' wall, '.' floor, 'P' player start, 'E' enemy.
func LayoutFromRows(tileSize float64, rows ...string) LevelDef {
	def := LevelDef{Name: "ascii", Height: len(rows), TileSize: tileSize}
	for _, r := range rows {
		if len(r) > def.Width {
			def.Width = len(r)
		}
	}
	for _, r := range rows {
		cells := make([]int, 0, len(r))
		for _, ch := range r {
			switch ch {
			case '#':
				cells = append(cells, int(CellWall))
			case 'P':
				cells = append(cells, int(CellSpawn))
			case 'E':
				cells = append(cells, int(CellEnemySpawn))
			case '.':
				cells = append(cells, int(CellEmpty))
			default:
				cells = append(cells, -1)
			}
		}
		def.Layout = append(def.Layout, cells)
	}
	return def
}
