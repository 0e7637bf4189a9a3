package game

import "math"

// CellCode identifies the contents of one grid cell. The numeric values match
// the integer codes used in level layouts.
type CellCode uint8

const (
	CellEmpty      CellCode = iota // Open floor
	CellWall                       // Solid wall block
	CellSpawn                      // Player start (open floor)
	CellEnemySpawn                 // Enemy start (open floor)
	cellCodeCount                  // sentinel
)

func (c CellCode) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellSpawn:
		return "spawn"
	case CellEnemySpawn:
		return "enemy_spawn"
	default:
		return "unknown"
	}
}

// cellBlocksMovement returns true if the cell code is impassable.
func cellBlocksMovement(c CellCode) bool {
	return c == CellWall
}

// GridMap is the static occupancy grid the level is built from.
// Cell (col,row) is centred on world (col*TileSize, row*TileSize).
type GridMap struct {
	Cols     int
	Rows     int
	TileSize float64
	cells    []CellCode // row-major: index = row*Cols + col
}

// NewGridMap creates a grid of empty cells.
func NewGridMap(cols, rows int, tileSize float64) *GridMap {
	return &GridMap{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		cells:    make([]CellCode, cols*rows),
	}
}

// inBounds returns true if (col, row) is within the grid.
func (gm *GridMap) inBounds(col, row int) bool {
	return col >= 0 && col < gm.Cols && row >= 0 && row < gm.Rows
}

// CellAt returns the code at (col, row). Out of bounds reads as a wall.
func (gm *GridMap) CellAt(col, row int) CellCode {
	if !gm.inBounds(col, row) {
		return CellWall
	}
	return gm.cells[row*gm.Cols+col]
}

// setCell is only used while a level is being built.
func (gm *GridMap) setCell(col, row int, c CellCode) {
	if !gm.inBounds(col, row) {
		return
	}
	gm.cells[row*gm.Cols+col] = c
}

// CellIndex maps a world coordinate to the nearest cell.
func (gm *GridMap) CellIndex(x, z float64) (col, row int) {
	return int(math.Round(x / gm.TileSize)), int(math.Round(z / gm.TileSize))
}

// CellCenter returns the world coordinate of a cell's centre.
func (gm *GridMap) CellCenter(col, row int) (x, z float64) {
	return float64(col) * gm.TileSize, float64(row) * gm.TileSize
}

// IsSolid reports whether the world point (x,z) is inside a wall cell or
// outside the grid entirely.
func (gm *GridMap) IsSolid(x, z float64) bool {
	col, row := gm.CellIndex(x, z)
	if !gm.inBounds(col, row) {
		return true
	}
	return cellBlocksMovement(gm.cells[row*gm.Cols+col])
}

// Find returns every (col,row) holding code, in row-major order.
func (gm *GridMap) Find(code CellCode) [][2]int {
	var out [][2]int
	for row := 0; row < gm.Rows; row++ {
		for col := 0; col < gm.Cols; col++ {
			if gm.cells[row*gm.Cols+col] == code {
				out = append(out, [2]int{col, row})
			}
		}
	}
	return out
}

// Extent returns the world-space length of the grid's diagonal. Used as the
// maximum hitscan range.
func (gm *GridMap) Extent() float64 {
	return math.Hypot(float64(gm.Cols)*gm.TileSize, float64(gm.Rows)*gm.TileSize)
}

// slideMove moves a body from (x,z) by (dx,dz), testing each axis on its own
// so a body blocked on one axis can still slide along the other. The Z test
// uses the already-resolved X. blockedX/blockedZ report which axes were
// rejected.
func (gm *GridMap) slideMove(x, z, dx, dz float64) (nx, nz float64, blockedX, blockedZ bool) {
	nx, nz = x, z
	if gm.IsSolid(x+dx, z) {
		blockedX = true
	} else {
		nx = x + dx
	}
	if gm.IsSolid(nx, z+dz) {
		blockedZ = true
	} else {
		nz = z + dz
	}
	return nx, nz, blockedX, blockedZ
}
