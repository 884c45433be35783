package world

import (
	"fmt"

	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/model"
)

// Zone is a rectangular tile grid centered on the world origin.
// Border tiles are walls; extra walls can be placed inside.
type Zone struct {
	columns  int
	rows     int
	tileSize float64
	walls    [][]bool // [column][row]
}

// NewZone creates a zone enclosed by walls.
func NewZone(columns, rows int, tileSize float64) (*Zone, error) {
	if columns < 3 || rows < 3 {
		return nil, fmt.Errorf("zone too small: %dx%d", columns, rows)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %v", tileSize)
	}

	walls := make([][]bool, columns)
	for x := range columns {
		walls[x] = make([]bool, rows)
		for y := range rows {
			if x == 0 || x == columns-1 || y == 0 || y == rows-1 {
				walls[x][y] = true
			}
		}
	}
	return &Zone{columns: columns, rows: rows, tileSize: tileSize, walls: walls}, nil
}

// Columns returns the number of tile columns.
func (z *Zone) Columns() int { return z.columns }

// Rows returns the number of tile rows.
func (z *Zone) Rows() int { return z.rows }

// TileSize returns the tile edge length.
func (z *Zone) TileSize() float64 { return z.tileSize }

// SetWall places a wall at tile (x, y).
func (z *Zone) SetWall(x, y int) error {
	if !z.valid(x, y) {
		return fmt.Errorf("tile (%d, %d) outside %dx%d zone", x, y, z.columns, z.rows)
	}
	z.walls[x][y] = true
	return nil
}

// IsWall reports whether tile (x, y) is obstructed.
// Out-of-bounds tiles count as walls.
func (z *Zone) IsWall(x, y int) bool {
	if !z.valid(x, y) {
		return true
	}
	return z.walls[x][y]
}

// TilePosition returns the world position of the center of tile (x, y).
func (z *Zone) TilePosition(x, y int) model.Location {
	return z.origin().Add(model.NewLocation(float64(x)*z.tileSize, float64(y)*z.tileSize))
}

// Obstacles returns the wall tiles as a line-of-sight obstacle set.
func (z *Zone) Obstacles() *geo.Obstacles {
	var positions []model.Location
	for x := range z.columns {
		for y := range z.rows {
			if z.walls[x][y] {
				positions = append(positions, z.TilePosition(x, y))
			}
		}
	}
	return geo.NewObstacles(z.tileSize, positions...)
}

func (z *Zone) valid(x, y int) bool {
	return x >= 0 && x < z.columns && y >= 0 && y < z.rows
}

// origin is the center of tile (0, 0) so that the grid is centered on (0, 0).
func (z *Zone) origin() model.Location {
	w := float64(z.columns) * z.tileSize
	h := float64(z.rows) * z.tileSize
	return model.NewLocation((w-z.tileSize)/-2, (h-z.tileSize)/-2)
}
