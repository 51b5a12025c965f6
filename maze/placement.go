package maze

import (
	"math"
	"math/rand"
)

// Position is a point in world space.
type Position struct {
	X, Y float64
}

// CellCenter returns the world position at the centre of cell p.
func CellCenter(p Point, tileSize float64) Position {
	return Position{
		X: float64(p.X)*tileSize + tileSize/2,
		Y: float64(p.Y)*tileSize + tileSize/2,
	}
}

// CellAt returns the cell containing world position pos. The result may lie
// outside the grid.
func CellAt(pos Position, tileSize float64) Point {
	return Point{
		X: int(math.Floor(pos.X / tileSize)),
		Y: int(math.Floor(pos.Y / tileSize)),
	}
}

// FindStartCell picks the hero's start cell. The first choice is an open
// cell, one whose whole 3x3 neighbourhood is path, scanning the interior
// minus a one-cell margin in row-major order. Failing that, the first
// interior path cell is used. ok is false when the grid has no path at all.
func FindStartCell(g *Grid) (cell Point, ok bool) {
	for y := 2; y < g.height-2; y++ {
		for x := 2; x < g.width-2; x++ {
			if g.Get(x, y) == Path && isOpen(g, x, y) {
				return Point{x, y}, true
			}
		}
	}

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.Get(x, y) == Path {
				return Point{x, y}, true
			}
		}
	}

	return Point{}, false
}

// FindStart returns the world position of FindStartCell, or the centre of
// the grid when no path cell exists.
func FindStart(g *Grid, tileSize float64) Position {
	if cell, ok := FindStartCell(g); ok {
		return CellCenter(cell, tileSize)
	}
	return Position{
		X: float64(g.width) * tileSize / 2,
		Y: float64(g.height) * tileSize / 2,
	}
}

func isOpen(g *Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.Get(x+dx, y+dy) != Path {
				return false
			}
		}
	}
	return true
}

// FindCollectibleCells returns min(n, path cells) distinct path cells chosen
// uniformly at random. Asking for more than the grid holds is not an error,
// the caller just gets fewer.
func FindCollectibleCells(g *Grid, n int, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}

	cells := g.PathCells()
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	if n > len(cells) {
		n = len(cells)
	}
	return cells[:n:n]
}

// FindCollectiblePositions is FindCollectibleCells in world coordinates.
func FindCollectiblePositions(g *Grid, n int, rng *rand.Rand, tileSize float64) []Position {
	cells := FindCollectibleCells(g, n, rng)
	out := make([]Position, len(cells))
	for i, c := range cells {
		out[i] = CellCenter(c, tileSize)
	}
	return out
}
