// Package maze holds the wall/path grid, the carving generator and the
// placement helpers that pick start and coin cells from a carved grid.
// It does not import any engine package.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

func (c Cell) String() string {
	if c == Path {
		return "path"
	}
	return "wall"
}

// MinSize is the smallest width or height that leaves a carvable interior.
const MinSize = 3

// ErrGridTooSmall is returned when a grid cannot hold a border and an interior.
var ErrGridTooSmall = errors.New("grid too small to carve")

// Point addresses a cell by column and row.
type Point struct {
	X, Y int
}

// Grid is a fixed-size rectangle of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a width x height grid with every cell set to Wall.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrGridTooSmall)
	}
	// Wall is the zero value, so a fresh slice is already all walls.
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Interior reports whether (x, y) lies strictly inside the border.
func (g *Grid) Interior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

// Get returns the cell at (x, y). It panics outside the grid.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set stores c at (x, y). It panics outside the grid.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// IsPath is shorthand for an in-bounds Path check; out-of-bounds reads as Wall.
func (g *Grid) IsPath(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] == Path
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// PathCells returns every Path cell in row-major order.
func (g *Grid) PathCells() []Point {
	cells := make([]Point, 0, g.Count(Path))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Path {
				cells = append(cells, Point{x, y})
			}
		}
	}
	return cells
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for paths, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Path {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
