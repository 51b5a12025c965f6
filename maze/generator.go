package maze

import "math/rand"

// carveOffsets are the N/E/S/W steps between rooms. Rooms sit two cells apart,
// the cell in between is the wall that gets knocked out.
var carveOffsets = [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// DefaultStart is the room carving begins from.
var DefaultStart = Point{1, 1}

// Generate builds a fresh width x height maze carved from DefaultStart.
// The start cell and the cell diagonally inside the opposite corner are
// always left open.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	Carve(g, DefaultStart, rng)

	forceOpen(g, DefaultStart)
	forceOpen(g, Point{width - 2, height - 2})

	return g, nil
}

type carveFrame struct {
	at   Point
	dirs [4]Point
	next int
}

func newCarveFrame(at Point, rng *rand.Rand) carveFrame {
	f := carveFrame{at: at, dirs: carveOffsets}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// Carve runs randomized depth-first backtracking from start, turning walls
// into paths two cells at a time. The walk uses an explicit stack but visits
// rooms in the same order as the recursive formulation: each room shuffles
// its four directions once, on entry, and tries them in that order.
func Carve(g *Grid, start Point, rng *rand.Rand) {
	g.Set(start.X, start.Y, Path)

	stack := make([]carveFrame, 0, g.width*g.height/4+1)
	stack = append(stack, newCarveFrame(start, rng))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		if !g.Interior(nx, ny) || g.Get(nx, ny) != Wall {
			continue
		}

		g.Set(top.at.X+d.X/2, top.at.Y+d.Y/2, Path)
		g.Set(nx, ny, Path)
		stack = append(stack, newCarveFrame(Point{nx, ny}, rng))
	}
}

var orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// forceOpen sets p to Path. When p has no open neighbour (even grid
// dimensions put it off the room lattice) the neighbour that touches an
// existing path is opened too, so p stays reachable.
func forceOpen(g *Grid, p Point) {
	if !g.Interior(p.X, p.Y) {
		return
	}
	g.Set(p.X, p.Y, Path)

	for _, d := range orthogonal {
		if g.IsPath(p.X+d.X, p.Y+d.Y) {
			return
		}
	}

	for _, d := range orthogonal {
		n := Point{p.X + d.X, p.Y + d.Y}
		if !g.Interior(n.X, n.Y) {
			continue
		}
		for _, d2 := range orthogonal {
			m := Point{n.X + d2.X, n.Y + d2.Y}
			if m == p {
				continue
			}
			if g.IsPath(m.X, m.Y) {
				g.Set(n.X, n.Y, Path)
				return
			}
		}
	}
}
