package grid

import "fmt"

// Orthogonal and full neighbor offsets, in enumeration order.
var (
	offsets4 = [...]Position{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	offsets8 = [...]Position{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Manhattan distance between p and q.
func (p Position) Distance(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors4 returns the orthogonal neighbors of p. Coordinates with a
// negative component are dropped, so callers working on a grid anchored at
// (0,0) only need to check the far edges.
func (p Position) Neighbors4() []Position {
	return p.around(offsets4[:])
}

// Neighbors8 returns the orthogonal and diagonal neighbors of p, dropping
// coordinates with a negative component like Neighbors4.
func (p Position) Neighbors8() []Position {
	return p.around(offsets8[:])
}

// Neighbors dispatches to Neighbors4 or Neighbors8.
func (p Position) Neighbors(conn Connectivity) []Position {
	if conn == Conn8 {
		return p.Neighbors8()
	}
	return p.Neighbors4()
}

// String formats p as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Position) around(offsets []Position) []Position {
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		n := p.Add(d)
		if n.X >= 0 && n.Y >= 0 {
			out = append(out, n)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
