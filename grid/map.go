package grid

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
)

// Bounds returns the smallest rectangle covering every cell of m as its
// top-left and bottom-right corners. ok is false for an empty map.
func (m Map[V]) Bounds() (lo, hi Position, ok bool) {
	if len(m) == 0 {
		return Position{}, Position{}, false
	}
	lo = Position{X: math.MaxInt, Y: math.MaxInt}
	hi = Position{X: math.MinInt, Y: math.MinInt}
	for p := range m {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, true
}

// Positions returns every cell of m in row-major order.
func (m Map[V]) Positions() []Position {
	out := make([]Position, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, rowMajor)
	return out
}

// Render writes m row by row over its bounding box, printing each value
// with %v (runes as characters) and fallback for missing cells. Returns ErrEmptyGrid for an empty map.
func (m Map[V]) Render(w io.Writer, fallback V) error {
	lo, hi, ok := m.Bounds()
	if !ok {
		return ErrEmptyGrid
	}
	bw := bufio.NewWriter(w)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			v, found := m[Position{X: x, Y: y}]
			if !found {
				v = fallback
			}
			// runes print as characters, not code points
			if r, isRune := any(v).(rune); isRune {
				bw.WriteRune(r)
			} else {
				fmt.Fprint(bw, v)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Find returns the positions holding v, in row-major order.
func Find[V comparable](m Map[V], v V) []Position {
	var out []Position
	for p, got := range m {
		if got == v {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, rowMajor)
	return out
}

func rowMajor(a, b Position) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
