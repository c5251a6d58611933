package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Parse reads a character grid from r: line y, rune x becomes cell (x, y).
// conv maps each rune to a cell value; runes for which it reports false are
// left out of the map. Lines may be of any length. Trailing '\r' is stripped from every line.
//
// Complexity: O(W×H) time and memory.
func Parse[V any](r io.Reader, conv func(rune) (V, bool)) (Map[V], error) {
	m := make(Map[V])
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for y := 0; sc.Scan(); y++ {
		x := 0
		for _, c := range sc.Text() {
			if v, ok := conv(c); ok {
				m[Position{X: x, Y: y}] = v
			}
			x++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return m, nil
}

// Runes is a Parse converter keeping every rune as-is.
func Runes(c rune) (rune, bool) { return c, true }
