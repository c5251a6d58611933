// Package grid defines the coordinate type, connectivity options, and
// sentinel errors for the grid subpackage of github.com/katalvlaran/lvlsearch.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates an operation needs at least one cell.
	ErrEmptyGrid = errors.New("grid: input must contain at least one cell")
	// ErrRead indicates the underlying reader failed while parsing.
	ErrRead = errors.New("grid: read failed")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, N, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8
)

// Position is an integer 2-D coordinate. X grows to the right, Y grows
// downwards (row index), matching the layout of parsed text.
type Position struct {
	X, Y int
}

// Map is a sparse grid: only cells present in the map exist.
type Map[V any] map[Position]V

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}
