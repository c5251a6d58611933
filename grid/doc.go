// Package grid provides the 2-D coordinate helpers that search callers build
// their neighbour functions from.
//
// What:
//
//   - Position: integer (X, Y) with Add, Sub, Manhattan Distance, and 4- or
//     8-neighbor enumeration (Conn4 / Conn8).
//   - Map[V]: sparse grid keyed by Position, with Bounds, row-major Positions,
//     Find and Render.
//   - Parse: builds a Map from a character grid read line by line.
//   - Components: contiguous regions of "land" cells, computed with search.BFS.
//
// Why:
//
//   - Puzzle maps, game boards and floor plans arrive as text; Parse and
//     Position turn them into states and neighbour closures for package
//     search with a handful of lines.
//
// Neighbor enumeration drops coordinates with a negative component, so a grid
// parsed from text (anchored at (0,0)) never yields out-of-range neighbors on
// its top and left edges.
//
// Complexity:
//
//   - Parse, Bounds, Render: O(W×H).
//   - Components:            O(N×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: Render was called on an empty Map.
//   - ErrRead:      the reader passed to Parse failed.
package grid
