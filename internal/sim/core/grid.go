package core

import "fmt"

// Grid is the static playing field: dimensions plus a set of blocked cells.
// Blocked state is stored row-major, one flag per cell.
type Grid struct {
	W, H    int
	blocked []bool
}

// NewGrid creates an open grid with the given dimensions.
// Dimensions must be positive; invalid configuration is an error, never clamped.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	return &Grid{W: w, H: h, blocked: make([]bool, w*h)}, nil
}

// InBounds checks if a coordinate is within grid boundaries
func (g *Grid) InBounds(c Coordinate) bool {
	return c.IsValid(g.W, g.H)
}

// IsBlocked reports whether the cell holds an obstacle.
// Out-of-bounds cells count as blocked.
func (g *Grid) IsBlocked(c Coordinate) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.ToIndex(g.W)]
}

// Block marks a cell as an obstacle. Out-of-bounds cells are ignored.
func (g *Grid) Block(c Coordinate) {
	if g.InBounds(c) {
		g.blocked[c.ToIndex(g.W)] = true
	}
}

// Unblock clears the obstacle flag on a cell. Out-of-bounds cells are ignored.
func (g *Grid) Unblock(c Coordinate) {
	if g.InBounds(c) {
		g.blocked[c.ToIndex(g.W)] = false
	}
}

// BlockedCount returns the number of obstacle cells on the grid.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// LegalMoves returns the orthogonal neighbors of c that are in-bounds and
// unblocked. When a cell is fully surrounded the singleton [c] is returned:
// an agent with no option stays put rather than having no move at all.
func (g *Grid) LegalMoves(c Coordinate) []Coordinate {
	moves := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors() {
		if g.InBounds(n) && !g.IsBlocked(n) {
			moves = append(moves, n)
		}
	}
	if len(moves) == 0 {
		return []Coordinate{c}
	}
	return moves
}

// Open returns a fresh obstacle-free grid with the same dimensions.
func (g *Grid) Open() *Grid {
	return &Grid{W: g.W, H: g.H, blocked: make([]bool, g.W*g.H)}
}
