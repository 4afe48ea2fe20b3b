package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(12, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, g.W)
	assert.Equal(t, 12, g.H)
	assert.Equal(t, 0, g.BlockedCount())
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"NegativeWidth", -1, 5},
		{"NegativeHeight", 5, -3},
		{"BothZero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.w, tt.h)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

func TestGrid_BlockUnblock(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	c := NewCoordinate(2, 3)
	assert.False(t, g.IsBlocked(c))

	g.Block(c)
	assert.True(t, g.IsBlocked(c))
	assert.Equal(t, 1, g.BlockedCount())

	g.Unblock(c)
	assert.False(t, g.IsBlocked(c))
	assert.Equal(t, 0, g.BlockedCount())
}

func TestGrid_IsBlocked_OutOfBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	assert.True(t, g.IsBlocked(NewCoordinate(-1, 0)))
	assert.True(t, g.IsBlocked(NewCoordinate(5, 0)))
	assert.True(t, g.IsBlocked(NewCoordinate(0, 5)))
}

func TestGrid_LegalMoves_AllCellsNonEmpty(t *testing.T) {
	// Every cell of every small grid must have at least one legal move,
	// and every returned move must be in-bounds and unblocked (or be the
	// cell itself under the stay-put fallback).
	for w := 1; w <= 4; w++ {
		for h := 1; h <= 4; h++ {
			g, err := NewGrid(w, h)
			require.NoError(t, err)

			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					c := NewCoordinate(x, y)
					moves := g.LegalMoves(c)
					require.NotEmpty(t, moves, "no moves for %v on %dx%d", c, w, h)
					for _, m := range moves {
						assert.True(t, g.InBounds(m))
						if !m.Equal(c) {
							assert.False(t, g.IsBlocked(m))
							assert.True(t, c.IsAdjacentTo(m))
						}
					}
				}
			}
		}
	}
}

func TestGrid_LegalMoves_Corner(t *testing.T) {
	g, err := NewGrid(12, 12)
	require.NoError(t, err)

	moves := g.LegalMoves(NewCoordinate(0, 0))
	assert.ElementsMatch(t, []Coordinate{{1, 0}, {0, 1}}, moves)
}

func TestGrid_LegalMoves_SurroundedFallsBackToSelf(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	start := NewCoordinate(2, 2)
	for _, n := range start.Neighbors() {
		g.Block(n)
	}

	moves := g.LegalMoves(start)
	assert.Equal(t, []Coordinate{start}, moves, "surrounded cell should self-loop")
}

func TestGrid_LegalMoves_SingleCellGrid(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)

	moves := g.LegalMoves(NewCoordinate(0, 0))
	assert.Equal(t, []Coordinate{{0, 0}}, moves)
}

func TestGrid_Open(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)
	g.Block(NewCoordinate(1, 1))
	g.Block(NewCoordinate(2, 3))

	open := g.Open()
	assert.Equal(t, g.W, open.W)
	assert.Equal(t, g.H, open.H)
	assert.Equal(t, 0, open.BlockedCount())
	// original is untouched
	assert.Equal(t, 2, g.BlockedCount())
}
