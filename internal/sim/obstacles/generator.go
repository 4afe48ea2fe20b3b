package obstacles

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
)

// DefaultDensity is the probability that any single cell is blocked.
const DefaultDensity = 0.12

// Config holds configuration for obstacle generation
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns a sensible default configuration for the given grid size
func DefaultConfig(w, h int) Config {
	return Config{
		Width:   w,
		Height:  h,
		Density: DefaultDensity,
	}
}

// Generator places obstacles with a deterministic RNG
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new obstacle generator
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate creates a grid where each cell is independently blocked with the
// configured density, then unconditionally unblocks the excluded cells
// (the agent start positions). This guarantees starts are never walled in at
// spawn; it deliberately does not prove the grid is connected.
func (g *Generator) Generate(excluded ...core.Coordinate) (*core.Grid, error) {
	if g.config.Density < 0 || g.config.Density >= 1 {
		return nil, fmt.Errorf("density %v: %w", g.config.Density, core.ErrInvalidDensity)
	}

	grid, err := core.NewGrid(g.config.Width, g.config.Height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if g.rng.Float64() < g.config.Density {
				grid.Block(core.NewCoordinate(x, y))
			}
		}
	}

	for _, c := range excluded {
		grid.Unblock(c)
	}

	return grid, nil
}
