package obstacles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(12, 12)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	assert.Equal(t, DefaultDensity, cfg.Density)
}

func TestGenerate_ZeroDensity(t *testing.T) {
	gen := NewGenerator(Config{Width: 10, Height: 10, Density: 0}, testutil.NewTestRNG(1))
	grid, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, 0, grid.BlockedCount())
}

func TestGenerate_StartsAlwaysUnblocked(t *testing.T) {
	// High density so collisions with the starts are all but certain
	startA := core.NewCoordinate(0, 0)
	startB := core.NewCoordinate(9, 9)

	for seed := int64(0); seed < 20; seed++ {
		gen := NewGenerator(Config{Width: 10, Height: 10, Density: 0.9}, testutil.NewTestRNG(seed))
		grid, err := gen.Generate(startA, startB)
		require.NoError(t, err)

		assert.False(t, grid.IsBlocked(startA), "seed %d blocked start A", seed)
		assert.False(t, grid.IsBlocked(startB), "seed %d blocked start B", seed)
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	cfg := Config{Width: 12, Height: 12, Density: 0.12}

	first, err := NewGenerator(cfg, testutil.NewTestRNG(42)).Generate()
	require.NoError(t, err)
	second, err := NewGenerator(cfg, testutil.NewTestRNG(42)).Generate()
	require.NoError(t, err)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := core.NewCoordinate(x, y)
			assert.Equal(t, first.IsBlocked(c), second.IsBlocked(c), "cell %v differs", c)
		}
	}
}

func TestGenerate_DensityRoughlyRespected(t *testing.T) {
	cfg := Config{Width: 50, Height: 50, Density: 0.12}
	grid, err := NewGenerator(cfg, testutil.NewTestRNG(7)).Generate()
	require.NoError(t, err)

	// 2500 cells at p=0.12: expect around 300 walls, allow a wide band
	count := grid.BlockedCount()
	assert.Greater(t, count, 200)
	assert.Less(t, count, 400)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"NegativeDensity", Config{Width: 5, Height: 5, Density: -0.1}, core.ErrInvalidDensity},
		{"DensityOne", Config{Width: 5, Height: 5, Density: 1.0}, core.ErrInvalidDensity},
		{"ZeroWidth", Config{Width: 0, Height: 5, Density: 0.1}, core.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.cfg, testutil.NewTestRNG(1)).Generate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
