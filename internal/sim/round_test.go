package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/testutil"
)

func newTestRound(t *testing.T, w, h int, obstaclesOn bool, seed int64) *Round {
	t.Helper()
	r, err := NewRound(RoundConfig{
		Width:       w,
		Height:      h,
		ObstaclesOn: obstaclesOn,
		Rng:         testutil.NewTestRNG(seed),
		Logger:      testutil.NopLogger(),
	})
	require.NoError(t, err)
	return r
}

func TestNewRound_AgentsAtOppositeCorners(t *testing.T) {
	r := newTestRound(t, 12, 12, false, 1)

	assert.Equal(t, core.NewCoordinate(0, 0), r.AgentA().Pos)
	assert.Equal(t, core.NewCoordinate(11, 11), r.AgentB().Pos)
	assert.Equal(t, 0, r.Turns())
	assert.False(t, r.Met())
	assert.NotEmpty(t, r.ID())
}

func TestNewRound_InvalidDimensions(t *testing.T) {
	_, err := NewRound(RoundConfig{
		Width:  0,
		Height: 12,
		Rng:    testutil.NewTestRNG(1),
		Logger: testutil.NopLogger(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestNewRound_ObstaclesSpareStarts(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		r, err := NewRound(RoundConfig{
			Width:           12,
			Height:          12,
			ObstaclesOn:     true,
			ObstacleDensity: 0.5,
			Rng:             testutil.NewTestRNG(seed),
			Logger:          testutil.NopLogger(),
		})
		require.NoError(t, err)
		assert.False(t, r.Grid().IsBlocked(r.AgentA().Pos))
		assert.False(t, r.Grid().IsBlocked(r.AgentB().Pos))
	}
}

func TestRound_StepRandomAdvancesTurns(t *testing.T) {
	r := newTestRound(t, 12, 12, false, 3)

	r.StepRandom()
	assert.Equal(t, 1, r.Turns())
	assert.True(t, r.Grid().InBounds(r.AgentA().Pos))
	assert.True(t, r.Grid().InBounds(r.AgentB().Pos))
}

func TestRound_EncounterIsTerminal(t *testing.T) {
	// On a 1x2 grid the only legal move for each agent is the other's cell,
	// so the first turn is always a swap (or meet) and the round ends.
	r := newTestRound(t, 2, 1, false, 4)

	r.StepRandom()
	assert.True(t, r.Met())
	assert.Equal(t, 1, r.Turns())

	a, b := r.AgentA(), r.AgentB()
	r.StepRandom()
	assert.Equal(t, 1, r.Turns(), "no further steps once met")
	assert.Equal(t, a, r.AgentA())
	assert.Equal(t, b, r.AgentB())
}

func TestRound_StepPlayer_LegalMove(t *testing.T) {
	r := newTestRound(t, 12, 12, false, 5)

	r.StepPlayer(core.DirectionVectors[core.East])
	assert.Equal(t, core.NewCoordinate(1, 0), r.AgentA().Pos)
	assert.Equal(t, core.NewCoordinate(0, 0), r.AgentA().Prev)
	assert.Equal(t, 1, r.Turns())
}

func TestRound_StepPlayer_IllegalMoveStays(t *testing.T) {
	r := newTestRound(t, 12, 12, false, 6)

	// North from (0,0) is out of bounds: the player stays put
	r.StepPlayer(core.DirectionVectors[core.North])
	assert.Equal(t, core.NewCoordinate(0, 0), r.AgentA().Pos)
	assert.Equal(t, core.NewCoordinate(0, 0), r.AgentA().Prev)
	assert.Equal(t, 1, r.Turns(), "an illegal move still consumes the turn")
}

func TestRound_PublishesEvents(t *testing.T) {
	bus := events.NewEventBus()

	var started, encounters int
	bus.SubscribeFunc(events.TypeRoundStarted, func(events.Event) { started++ })
	bus.SubscribeFunc(events.TypeEncounterDetected, func(events.Event) { encounters++ })

	r, err := NewRound(RoundConfig{
		Width:  2,
		Height: 1,
		Rng:    testutil.NewTestRNG(7),
		Logger: testutil.NopLogger(),
		Bus:    bus,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, started)

	r.StepRandom()
	require.True(t, r.Met())
	assert.Equal(t, 1, encounters)
}
