package walk

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
)

// Engine advances agents by uniformly random legal steps. It holds no round
// state of its own; agents and grids are threaded through each call.
type Engine struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewEngine creates a random-walk engine. A nil rng falls back to a
// time-seeded source.
func NewEngine(rng *rand.Rand, logger zerolog.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng, logger: logger}
}

// Step uniformly selects one of the legal moves from the agent's current
// cell. The self-loop fallback in LegalMoves means there is always at least
// one option.
func (e *Engine) Step(a core.Agent, g *core.Grid) core.Coordinate {
	moves := g.LegalMoves(a.Pos)
	return moves[e.rng.Intn(len(moves))]
}

// AdvanceTurn moves both agents one random step and reports whether they
// encountered each other. Both draws are taken from the pre-turn state, so
// the updates are simultaneous: b's move never sees a's new position.
// Selections are statistically independent; there is no coordination.
func (e *Engine) AdvanceTurn(a, b core.Agent, g *core.Grid) (core.Agent, core.Agent, bool) {
	nextA := e.Step(a, g)
	nextB := e.Step(b, g)

	a = a.MoveTo(nextA)
	b = b.MoveTo(nextB)

	met := DetectEncounter(a, b)
	if met {
		e.logger.Debug().
			Stringer("a", a.Pos).
			Stringer("b", b.Pos).
			Msg("Agents encountered each other")
	}
	return a, b, met
}

// DetectEncounter reports whether the two agents met on the same cell or
// crossed paths (swapped cells in a single turn). Symmetric in its arguments.
func DetectEncounter(a, b core.Agent) bool {
	if a.Pos.Equal(b.Pos) {
		return true
	}
	return a.Pos.Equal(b.Prev) && b.Pos.Equal(a.Prev)
}
