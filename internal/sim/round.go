package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/obstacles"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/walk"
)

// RoundConfig holds the parameters for a single interactive round
type RoundConfig struct {
	Width           int
	Height          int
	ObstaclesOn     bool
	ObstacleDensity float64
	Rng             *rand.Rand
	Logger          zerolog.Logger
	Bus             events.Publisher // optional; nil disables event publishing
}

// Round is one interactive session of the two-agent walk: the grid, both
// agents, the turn counter and the terminal encounter flag. It replaces the
// scattered globals of earlier prototypes with one explicit piece of state.
type Round struct {
	id     string
	grid   *core.Grid
	a, b   core.Agent
	turns  int
	met    bool
	engine *walk.Engine
	logger zerolog.Logger
	bus    events.Publisher
}

// NewRound creates a fresh round. Agents start at opposite corners; when
// obstacles are enabled both start cells are force-unblocked by the
// generator.
func NewRound(cfg RoundConfig) (*Round, error) {
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	startA := core.NewCoordinate(0, 0)
	startB := core.NewCoordinate(cfg.Width-1, cfg.Height-1)

	var grid *core.Grid
	var err error
	if cfg.ObstaclesOn {
		density := cfg.ObstacleDensity
		if density == 0 {
			density = obstacles.DefaultDensity
		}
		gen := obstacles.NewGenerator(obstacles.Config{
			Width:   cfg.Width,
			Height:  cfg.Height,
			Density: density,
		}, cfg.Rng)
		grid, err = gen.Generate(startA, startB)
	} else {
		grid, err = core.NewGrid(cfg.Width, cfg.Height)
	}
	if err != nil {
		return nil, err
	}

	r := &Round{
		id:     uuid.NewString(),
		grid:   grid,
		a:      core.NewAgent(startA),
		b:      core.NewAgent(startB),
		engine: walk.NewEngine(cfg.Rng, cfg.Logger),
		logger: cfg.Logger.With().Str("component", "round").Logger(),
		bus:    cfg.Bus,
	}

	r.logger.Debug().
		Str("round_id", r.id).
		Int("width", grid.W).
		Int("height", grid.H).
		Int("obstacles", grid.BlockedCount()).
		Msg("Round started")

	if r.bus != nil {
		r.bus.Publish(events.NewRoundStartedEvent(r.id, grid.W, grid.H, grid.BlockedCount(), startA, startB))
	}

	return r, nil
}

// StepRandom advances both agents by one uniformly random legal step.
// Encounters are terminal: once the agents have met the round no longer
// advances.
func (r *Round) StepRandom() {
	if r.met {
		return
	}
	r.a, r.b, r.met = r.engine.AdvanceTurn(r.a, r.b, r.grid)
	r.turns++
	r.afterTurn()
}

// StepPlayer moves agent A one cell in the given direction while agent B
// takes a random step. An illegal player move leaves A in place; Prev is
// still rolled forward so crossing detection stays consistent.
func (r *Round) StepPlayer(dir core.Coordinate) {
	if r.met {
		return
	}

	target := r.a.Pos.Add(dir)
	if r.grid.InBounds(target) && !r.grid.IsBlocked(target) {
		r.a = r.a.MoveTo(target)
	} else {
		r.a = r.a.MoveTo(r.a.Pos)
	}

	r.b = r.b.MoveTo(r.engine.Step(r.b, r.grid))

	r.turns++
	r.met = walk.DetectEncounter(r.a, r.b)
	r.afterTurn()
}

func (r *Round) afterTurn() {
	if !r.met {
		return
	}
	crossing := !r.a.Pos.Equal(r.b.Pos)
	r.logger.Info().
		Str("round_id", r.id).
		Int("turn", r.turns).
		Bool("crossing", crossing).
		Msg("Encounter")
	if r.bus != nil {
		r.bus.Publish(events.NewEncounterDetectedEvent(r.id, r.turns, crossing, r.a.Pos, r.b.Pos))
	}
}

// Accessors
func (r *Round) ID() string         { return r.id }
func (r *Round) Grid() *core.Grid   { return r.grid }
func (r *Round) AgentA() core.Agent { return r.a }
func (r *Round) AgentB() core.Agent { return r.b }
func (r *Round) Turns() int         { return r.turns }
func (r *Round) Met() bool          { return r.met }
