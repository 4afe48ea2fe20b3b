package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/walk"
)

// Stats aggregates the outcome of one Monte Carlo batch.
type Stats struct {
	RunID    string
	Trials   int
	Meetings int
	StepSum  int
}

// MeetRate returns the fraction of trials that met within the step cap.
func (s Stats) MeetRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Meetings) / float64(s.Trials)
}

// AvgSteps returns the mean steps-to-meet over the meeting trials.
// With no meetings the average is undefined and reported as +Inf.
func (s Stats) AvgSteps() float64 {
	if s.Meetings == 0 {
		return math.Inf(1)
	}
	return float64(s.StepSum) / float64(s.Meetings)
}

// Estimator runs repeated headless random-walk trials and reduces them into
// Stats. It keeps no state between calls to Run; given a seeded rng each
// batch is repeatable.
type Estimator struct {
	rng    *rand.Rand
	logger zerolog.Logger
	bus    events.Publisher // optional
}

// NewEstimator creates a Monte Carlo estimator. A nil rng falls back to a
// time-seeded source.
func NewEstimator(rng *rand.Rand, logger zerolog.Logger, bus events.Publisher) *Estimator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Estimator{
		rng:    rng,
		logger: logger.With().Str("component", "montecarlo").Logger(),
		bus:    bus,
	}
}

// Run executes trials independent rounds of up to maxSteps turns each on an
// open grid with g's dimensions. Obstacles are always disabled here: the
// statistics measure the open-field case no matter what the interactive
// obstacle toggle says. The context is checked between trials so an
// interactive host can cancel a batch cooperatively.
func (e *Estimator) Run(ctx context.Context, trials, maxSteps int, g *core.Grid) (Stats, error) {
	if trials <= 0 {
		return Stats{}, fmt.Errorf("trials %d: %w", trials, core.ErrInvalidTrials)
	}
	if maxSteps <= 0 {
		return Stats{}, fmt.Errorf("max steps %d: %w", maxSteps, core.ErrInvalidStepCap)
	}

	open := g.Open()
	startA := core.NewCoordinate(0, 0)
	startB := core.NewCoordinate(open.W-1, open.H-1)
	engine := walk.NewEngine(e.rng, e.logger)

	stats := Stats{
		RunID:  uuid.NewString(),
		Trials: trials,
	}
	began := time.Now()

	for trial := 0; trial < trials; trial++ {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}

		a := core.NewAgent(startA)
		b := core.NewAgent(startB)

		for step := 1; step <= maxSteps; step++ {
			var met bool
			a, b, met = engine.AdvanceTurn(a, b, open)
			if met {
				stats.Meetings++
				stats.StepSum += step
				break
			}
		}
	}

	elapsed := time.Since(began)
	e.logger.Info().
		Str("run_id", stats.RunID).
		Int("trials", stats.Trials).
		Int("meetings", stats.Meetings).
		Float64("meet_rate", stats.MeetRate()).
		Float64("avg_steps", stats.AvgSteps()).
		Dur("elapsed", elapsed).
		Msg("Monte Carlo batch complete")

	if e.bus != nil {
		e.bus.Publish(events.NewSimulationCompletedEvent(
			stats.RunID, stats.Trials, stats.Meetings, stats.MeetRate(), stats.AvgSteps(), elapsed))
	}

	return stats, nil
}
