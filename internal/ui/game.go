package ui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/common"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/config"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/montecarlo"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/ui/input"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/ui/renderer"
)

// Mode selects who controls agent A
type Mode int

const (
	ModePlayerVsRandom Mode = iota
	ModeRandomVsRandom
)

func (m Mode) String() string {
	if m == ModePlayerVsRandom {
		return "Player vs Random"
	}
	return "Random vs Random"
}

// Game is the Ebitengine front-end: one Round of the simulation plus the
// presentation state (mode, auto-run, last Monte Carlo stats).
type Game struct {
	round     *sim.Round
	estimator *montecarlo.Estimator
	renderer  *renderer.BoardRenderer
	handler   *input.Handler
	font      font.Face

	mode        Mode
	autoRun     bool
	obstaclesOn bool
	stats       *montecarlo.Stats

	rng       *rand.Rand
	logger    zerolog.Logger
	bus       events.Publisher
	tickTimer int
}

// NewGame creates the visual client from the loaded configuration.
func NewGame(logger zerolog.Logger, bus events.Publisher) (*Game, error) {
	cfg := config.Get()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		estimator:   montecarlo.NewEstimator(rng, logger, bus),
		renderer:    renderer.NewBoardRenderer(cfg.UI.CellSize, cfg.UI.GridMargin),
		handler:     input.NewHandler(),
		font:        basicfont.Face7x13,
		mode:        ModePlayerVsRandom,
		obstaclesOn: cfg.Game.Obstacles.Enabled,
		rng:         rng,
		logger:      logger.With().Str("component", "ui").Logger(),
		bus:         bus,
	}

	if err := g.resetRound(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) resetRound() error {
	cfg := config.Get()
	round, err := sim.NewRound(sim.RoundConfig{
		Width:           cfg.Game.Grid.Width,
		Height:          cfg.Game.Grid.Height,
		ObstaclesOn:     g.obstaclesOn,
		ObstacleDensity: cfg.Game.Obstacles.Density,
		Rng:             g.rng,
		Logger:          g.logger,
		Bus:             g.bus,
	})
	if err != nil {
		return err
	}
	g.round = round
	g.autoRun = false
	g.stats = nil
	return nil
}

// Update proceeds the presentation state by one tick.
func (g *Game) Update() error {
	switch g.handler.Poll() {
	case input.CommandQuit:
		return ebiten.Termination
	case input.CommandToggleMode:
		if g.mode == ModePlayerVsRandom {
			g.mode = ModeRandomVsRandom
		} else {
			g.mode = ModePlayerVsRandom
		}
		return g.resetRound()
	case input.CommandReset:
		return g.resetRound()
	case input.CommandToggleObstacles:
		g.obstaclesOn = !g.obstaclesOn
		return g.resetRound()
	case input.CommandMonteCarlo:
		g.runMonteCarlo()
	case input.CommandStep:
		if g.mode == ModeRandomVsRandom {
			g.round.StepRandom()
		}
	case input.CommandToggleAutoRun:
		if g.mode == ModeRandomVsRandom {
			g.autoRun = !g.autoRun
		}
	}

	if g.mode == ModePlayerVsRandom {
		if dir, ok := g.handler.Direction(); ok {
			g.round.StepPlayer(dir)
		}
	}

	// Auto-run steps at a fraction of the tick rate so the walk stays visible
	if g.mode == ModeRandomVsRandom && g.autoRun && !g.round.Met() {
		g.tickTimer++
		if g.tickTimer >= config.Get().UI.AutoStepInterval {
			g.tickTimer = 0
			g.round.StepRandom()
		}
	}

	return nil
}

// runMonteCarlo runs the configured batch synchronously. Obstacles are
// always off for the estimate, whatever the interactive toggle says.
func (g *Game) runMonteCarlo() {
	cfg := config.Get()
	stats, err := g.estimator.Run(context.Background(), cfg.MonteCarlo.Trials, cfg.MonteCarlo.MaxSteps, g.round.Grid())
	if err != nil {
		g.logger.Error().Err(err).Msg("Monte Carlo run failed")
		return
	}
	g.stats = &stats
}

// Draw renders the grid and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)
	g.renderer.Draw(screen, g.round.Grid(), g.round.AgentA(), g.round.AgentB(), g.round.Met())
	g.drawPanel(screen)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	cfg := config.Get()
	gridW, gridH := g.renderer.PixelSize(g.round.Grid())

	panel := ebiten.NewImage(cfg.UI.PanelWidth, common.Max(gridH, 1))
	panel.Fill(common.PanelColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(gridW), 0)
	screen.DrawImage(panel, op)

	x := gridW + 16
	y := 24
	line := func(s string) {
		text.Draw(screen, s, g.font, x, y, common.TextColor)
		y += 22
	}

	line("Chance Encounter")
	line(fmt.Sprintf("Mode: %s", g.mode))
	line(fmt.Sprintf("Turns: %d", g.round.Turns()))
	if g.round.Met() {
		text.Draw(screen, "Encounter!", g.font, x, y, common.MeetHighlight)
		y += 22
	}
	if g.autoRun && g.mode == ModeRandomVsRandom {
		line("Auto-Run: ON")
	}
	if g.obstaclesOn {
		line("Obstacles: ON")
	} else {
		line("Obstacles: OFF")
	}

	y += 12
	line("Controls:")
	for _, s := range []string{
		"M - toggle mode",
		"R - reset round",
		"O - toggle obstacles",
		"P - Monte Carlo stats",
		"Arrows/WASD - move",
		"Space - single step",
		"Enter - auto-run",
		"Esc/Q - quit",
	} {
		line(s)
	}

	if g.stats != nil {
		y += 12
		line(fmt.Sprintf("MC (%d trials):", g.stats.Trials))
		if g.stats.Meetings > 0 {
			line(fmt.Sprintf("Avg steps to meet: %.1f", g.stats.AvgSteps()))
		} else {
			line("Avg steps to meet: n/a")
		}
		line(fmt.Sprintf("Meet rate: %.1f%%", g.stats.MeetRate()*100))
	}
}

// Layout returns the fixed window size derived from grid and panel geometry.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	gridW, gridH := g.renderer.PixelSize(g.round.Grid())
	return gridW + config.Get().UI.PanelWidth, gridH
}
