package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/config"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events/subscribers"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/montecarlo"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	trials := flag.Int("trials", -1, "Number of Monte Carlo trials (-1 to use config default)")
	maxSteps := flag.Int("max-steps", -1, "Step cap per trial (-1 to use config default)")
	width := flag.Int("width", -1, "Grid width (-1 to use config default)")
	height := flag.Int("height", -1, "Grid height (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default or current time)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *trials == -1 {
		*trials = cfg.MonteCarlo.Trials
	}
	if *maxSteps == -1 {
		*maxSteps = cfg.MonteCarlo.MaxSteps
	}
	if *width == -1 {
		*width = cfg.Game.Grid.Width
	}
	if *height == -1 {
		*height = cfg.Game.Grid.Height
	}
	if *seed == 0 {
		*seed = cfg.MonteCarlo.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	log.Info().
		Int("trials", *trials).
		Int("max_steps", *maxSteps).
		Int("width", *width).
		Int("height", *height).
		Int64("seed", *seed).
		Msg("Starting Monte Carlo simulation")

	grid, err := core.NewGrid(*width, *height)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid grid configuration")
	}

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("simulate-event-log", log.Logger))

	rng := rand.New(rand.NewSource(*seed))
	estimator := montecarlo.NewEstimator(rng, log.Logger, bus)

	// Cancel between trials on Ctrl-C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := estimator.Run(ctx, *trials, *maxSteps, grid)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("Simulation cancelled")
			return
		}
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	fmt.Printf("Trials:            %d\n", stats.Trials)
	fmt.Printf("Meetings:          %d\n", stats.Meetings)
	fmt.Printf("Meet rate:         %.1f%% (within %d steps)\n", stats.MeetRate()*100, *maxSteps)
	if stats.Meetings > 0 {
		fmt.Printf("Avg steps to meet: %.1f\n", stats.AvgSteps())
	} else {
		fmt.Printf("Avg steps to meet: n/a (no trial met within the cap)\n")
	}
}

func setupLogging(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = log.With().Timestamp().Logger()
}
