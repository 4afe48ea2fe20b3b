package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/config"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events/subscribers"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("ui-event-log", log.Logger))

	game, err := ui.NewGame(log.Logger, bus)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle(cfg.UI.WindowTitle)

	log.Info().
		Int("width", cfg.Game.Grid.Width).
		Int("height", cfg.Game.Grid.Height).
		Msg("Starting visual client")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("Game loop exited with error")
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
