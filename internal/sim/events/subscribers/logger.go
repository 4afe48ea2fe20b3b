package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
)

// LoggerSubscriber logs simulation events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	eventTypeFilter map[string]bool // if non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.Info().
		Str("event_type", event.Type()).
		Str("round_id", event.RoundID())

	switch e := event.(type) {
	case *events.RoundStartedEvent:
		logEvent = logEvent.
			Int("width", e.GridWidth).
			Int("height", e.GridHeight).
			Int("obstacles", e.Obstacles).
			Stringer("start_a", e.StartA).
			Stringer("start_b", e.StartB)
	case *events.EncounterDetectedEvent:
		logEvent = logEvent.
			Int("turn", e.Turn).
			Bool("crossing", e.Crossing).
			Stringer("cell_a", e.CellA).
			Stringer("cell_b", e.CellB)
	case *events.SimulationCompletedEvent:
		logEvent = logEvent.
			Int("trials", e.Trials).
			Int("meetings", e.Meetings).
			Float64("meet_rate", e.MeetRate).
			Float64("avg_steps", e.AvgSteps).
			Dur("duration", e.Duration)
	}

	logEvent.Msg("Simulation event")
}
