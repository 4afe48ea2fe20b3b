package subscribers

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/events"
)

func TestLoggerSubscriber_InterestedIn(t *testing.T) {
	ls := NewLoggerSubscriber("test", zerolog.Nop())
	assert.True(t, ls.InterestedIn(events.TypeRoundStarted), "no filter means all events")

	ls.SetEventFilter([]string{events.TypeEncounterDetected})
	assert.True(t, ls.InterestedIn(events.TypeEncounterDetected))
	assert.False(t, ls.InterestedIn(events.TypeRoundStarted))

	ls.SetEventFilter(nil)
	assert.True(t, ls.InterestedIn(events.TypeRoundStarted))
}

func TestLoggerSubscriber_HandleEvent(t *testing.T) {
	ls := NewLoggerSubscriber("test", zerolog.Nop())

	// All event shapes log without panicking
	ls.HandleEvent(events.NewRoundStartedEvent("r", 12, 12, 3,
		core.NewCoordinate(0, 0), core.NewCoordinate(11, 11)))
	ls.HandleEvent(events.NewEncounterDetectedEvent("r", 9, true,
		core.NewCoordinate(3, 3), core.NewCoordinate(2, 3)))
	ls.HandleEvent(events.NewSimulationCompletedEvent("run", 1000, 900, 0.9, 55.1, 0))
}
