package events

import (
	"time"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
)

// Event type constants
const (
	TypeRoundStarted        = "round.started"
	TypeEncounterDetected   = "round.encounter"
	TypeSimulationCompleted = "simulation.completed"
)

// RoundStartedEvent is published when a fresh round begins
type RoundStartedEvent struct {
	BaseEvent
	GridWidth  int
	GridHeight int
	Obstacles  int
	StartA     core.Coordinate
	StartB     core.Coordinate
}

// NewRoundStartedEvent creates a new RoundStartedEvent
func NewRoundStartedEvent(roundID string, w, h, obstacles int, startA, startB core.Coordinate) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeRoundStarted,
			Time:      time.Now(),
			Round:     roundID,
		},
		GridWidth:  w,
		GridHeight: h,
		Obstacles:  obstacles,
		StartA:     startA,
		StartB:     startB,
	}
}

// EncounterDetectedEvent is published when the two agents meet or cross paths
type EncounterDetectedEvent struct {
	BaseEvent
	Turn     int
	Crossing bool // true when the agents swapped cells rather than coinciding
	CellA    core.Coordinate
	CellB    core.Coordinate
}

// NewEncounterDetectedEvent creates a new EncounterDetectedEvent
func NewEncounterDetectedEvent(roundID string, turn int, crossing bool, cellA, cellB core.Coordinate) *EncounterDetectedEvent {
	return &EncounterDetectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEncounterDetected,
			Time:      time.Now(),
			Round:     roundID,
		},
		Turn:     turn,
		Crossing: crossing,
		CellA:    cellA,
		CellB:    cellB,
	}
}

// SimulationCompletedEvent is published when a Monte Carlo batch finishes
type SimulationCompletedEvent struct {
	BaseEvent
	Trials   int
	Meetings int
	MeetRate float64
	AvgSteps float64
	Duration time.Duration
}

// NewSimulationCompletedEvent creates a new SimulationCompletedEvent
func NewSimulationCompletedEvent(runID string, trials, meetings int, meetRate, avgSteps float64, duration time.Duration) *SimulationCompletedEvent {
	return &SimulationCompletedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeSimulationCompleted,
			Time:      time.Now(),
			Round:     runID,
		},
		Trials:   trials,
		Meetings: meetings,
		MeetRate: meetRate,
		AvgSteps: avgSteps,
		Duration: duration,
	}
}
