package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/ChanceEncounter/internal/sim/core"
)

// Command is a discrete keyboard action emitted once per key press
type Command int

const (
	CommandNone Command = iota
	CommandToggleMode
	CommandReset
	CommandToggleObstacles
	CommandMonteCarlo
	CommandStep
	CommandToggleAutoRun
	CommandQuit
)

// Handler translates just-pressed keys into commands and movement directions
type Handler struct{}

// NewHandler creates a keyboard handler
func NewHandler() *Handler {
	return &Handler{}
}

// Poll returns the command triggered this tick, if any
func (h *Handler) Poll() Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return CommandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		return CommandToggleMode
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return CommandReset
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		return CommandToggleObstacles
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return CommandMonteCarlo
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return CommandStep
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return CommandToggleAutoRun
	}
	return CommandNone
}

// Direction returns the movement direction pressed this tick.
// Arrows and WASD are equivalent.
func (h *Handler) Direction() (core.Coordinate, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		return core.DirectionVectors[core.North], true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		return core.DirectionVectors[core.South], true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		return core.DirectionVectors[core.West], true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		return core.DirectionVectors[core.East], true
	}
	return core.Coordinate{}, false
}
