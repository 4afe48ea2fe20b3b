package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAgent(t *testing.T) {
	start := NewCoordinate(0, 0)
	a := NewAgent(start)
	assert.Equal(t, start, a.Pos)
	assert.Equal(t, start, a.Prev, "fresh agent has Prev == Pos")
}

func TestAgent_MoveTo(t *testing.T) {
	a := NewAgent(NewCoordinate(3, 3))
	moved := a.MoveTo(NewCoordinate(3, 4))

	assert.Equal(t, NewCoordinate(3, 4), moved.Pos)
	assert.Equal(t, NewCoordinate(3, 3), moved.Prev)
	// value semantics: the original agent is unchanged
	assert.Equal(t, NewCoordinate(3, 3), a.Pos)
}

func TestAgent_MoveTo_SelfLoop(t *testing.T) {
	a := NewAgent(NewCoordinate(2, 2))
	a = a.MoveTo(NewCoordinate(2, 1))
	stayed := a.MoveTo(a.Pos)

	assert.Equal(t, NewCoordinate(2, 1), stayed.Pos)
	assert.Equal(t, NewCoordinate(2, 1), stayed.Prev, "staying put still rolls Prev forward")
}
