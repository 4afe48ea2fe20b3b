package core

// Agent is a walker on the grid. Prev holds the position occupied before the
// most recent step; it only exists to detect one-turn position swaps.
type Agent struct {
	Pos  Coordinate
	Prev Coordinate
}

// NewAgent creates an agent at the given start cell. A fresh agent has not
// moved yet, so Prev equals Pos.
func NewAgent(start Coordinate) Agent {
	return Agent{Pos: start, Prev: start}
}

// MoveTo returns the agent after stepping to next. The old current position
// becomes the previous one; the receiver is left untouched.
func (a Agent) MoveTo(next Coordinate) Agent {
	return Agent{Pos: next, Prev: a.Pos}
}
