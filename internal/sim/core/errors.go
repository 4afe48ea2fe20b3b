package core

import "errors"

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidDensity    = errors.New("obstacle density must be in [0,1)")
	ErrInvalidTrials     = errors.New("trial count must be positive")
	ErrInvalidStepCap    = errors.New("step cap must be positive")
	ErrBlockedStart      = errors.New("agent start cell is blocked")
)
