package internal

import (
	"errors"
	"fmt"
)

var ErrCycle = errors.New("reactivity: cyclic dependency")

// CycleError is the panic value raised when propagation nests deeper than the configured limit.
type CycleError struct {
	Effect EffectID
	Depth  int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: effect %d exceeded max depth (%d nested runs)", ErrCycle, e.Effect, e.Depth)
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
