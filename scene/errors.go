package scene

import "errors"

var (
	// ErrStackTooShallow is returned by HandleTransition when PopUntil is
	// requested with fewer than two scenes on the stack; there is nothing
	// beneath the top to pop back to.
	ErrStackTooShallow = errors.New("pop until needs at least two scenes on the stack")

	// ErrSceneNotFound is returned by HandleTransition when PopUntil names
	// an id that is nowhere on the stack. The stack is left unchanged.
	ErrSceneNotFound = errors.New("pop until target scene not on the stack")
)
