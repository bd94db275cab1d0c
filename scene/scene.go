// Package scene defines the Scene contract and a stack-based scene manager.
//
// Each screen or mode of an application (title, gameplay, pause, submenu)
// implements Scene. Scenes live on a LIFO stack owned by a StackManager; only
// the top scene receives input, tick, and display calls. A scene requests
// navigation by returning a Transition from Tick: push a child screen, pop
// itself, or pop back to a named ancestor. Scenes below the top keep their
// internal state and regain focus when everything above them pops.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gg/event"
)

// Scene is one unit of application behavior over the shared state T.
//
// Enter and Leave mark focus boundaries, not construction and destruction: a
// scene is entered when it becomes top of the stack and left when it stops
// being top, whether because a child was pushed above it or because it was
// popped. A scene that loses focus to a child is left once, then entered
// again when the child pops.
type Scene[T any] interface {
	// Enter is called once each time this scene becomes top of the stack.
	Enter(state *T)

	// Leave is called once each time this scene stops being top of the
	// stack, including immediately before it is discarded on pop.
	Leave(state *T)

	// Keypress is called once per frame for the top scene, before Tick,
	// with the fully advanced key table for this frame.
	Keypress(state *T, keys *event.Keys)

	// Display is called once per frame for the top scene to render itself.
	Display(state *T, screen *ebiten.Image)

	// Tick advances state by dt seconds and returns the transition the
	// stack manager should apply this frame.
	Tick(state *T, dt float64) Transition[T]

	// ID is a stable identity for this scene, used by PopUntil to find an
	// ancestor. Keeping ids unique within a running stack is the caller's
	// responsibility.
	ID() int
}

// Base is an embeddable no-op implementation of every Scene method except ID.
// Its Tick pops the scene, so an embedder that forgets to override Tick
// removes itself instead of looping forever.
type Base[T any] struct{}

// Enter does nothing.
func (Base[T]) Enter(*T) {}

// Leave does nothing.
func (Base[T]) Leave(*T) {}

// Keypress does nothing.
func (Base[T]) Keypress(*T, *event.Keys) {}

// Display draws nothing.
func (Base[T]) Display(*T, *ebiten.Image) {}

// Tick returns Pop.
func (Base[T]) Tick(*T, float64) Transition[T] {
	return Pop[T]()
}
