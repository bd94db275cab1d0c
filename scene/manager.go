package scene

import "fmt"

// Manager applies scene transitions and exposes the scene stack to the loop
// driver. StackManager is the standard implementation.
type Manager[T any] interface {
	// Scenes returns the stack, bottom first; the top scene is the last
	// element. The returned slice must not be mutated.
	Scenes() []Scene[T]

	// State returns the shared application state passed into every scene
	// hook.
	State() *T

	// HandleTransition applies a transition returned by the top scene's
	// Tick.
	HandleTransition(tr Transition[T]) error
}

// StackManager owns an ordered stack of scenes plus the shared state value.
// An empty stack signals that the application should terminate; the manager
// never refills it on its own.
type StackManager[T any] struct {
	scenes []Scene[T]
	state  T
}

// NewStackManager creates a manager holding state and the initial scene. The
// initial scene becomes top of the stack immediately, so its Enter is called
// here.
func NewStackManager[T any](state T, initial Scene[T]) *StackManager[T] {
	m := &StackManager[T]{
		scenes: []Scene[T]{initial},
		state:  state,
	}
	initial.Enter(&m.state)
	return m
}

// Scenes returns the stack, bottom first. The returned slice must not be
// mutated.
func (m *StackManager[T]) Scenes() []Scene[T] {
	return m.scenes
}

// State returns the shared application state.
func (m *StackManager[T]) State() *T {
	return &m.state
}

// Top returns the current top scene, or nil if the stack is empty.
func (m *StackManager[T]) Top() Scene[T] {
	if len(m.scenes) == 0 {
		return nil
	}
	return m.scenes[len(m.scenes)-1]
}

// HandleTransition mutates the stack according to tr.
//
// Push leaves the current top (it stays on the stack), appends the new scene
// and enters it. Pop removes the top, leaves it, and enters the scene exposed
// beneath, if any; popping an empty stack is a no-op. PopUntil leaves the
// current top, discards scenes until the target id is on top, then enters it;
// it fails without touching the stack if the stack holds fewer than two
// scenes or the id is not present.
func (m *StackManager[T]) HandleTransition(tr Transition[T]) error {
	switch tr.kind {
	case kindNothing:
		return nil

	case kindPush:
		if top := m.Top(); top != nil {
			top.Leave(&m.state)
		}
		m.scenes = append(m.scenes, tr.scene)
		tr.scene.Enter(&m.state)
		return nil

	case kindPop:
		top := m.Top()
		if top == nil {
			return nil
		}
		m.scenes = m.scenes[:len(m.scenes)-1]
		top.Leave(&m.state)
		if next := m.Top(); next != nil {
			next.Enter(&m.state)
		}
		return nil

	case kindPopUntil:
		if len(m.scenes) < 2 {
			return fmt.Errorf("%w: %d scene(s), target id %d", ErrStackTooShallow, len(m.scenes), tr.target)
		}
		if !m.contains(tr.target) {
			return fmt.Errorf("%w: id %d", ErrSceneNotFound, tr.target)
		}

		// Validated above, so the loop below cannot empty the stack.
		m.Top().Leave(&m.state)
		for m.Top().ID() != tr.target {
			m.scenes = m.scenes[:len(m.scenes)-1]
		}
		m.Top().Enter(&m.state)
		return nil
	}
	return nil
}

func (m *StackManager[T]) contains(id int) bool {
	for _, s := range m.scenes {
		if s.ID() == id {
			return true
		}
	}
	return false
}
