package scene

// transitionKind tags the Transition variant.
type transitionKind int

const (
	kindNothing transitionKind = iota
	kindPush
	kindPop
	kindPopUntil
)

// Transition is a one-shot instruction returned by a scene's Tick and
// consumed immediately by the stack manager. Build one with Nothing, Push,
// Pop, or PopUntil.
type Transition[T any] struct {
	kind   transitionKind
	scene  Scene[T]
	target int
}

// Nothing leaves the stack as it is.
func Nothing[T any]() Transition[T] {
	return Transition[T]{kind: kindNothing}
}

// Push puts s on top of the stack. The current top stays on the stack but
// loses focus.
func Push[T any](s Scene[T]) Transition[T] {
	return Transition[T]{kind: kindPush, scene: s}
}

// Pop removes the current top scene, returning focus to the one beneath it.
func Pop[T any]() Transition[T] {
	return Transition[T]{kind: kindPop}
}

// PopUntil removes scenes from the top until the scene with the given id
// becomes top, e.g. to get back to a parent menu from a nested submenu.
func PopUntil[T any](id int) Transition[T] {
	return Transition[T]{kind: kindPopUntil, target: id}
}
