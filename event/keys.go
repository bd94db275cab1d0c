// Package event provides per-key input state tracking and a fixed-interval
// loop utility.
//
// Keys reduces a stream of raw press/release events into a per-key lifecycle
// (NotPressed -> Pressed -> Held -> Released -> NotPressed) so that scenes can
// ask edge questions ("was this key pressed this frame?") as well as level
// questions ("is this key down?") without tracking previous-frame state
// themselves.
package event

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyCode identifies a physical key. It is whatever the input backend hands
// out; the state machine only ever uses it as a map key.
type KeyCode = ebiten.Key

// ErrImpossibleKeyEvent is returned by Keys.UpdateKey when a raw event
// contradicts the key's current state (e.g. a press while already Pressed, or
// a release while NotPressed). Such a sequence cannot come from real hardware
// and the state machine refuses to guess.
var ErrImpossibleKeyEvent = errors.New("impossible key event sequence")

// KeyPhase is the lifecycle phase of a single key.
type KeyPhase int

const (
	// PhaseNotPressed means the key is up and was not released this frame.
	// This is the default for any key never observed.
	PhaseNotPressed KeyPhase = iota
	// PhasePressed means the key went down this frame (edge).
	PhasePressed
	// PhaseHeld means the key is down but was pressed on an earlier frame.
	PhaseHeld
	// PhaseReleased means the key went up this frame (edge).
	PhaseReleased
)

// String returns the string representation of the key phase.
func (p KeyPhase) String() string {
	switch p {
	case PhaseNotPressed:
		return "NotPressed"
	case PhasePressed:
		return "Pressed"
	case PhaseHeld:
		return "Held"
	case PhaseReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// KeyState is a key's phase together with the timestamp (in seconds) of its
// last transition. The zero value is the state of a never-observed key.
type KeyState struct {
	Phase KeyPhase
	Time  float64
}

// KeyEvent is a single raw transition reported by the input backend.
type KeyEvent struct {
	Key     KeyCode
	Pressed bool
	Time    float64
}

// Keys tracks the state of every key observed so far. Keys are materialized
// lazily: a key enters the table on its first press and stays there.
//
// Within one frame, Update must run before that frame's raw events are fed to
// UpdateKey, so that last frame's edges have decayed to their steady state
// before new edges are recorded.
type Keys struct {
	states map[KeyCode]KeyState
}

// NewKeys creates an empty key table.
func NewKeys() *Keys {
	return &Keys{states: make(map[KeyCode]KeyState)}
}

// UpdateKey applies one raw hardware event to the table.
//
// A press on an up key records the Pressed edge; a release on a Held key
// records the Released edge. A press on a Held key is ignored (keyboard
// auto-repeat). Every other combination is contradictory and returns
// ErrImpossibleKeyEvent with the table left untouched.
func (k *Keys) UpdateKey(key KeyCode, pressed bool, ts float64) error {
	cur := k.states[key]

	if pressed {
		switch cur.Phase {
		case PhaseNotPressed:
			k.states[key] = KeyState{Phase: PhasePressed, Time: ts}
			return nil
		case PhaseHeld:
			// Auto-repeat from the OS, already down.
			return nil
		default:
			return fmt.Errorf("%w: press on %s key %v", ErrImpossibleKeyEvent, cur.Phase, key)
		}
	}

	if cur.Phase == PhaseHeld {
		k.states[key] = KeyState{Phase: PhaseReleased, Time: ts}
		return nil
	}
	return fmt.Errorf("%w: release on %s key %v", ErrImpossibleKeyEvent, cur.Phase, key)
}

// Update advances every tracked key by one frame. The Pressed and Released
// edges last exactly one frame: Pressed decays to Held and Released decays to
// NotPressed, both stamped with ts. Held and NotPressed are steady states.
func (k *Keys) Update(ts float64) {
	for key, st := range k.states {
		switch st.Phase {
		case PhasePressed:
			k.states[key] = KeyState{Phase: PhaseHeld, Time: ts}
		case PhaseReleased:
			k.states[key] = KeyState{Phase: PhaseNotPressed, Time: ts}
		}
	}
}

// Status returns the current state of key. A key never observed reports
// NotPressed with timestamp 0.
func (k *Keys) Status(key KeyCode) KeyState {
	return k.states[key]
}

// Pressed reports whether key went down this frame.
func (k *Keys) Pressed(key KeyCode) bool {
	return k.states[key].Phase == PhasePressed
}

// Held reports whether key is currently down, whether it was pressed this
// frame or earlier.
func (k *Keys) Held(key KeyCode) bool {
	phase := k.states[key].Phase
	return phase == PhasePressed || phase == PhaseHeld
}

// NotPressed is the strict complement of Pressed: true unless key went down
// this very frame. Callers asking "is this key up right now" want !Held.
func (k *Keys) NotPressed(key KeyCode) bool {
	return !k.Pressed(key)
}
