package event

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeys_StatusUnobserved(t *testing.T) {
	k := NewKeys()

	st := k.Status(ebiten.KeyA)
	assert.Equal(t, KeyState{Phase: PhaseNotPressed, Time: 0}, st)
	assert.False(t, k.Pressed(ebiten.KeyA))
	assert.False(t, k.Held(ebiten.KeyA))
	assert.True(t, k.NotPressed(ebiten.KeyA))
}

func TestKeys_PressEdgeLastsOneFrame(t *testing.T) {
	k := NewKeys()

	err := k.UpdateKey(ebiten.KeySpace, true, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, KeyState{Phase: PhasePressed, Time: 1.0}, k.Status(ebiten.KeySpace))
	assert.True(t, k.Pressed(ebiten.KeySpace))
	assert.True(t, k.Held(ebiten.KeySpace))
	assert.False(t, k.NotPressed(ebiten.KeySpace))

	// Next frame the edge decays to Held.
	k.Update(2.0)
	assert.Equal(t, KeyState{Phase: PhaseHeld, Time: 2.0}, k.Status(ebiten.KeySpace))
	assert.False(t, k.Pressed(ebiten.KeySpace))
	assert.True(t, k.Held(ebiten.KeySpace))

	// Held is steady across further frames.
	k.Update(3.0)
	assert.Equal(t, KeyState{Phase: PhaseHeld, Time: 2.0}, k.Status(ebiten.KeySpace))
}

func TestKeys_ReleaseEdgeLastsOneFrame(t *testing.T) {
	k := NewKeys()
	assert.NoError(t, k.UpdateKey(ebiten.KeyW, true, 1.0))
	k.Update(2.0)

	err := k.UpdateKey(ebiten.KeyW, false, 2.5)
	assert.NoError(t, err)
	assert.Equal(t, KeyState{Phase: PhaseReleased, Time: 2.5}, k.Status(ebiten.KeyW))
	assert.False(t, k.Pressed(ebiten.KeyW))
	assert.False(t, k.Held(ebiten.KeyW))

	k.Update(3.0)
	assert.Equal(t, KeyState{Phase: PhaseNotPressed, Time: 3.0}, k.Status(ebiten.KeyW))
}

func TestKeys_DuplicatePressOnHeldIgnored(t *testing.T) {
	k := NewKeys()
	assert.NoError(t, k.UpdateKey(ebiten.KeyA, true, 1.0))
	k.Update(2.0)

	// OS auto-repeat sends another press while the key is down.
	err := k.UpdateKey(ebiten.KeyA, true, 2.5)
	assert.NoError(t, err)
	assert.Equal(t, KeyState{Phase: PhaseHeld, Time: 2.0}, k.Status(ebiten.KeyA))
}

func TestKeys_ImpossibleSequences(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(k *Keys)
		pressed bool
	}{
		{
			name:    "release on never-observed key",
			setup:   func(k *Keys) {},
			pressed: false,
		},
		{
			name: "press while already Pressed",
			setup: func(k *Keys) {
				_ = k.UpdateKey(ebiten.KeyZ, true, 1.0)
			},
			pressed: true,
		},
		{
			name: "release while Pressed",
			setup: func(k *Keys) {
				_ = k.UpdateKey(ebiten.KeyZ, true, 1.0)
			},
			pressed: false,
		},
		{
			name: "release while Released",
			setup: func(k *Keys) {
				_ = k.UpdateKey(ebiten.KeyZ, true, 1.0)
				k.Update(2.0)
				_ = k.UpdateKey(ebiten.KeyZ, false, 2.5)
			},
			pressed: false,
		},
		{
			name: "press while Released",
			setup: func(k *Keys) {
				_ = k.UpdateKey(ebiten.KeyZ, true, 1.0)
				k.Update(2.0)
				_ = k.UpdateKey(ebiten.KeyZ, false, 2.5)
			},
			pressed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeys()
			tt.setup(k)
			before := k.Status(ebiten.KeyZ)

			err := k.UpdateKey(ebiten.KeyZ, tt.pressed, 9.0)
			assert.ErrorIs(t, err, ErrImpossibleKeyEvent)
			assert.Equal(t, before, k.Status(ebiten.KeyZ), "table must be untouched on error")
		})
	}
}

func TestKeys_FullLifecycle(t *testing.T) {
	// press -> one frame Pressed -> Held -> release -> one frame Released ->
	// NotPressed -> press again.
	k := NewKeys()

	assert.NoError(t, k.UpdateKey(ebiten.KeyEscape, true, 0.1))
	assert.True(t, k.Pressed(ebiten.KeyEscape))

	k.Update(0.2)
	assert.False(t, k.Pressed(ebiten.KeyEscape))
	assert.True(t, k.Held(ebiten.KeyEscape))

	k.Update(0.3)
	assert.NoError(t, k.UpdateKey(ebiten.KeyEscape, false, 0.35))
	assert.False(t, k.Held(ebiten.KeyEscape))

	k.Update(0.4)
	assert.Equal(t, PhaseNotPressed, k.Status(ebiten.KeyEscape).Phase)

	assert.NoError(t, k.UpdateKey(ebiten.KeyEscape, true, 0.45))
	assert.True(t, k.Pressed(ebiten.KeyEscape))
}

func TestKeys_UpdateOnlyTouchesEdges(t *testing.T) {
	k := NewKeys()
	assert.NoError(t, k.UpdateKey(ebiten.KeyA, true, 1.0))
	k.Update(2.0) // A is Held(2.0)

	k.Update(5.0)
	assert.Equal(t, KeyState{Phase: PhaseHeld, Time: 2.0}, k.Status(ebiten.KeyA),
		"steady states keep their last transition time")
}

func TestKeyPhase_String(t *testing.T) {
	tests := []struct {
		phase    KeyPhase
		expected string
	}{
		{PhaseNotPressed, "NotPressed"},
		{PhasePressed, "Pressed"},
		{PhaseHeld, "Held"},
		{PhaseReleased, "Released"},
		{KeyPhase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}
