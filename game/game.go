// Package game provides the application loop driver. It wires the key state
// machine and the scene stack to an ebiten window and runs one frame at a
// time: advance keys, drain raw input, deliver keypress and tick to the top
// scene, apply the returned transition, draw. The run ends when the window is
// closed or the scene stack empties.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gg/event"
	"github.com/younwookim/gg/scene"
)

const defaultTPS = 60

// Game drives a scene stack at a fixed timestep. It implements ebiten.Game;
// construct it with New and start it with Kickoff, or run it without a window
// via RunHeadless.
type Game[T any] struct {
	manager *scene.StackManager[T]
	keys    *event.Keys

	screenW int
	screenH int
	title   string
	tps     int

	start time.Time
	last  float64

	pending     []event.KeyEvent
	pressedBuf  []ebiten.Key
	releasedBuf []ebiten.Key
}

// New creates a driver for the given scene stack with a logical screen size.
func New[T any](manager *scene.StackManager[T], screenW, screenH int) *Game[T] {
	return &Game[T]{
		manager: manager,
		keys:    event.NewKeys(),
		screenW: screenW,
		screenH: screenH,
		title:   "gg",
		tps:     defaultTPS,
	}
}

// SetWindowTitle sets the window title used by Kickoff.
func (g *Game[T]) SetWindowTitle(title string) {
	g.title = title
}

// SetTPS sets the target ticks per second used by Kickoff and defaulted to 60.
func (g *Game[T]) SetTPS(tps int) {
	g.tps = tps
}

// Keys returns the driver's key table, e.g. to inspect it between headless
// steps.
func (g *Game[T]) Keys() *event.Keys {
	return g.keys
}

// PostKeyEvent queues a raw key transition for the next frame's reduction.
// The ebiten front end feeds this queue from the real keyboard; headless runs
// and custom backends post events here directly.
func (g *Game[T]) PostKeyEvent(key event.KeyCode, pressed bool, ts float64) {
	g.pending = append(g.pending, event.KeyEvent{Key: key, Pressed: pressed, Time: ts})
}

// Update runs one frame. Implements ebiten.Game.
func (g *Game[T]) Update() error {
	if g.start.IsZero() {
		g.start = time.Now()
	}
	now := time.Since(g.start).Seconds()
	dt := now - g.last
	g.last = now

	g.pollKeyboard(now)
	if err := g.step(now, dt); err != nil {
		return err
	}
	if len(g.manager.Scenes()) == 0 {
		return ebiten.Termination
	}
	return nil
}

// pollKeyboard turns this frame's ebiten key edges into raw events.
func (g *Game[T]) pollKeyboard(now float64) {
	g.pressedBuf = inpututil.AppendJustPressedKeys(g.pressedBuf[:0])
	for _, k := range g.pressedBuf {
		g.PostKeyEvent(k, true, now)
	}
	g.releasedBuf = inpututil.AppendJustReleasedKeys(g.releasedBuf[:0])
	for _, k := range g.releasedBuf {
		g.PostKeyEvent(k, false, now)
	}
}

// step is one logical frame minus rendering: advance the key table, reduce
// the pending raw events, then deliver keypress and tick to the top scene and
// apply its transition.
func (g *Game[T]) step(now, dt float64) error {
	g.keys.Update(now)

	pending := g.pending
	g.pending = g.pending[:0]
	for _, ev := range pending {
		if err := g.keys.UpdateKey(ev.Key, ev.Pressed, ev.Time); err != nil {
			return err
		}
	}

	top := g.manager.Top()
	if top == nil {
		return nil
	}
	top.Keypress(g.manager.State(), g.keys)
	return g.manager.HandleTransition(top.Tick(g.manager.State(), dt))
}

// Draw renders the top scene. Implements ebiten.Game.
func (g *Game[T]) Draw(screen *ebiten.Image) {
	if top := g.manager.Top(); top != nil {
		top.Display(g.manager.State(), screen)
	}
}

// Layout returns the game's logical screen dimensions. Implements ebiten.Game.
func (g *Game[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Kickoff opens the window and owns the application loop until the run ends:
// the window is closed, the scene stack empties, or a scene or the key state
// machine reports an unrecoverable error.
func (g *Game[T]) Kickoff() error {
	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// RunHeadless drives the same frame step as Kickoff without a window or
// renderer, at the given interval. Input arrives only via PostKeyEvent. The
// loop exits when the scene stack empties or a step fails, returning the
// failure if any. Useful for simulations and tests.
func (g *Game[T]) RunHeadless(interval time.Duration) error {
	var runErr error
	now := 0.0
	event.FixedStep(interval, func(dt float64) event.StepResult {
		now += dt
		if err := g.step(now, dt); err != nil {
			runErr = err
			return event.Stop
		}
		if len(g.manager.Scenes()) == 0 {
			return event.Stop
		}
		return event.Continue
	})
	return runErr
}
