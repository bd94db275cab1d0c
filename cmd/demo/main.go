// Demo shows the scene stack in action: a fading main menu pushes a tiny
// gameplay screen, gameplay pushes a pause screen, and pause can pop back one
// level or jump all the way back to the menu.
//
// Controls: Enter starts gameplay, WASD/arrows move the square, Escape pushes
// pause (or quits from the menu), Q on the pause screen returns to the menu.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/gg/event"
	"github.com/younwookim/gg/game"
	"github.com/younwookim/gg/scene"
)

// Scene ids for PopUntil targets.
const (
	menuID = iota
	playID
	pauseID
)

const moveSpeed = 120.0 // pixels per second

// demoState is the application state shared by all scenes.
type demoState struct {
	screenW int
	screenH int
	playerX float64
	playerY float64
	pauses  int
}

// --- Main menu ---

type menuScene struct {
	scene.Base[demoState]
	fade  *gween.Tween
	alpha float32
	start bool
	quit  bool
}

func newMenuScene() *menuScene {
	return &menuScene{}
}

func (m *menuScene) Enter(state *demoState) {
	// Restart the fade every time the menu regains focus.
	m.fade = gween.New(0, 1, 0.75, ease.OutQuad)
	m.alpha = 0
	m.start = false
	m.quit = false
}

func (m *menuScene) Keypress(state *demoState, keys *event.Keys) {
	if keys.Pressed(ebiten.KeyEnter) || keys.Pressed(ebiten.KeySpace) {
		m.start = true
	}
	if keys.Pressed(ebiten.KeyEscape) {
		m.quit = true
	}
}

func (m *menuScene) Tick(state *demoState, dt float64) scene.Transition[demoState] {
	m.alpha, _ = m.fade.Update(float32(dt))

	if m.quit {
		return scene.Pop[demoState]()
	}
	if m.start {
		return scene.Push[demoState](newPlayScene())
	}
	return scene.Nothing[demoState]()
}

func (m *menuScene) Display(state *demoState, screen *ebiten.Image) {
	a := float64(m.alpha)
	screen.Fill(color.RGBA{uint8(20 * a), uint8(40 * a), uint8(120 * a), 255})
	ebitenutil.DebugPrintAt(screen, "GG DEMO", state.screenW/2-25, state.screenH/2-30)
	ebitenutil.DebugPrintAt(screen, "Enter: play | ESC: quit", state.screenW/2-80, state.screenH/2)
}

func (m *menuScene) ID() int { return menuID }

// --- Gameplay ---

type playScene struct {
	scene.Base[demoState]
	vx    float64
	vy    float64
	pause bool
}

func newPlayScene() *playScene {
	return &playScene{}
}

func (p *playScene) Enter(state *demoState) {
	p.pause = false
}

func (p *playScene) Keypress(state *demoState, keys *event.Keys) {
	p.vx, p.vy = 0, 0
	if keys.Held(ebiten.KeyA) || keys.Held(ebiten.KeyArrowLeft) {
		p.vx -= moveSpeed
	}
	if keys.Held(ebiten.KeyD) || keys.Held(ebiten.KeyArrowRight) {
		p.vx += moveSpeed
	}
	if keys.Held(ebiten.KeyW) || keys.Held(ebiten.KeyArrowUp) {
		p.vy -= moveSpeed
	}
	if keys.Held(ebiten.KeyS) || keys.Held(ebiten.KeyArrowDown) {
		p.vy += moveSpeed
	}
	if keys.Pressed(ebiten.KeyEscape) {
		p.pause = true
	}
}

func (p *playScene) Tick(state *demoState, dt float64) scene.Transition[demoState] {
	if p.pause {
		p.pause = false
		return scene.Push[demoState](newPauseScene())
	}

	state.playerX += p.vx * dt
	state.playerY += p.vy * dt

	// Keep the square on screen.
	if state.playerX < 0 {
		state.playerX = 0
	}
	if state.playerY < 0 {
		state.playerY = 0
	}
	if limit := float64(state.screenW - 16); state.playerX > limit {
		state.playerX = limit
	}
	if limit := float64(state.screenH - 16); state.playerY > limit {
		state.playerY = limit
	}

	return scene.Nothing[demoState]()
}

func (p *playScene) Display(state *demoState, screen *ebiten.Image) {
	screen.Fill(color.RGBA{26, 26, 46, 255})
	ebitenutil.DrawRect(screen, state.playerX, state.playerY, 16, 16, color.RGBA{100, 200, 100, 255})
	ebitenutil.DebugPrint(screen, "WASD: move | ESC: pause")
}

func (p *playScene) ID() int { return playID }

// --- Pause ---

type pauseScene struct {
	scene.Base[demoState]
	resume bool
	toMenu bool
}

func newPauseScene() *pauseScene {
	return &pauseScene{}
}

func (p *pauseScene) Enter(state *demoState) {
	state.pauses++
	p.resume = false
	p.toMenu = false
}

func (p *pauseScene) Keypress(state *demoState, keys *event.Keys) {
	if keys.Pressed(ebiten.KeyEscape) {
		p.resume = true
	}
	if keys.Pressed(ebiten.KeyQ) {
		p.toMenu = true
	}
}

func (p *pauseScene) Tick(state *demoState, dt float64) scene.Transition[demoState] {
	if p.toMenu {
		return scene.PopUntil[demoState](menuID)
	}
	if p.resume {
		return scene.Pop[demoState]()
	}
	return scene.Nothing[demoState]()
}

func (p *pauseScene) Display(state *demoState, screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PAUSED (x%d)", state.pauses), state.screenW/2-30, state.screenH/2-20)
	ebitenutil.DebugPrintAt(screen, "ESC: resume | Q: menu", state.screenW/2-70, state.screenH/2)
}

func (p *pauseScene) ID() int { return pauseID }

func main() {
	cfg, err := LoadConfig(configFS)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	state := demoState{
		screenW: cfg.ScreenWidth,
		screenH: cfg.ScreenHeight,
		playerX: float64(cfg.ScreenWidth)/2 - 8,
		playerY: float64(cfg.ScreenHeight)/2 - 8,
	}

	manager := scene.NewStackManager(state, scene.Scene[demoState](newMenuScene()))
	g := game.New(manager, cfg.ScreenWidth, cfg.ScreenHeight)
	g.SetWindowTitle(cfg.Title)
	g.SetTPS(cfg.Framerate)

	if err := g.Kickoff(); err != nil {
		log.Fatal(err)
	}
}
