// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-boink/pkg/config"
	"github.com/opd-ai/go-boink/pkg/engine"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	session *engine.Session
	palette Palette

	world    *ecs.World
	renderer *EngoRenderer
	input    *InputSystem
	system   *SessionSystem
}

// NewGameScene creates a new game scene for session
func NewGameScene(session *engine.Session) *GameScene {
	return &GameScene{
		session: session,
		palette: DefaultPalette(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("engo: GameScene requires an *ecs.World updater")
	}
	scene.world = world

	common.SetBackground(scene.palette.Background)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()
	scene.input = NewInputSystem(nil, nil)
	world.AddSystem(scene.input)

	bounds := scene.session.Arena.Bounds()
	viewport := NewViewport(engo.GameWidth(), engo.GameHeight(), bounds)
	scene.renderer = NewEngoRenderer(renderSystem, viewport, scene.palette)

	scene.system = NewSessionSystem(scene.session, scene.input, scene.renderer)
	world.AddSystem(scene.system)

	scene.session.Start()
}

// Exit is called when the scene is exiting
func (scene *GameScene) Exit() {
	scene.session.Stop()
}

// Run opens a window described by window and plays session in it until
// the window closes.
func Run(session *engine.Session, window config.WindowConfig) {
	engo.Run(engo.RunOptions{
		Title:      window.Title,
		Width:      window.Width,
		Height:     window.Height,
		Fullscreen: window.Fullscreen,
		VSync:      window.VSync,
	}, NewGameScene(session))
}
