package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/sigmaplatformer/assets"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/render"
	"github.com/automoto/sigmaplatformer/systems"
	"github.com/automoto/sigmaplatformer/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Renderer layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerDebug
	LayerHUD
)

// AppName keys the saved progress file.
const AppName = "sigmaplatformer"

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]cfg.ActionID{
	ebiten.KeyUp:    cfg.ActionJump,
	ebiten.KeyW:     cfg.ActionJump,
	ebiten.KeyLeft:  cfg.ActionMoveLeft,
	ebiten.KeyA:     cfg.ActionMoveLeft,
	ebiten.KeyRight: cfg.ActionMoveRight,
	ebiten.KeyD:     cfg.ActionMoveRight,
}

type PlatformerScene struct {
	ecs      *ecs.ECS
	renderer *render.Renderer
	banner   *render.Banner
	hud      *ui.HUD
	watcher  *assets.Watcher
	once     sync.Once

	keys []ebiten.Key
	err  error
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

// Update advances one frame. A non-nil error ends the game.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() {
		ps.err = ps.configure()
	})
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return ps.err
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	ps.ecs.Draw(screen)
}

// Close saves the run's progress and releases the map watcher.
func (ps *PlatformerScene) Close() error {
	if ps.ecs != nil {
		systems.RecordProgress(ps.ecs.World)
	}
	if ps.watcher == nil {
		return nil
	}
	err := ps.watcher.Close()
	ps.watcher = nil
	return err
}

func (ps *PlatformerScene) configure() error {
	maps, dir, err := assets.MapFS()
	if err != nil {
		return err
	}

	if err := systems.InitPersistence(AppName); err != nil {
		log.Warn("progress will not be saved", "err", err)
	}
	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		log.Info("saved progress", "highest_level", saved.HighestLevel, "best_coins", saved.BestCoins)
	}

	hud, err := ui.NewHUD()
	if err != nil {
		return err
	}
	ps.hud = hud
	ps.banner = &render.Banner{}
	ps.renderer = render.NewRenderer(render.NewImages(maps))

	world := donburi.NewWorld()
	if err := systems.StartGame(world, maps); err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	if cfg.C.HotReload {
		watcher, err := assets.NewWatcher(dir)
		if err != nil {
			log.Warn("hot reload disabled", "dir", dir, "err", err)
		} else {
			ps.watcher = watcher
		}
	}

	ps.ecs = ecs.NewECS(world)

	ps.ecs.AddSystem(ps.updateInput)
	ps.ecs.AddSystem(ps.updateHotReload)
	ps.ecs.AddSystem(ps.updateGame)
	ps.ecs.AddSystem(ps.updateOverlay)

	ps.ecs.AddRenderer(LayerWorld, ps.renderer.DrawScene)
	ps.ecs.AddRenderer(LayerDebug, render.DrawDebug)
	ps.ecs.AddRenderer(LayerHUD, ps.hud.Draw)
	ps.ecs.AddRenderer(LayerHUD, ps.banner.Draw)

	return nil
}

func (ps *PlatformerScene) updateInput(e *ecs.ECS) {
	ps.keys = inpututil.AppendJustPressedKeys(ps.keys[:0])
	for _, key := range ps.keys {
		if action, ok := keyActions[key]; ok {
			systems.OnActionDown(e.World, action)
		}
	}
	ps.keys = inpututil.AppendJustReleasedKeys(ps.keys[:0])
	for _, key := range ps.keys {
		if action, ok := keyActions[key]; ok {
			systems.OnActionUp(e.World, action)
		}
	}
}

func (ps *PlatformerScene) updateHotReload(e *ecs.ECS) {
	if ps.watcher == nil {
		return
	}
	select {
	case err, ok := <-ps.watcher.Errors:
		if ok {
			log.Warn("map watcher", "err", err)
		}
	default:
	}
	if !ps.watcher.Poll() {
		return
	}
	ps.renderer.Images().Clear()
	if err := systems.ReloadLevel(e.World); err != nil {
		// keep playing the level already loaded
		log.Error("hot reload failed", "err", err)
		return
	}
	log.Info("reloaded level after map change")
}

func (ps *PlatformerScene) updateGame(e *ecs.ECS) {
	if ps.err != nil {
		return
	}
	if err := systems.UpdateGame(e.World); err != nil {
		ps.err = err
	}
}

func (ps *PlatformerScene) updateOverlay(e *ecs.ECS) {
	ps.banner.Update(e.World)
	ps.hud.Update(e.World)
}
