package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/emilyahsu/dad-birthday-card/ecs/entity"
	"github.com/emilyahsu/dad-birthday-card/ecs/system"
	"github.com/emilyahsu/dad-birthday-card/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options are the command-line settings for a card.
type Options struct {
	CardName  string
	Recipient string
	Sender    string
	Debug     bool
}

type Game struct {
	opts Options

	world     *ecs.World
	scheduler *ecs.Scheduler
	cardDraw  *system.CardRenderSystem
	tileDraw  *system.TileRenderSystem
	ui        *ebitenui.UI
	message   component.Message

	clipboard *Clipboard
	watcher   *prefabs.Watcher
	cardMod   time.Time

	width, height float64
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts, clipboard: NewClipboard()}
	if err := g.loadScene(); err != nil {
		return nil, err
	}

	if opts.Debug {
		dirs := []string{prefabs.DiskDir()}
		if _, err := os.Stat(filepath.Join(prefabs.DiskDir(), "scripts")); err == nil {
			dirs = append(dirs, filepath.Join(prefabs.DiskDir(), "scripts"))
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadScene builds a fresh world from the card prefab. The current scene is
// only replaced once the new one is complete.
func (g *Game) loadScene() error {
	spec, err := prefabs.LoadCardSpec(g.opts.CardName)
	if err != nil {
		return err
	}
	if g.opts.Recipient != "" {
		spec.Recipient = g.opts.Recipient
	}
	if g.opts.Sender != "" {
		spec.Sender = g.opts.Sender
	}

	msg := entity.ResolveMessage(context.Background(), spec)

	world := ecs.NewWorld()
	if _, err := entity.BuildCard(world, spec, msg); err != nil {
		return fmt.Errorf("build card: %w", err)
	}

	theme := system.NewTheme(spec.Theme)
	g.world = world
	g.message = msg
	g.scheduler = ecs.NewScheduler(
		system.NewLayoutSystem(g.size, spec.TileSizeFor),
		system.NewPointerSystem(),
		system.NewDragSystem(),
		system.NewTransitionSystem(),
		system.NewHitSyncSystem(),
		system.NewPulseSystem(),
	)
	g.cardDraw = system.NewCardRenderSystem(theme)
	g.tileDraw = system.NewTileRenderSystem(theme)
	g.ui = NewFooterUI(msg.Footer, theme, func() { system.RequestReset(g.world) })
	if mod, ok := prefabs.ModTime(g.cardName()); ok {
		g.cardMod = mod
	}
	return nil
}

func (g *Game) cardName() string {
	if g.opts.CardName == "" {
		return prefabs.DefaultCardName
	}
	return g.opts.CardName
}

func (g *Game) size() (float64, float64) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		system.RequestReset(g.world)
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.clipboard.Copy(greetingText(g.message)) {
			log.Printf("clipboard: copied greeting")
		}
	}

	g.scheduler.Update(g.world)

	// Tiles sit above the footer, so the UI only sees input the tiles did not take.
	if !system.Dragging(g.world) && !system.Hovering(g.world) {
		g.ui.Update()
	}

	if system.Dragging(g.world) || system.Hovering(g.world) {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if filepath.Base(name) == g.cardName() {
		if mod, ok := prefabs.ModTime(g.cardName()); ok && mod.Equal(g.cardMod) {
			return
		}
	}
	if err := g.loadScene(); err != nil {
		log.Printf("prefabs: reload %s: %v; keeping current card", filepath.Base(name), err)
		return
	}
	log.Printf("prefabs: reloaded %s", filepath.Base(name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.cardDraw.Draw(g.world, screen)
	g.ui.Draw(screen)
	g.tileDraw.Draw(g.world, screen)

	if g.opts.Debug {
		system.DrawHitDebug(g.world, screen)
		system.DrawDragDebug(g.world, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
