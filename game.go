package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/getitemanim/assets"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/ecs/entity"
	"github.com/milk9111/getitemanim/ecs/system"
	"github.com/milk9111/getitemanim/notify"
	"github.com/milk9111/getitemanim/prefabs"
	"github.com/milk9111/getitemanim/sound"
	log "github.com/sirupsen/logrus"
)

const (
	hintFrames      = 120
	maxRandomAmount = 5
	soundDir        = "audio/se"
)

type Game struct {
	world    *ecs.World
	notifier *notify.Notifier
	gain     notify.GainItemFunc
	items    *notify.ItemDatabase
	mixer    *sound.EbitenMixer
	watcher  *prefabs.Watcher

	ui          *ebitenui.UI
	pauseStatus *widget.Text
	paused      bool
	quit        bool
	width       float64
	height      float64
	hotLoad     bool
}

type gameOptions struct {
	mute      bool
	hotReload bool
}

func NewGame(opts gameOptions) (*Game, error) {
	plugin, err := prefabs.LoadPluginSpec()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", prefabs.PluginFile, err)
	}
	cfg, err := notify.LoadConfig(plugin.Parameters)
	if err != nil {
		return nil, err
	}
	items, err := notify.LoadItems()
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadMapSpec()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", prefabs.MapFile, err)
	}

	world := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(world, level); err != nil {
		return nil, err
	}
	if _, err := entity.NewParty(world); err != nil {
		return nil, err
	}

	var opt []notify.Option
	if src, err := assets.FontSource(); err == nil {
		opt = append(opt, notify.WithTextMeasurer(notify.FaceMeasurer(src)))
	} else {
		log.WithError(err).Warn("font unavailable, pickup overlays show the icon only")
	}
	n := notify.New(world, cfg, opt...)

	g := &Game{
		world:    world,
		notifier: n,
		gain:     n.Wrap(notify.PartyGainItem(world)),
		items:    items,
	}

	if !opts.mute {
		bank := sound.NewBank(beep.SampleRate(assets.SampleRate), os.DirFS(soundDir), assets.SoundEffects())
		if err := bank.Preload(cfg.Sound); err != nil {
			log.WithFields(log.Fields{"sound": cfg.Sound}).WithError(err).Warn("preload sound effect")
		}
		g.mixer = sound.NewEbitenMixer(assets.AudioContext(), bank)
	}

	world.AddSystem(system.NewInputSystem())
	world.AddSystem(system.NewPhysicsSystem())
	world.AddSystem(system.NewTreasureSystem(g.gainByID))
	world.AddSystem(system.NewPickupNotificationSystem())
	var mixer sound.Mixer
	if g.mixer != nil {
		mixer = g.mixer
	}
	world.AddSystem(system.NewSoundEffectSystem(mixer))
	world.AddSystem(system.NewTTLSystem())
	world.AddSystem(system.NewRenderSystem())

	cols, rows := level.Size()
	g.width = float64(cols) * level.TileWidth
	g.height = float64(rows) * level.TileHeight

	if opts.hotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.WithFields(log.Fields{"dir": prefabs.Dir}).WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
			g.hotLoad = true
		}
	}

	g.ui = NewPauseUI(g)
	log.WithFields(log.Fields{
		"map":       level.Name,
		"items":     items.Len(),
		"animation": n.AnimationEnabled(),
		"sound":     cfg.Sound,
	}).Info("game ready")
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		g.refreshPauseUI()
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.step()
	return nil
}

// step runs one unpaused frame. Commands read the input of the previous
// update, so a G-key pickup spawns before the overlay system runs, the same
// as a chest pickup.
func (g *Game) step() {
	g.handleCommands()
	g.world.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the audio players and stops the prefab watcher.
func (g *Game) Close() {
	if g.mixer != nil {
		g.mixer.Close()
	}
	if err := g.watcher.Close(); err != nil {
		log.WithError(err).Warn("close prefab watcher")
	}
}

func (g *Game) gainByID(itemID, amount int) {
	item, ok := g.items.Get(itemID)
	if !ok {
		log.WithFields(log.Fields{"item": itemID}).Warn("treasure holds unknown item")
		return
	}
	g.gain(item, amount, false)
}

func (g *Game) handleCommands() {
	player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(g.world, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	switch {
	case in.TogglePressed:
		g.toggleAnimation()
	case in.CancelPressed:
		g.cancelOverlays()
	case in.RandomPressed:
		g.randomGain()
	}
}

func (g *Game) toggleAnimation() {
	on := g.notifier.ToggleAnimation()
	g.hint(animationLabel(on))
	log.WithFields(log.Fields{"animation": on}).Info("pickup animation toggled")
}

func (g *Game) cancelOverlays() {
	n := g.notifier.Cancel()
	g.hint(fmt.Sprintf("Closed %d notification(s)", n))
}

func (g *Game) randomGain() {
	all := g.items.Items()
	if len(all) == 0 {
		return
	}
	item := all[rand.IntN(len(all))]
	g.gain(item, 1+rand.IntN(maxRandomAmount), false)
}

func (g *Game) hint(msg string) {
	if _, err := entity.NewHint(g.world, msg, hintFrames); err != nil {
		log.WithError(err).Warn("show hint")
	}
}

// drainReloads applies every prefab change queued by the watcher. A bad
// file keeps the previous config or item table.
func (g *Game) drainReloads() {
	if !g.hotLoad {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.hotLoad = false
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.hotLoad = false
				return
			}
			log.WithError(err).Warn("prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	fields := log.Fields{"file": path}
	switch prefabs.BaseName(path) {
	case prefabs.PluginFile:
		plugin, err := prefabs.LoadPluginSpec()
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("reload parameters")
			return
		}
		cfg, err := notify.LoadConfig(plugin.Parameters)
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("reload parameters")
			return
		}
		g.notifier.SetConfig(cfg)
		g.hint("Parameters reloaded")
	case prefabs.ItemsFile:
		items, err := notify.LoadItems()
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("reload items")
			return
		}
		g.items = items
		g.hint(fmt.Sprintf("Items reloaded (%d)", items.Len()))
	default:
		return
	}
	log.WithFields(fields).Info("prefab reloaded")
}
