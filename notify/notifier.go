package notify

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/ecs/entity"
	"github.com/milk9111/getitemanim/ecs/system"
)

// GainItemFunc is the inventory mutation the notifier wraps.
type GainItemFunc func(item *Item, amount int, includeEquip bool)

// OverlayBuilder spawns one overlay entity.
type OverlayBuilder func(w *ecs.World, spec entity.PickupNotificationSpec) (ecs.Entity, error)

// Notifier turns gain-item events into a sound request and a floating
// overlay, then delegates. It runs on the game thread only; the config
// pointer is atomic so a reload may be staged from elsewhere.
type Notifier struct {
	world       *ecs.World
	cfg         atomic.Pointer[Config]
	animationOn bool

	build   OverlayBuilder
	measure TextMeasurer
}

type Option func(*Notifier)

// WithOverlayBuilder replaces the entity builder, mainly for tests.
func WithOverlayBuilder(b OverlayBuilder) Option {
	return func(n *Notifier) { n.build = b }
}

// WithTextMeasurer sets how caption widths are measured.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(n *Notifier) { n.measure = m }
}

// New creates a notifier bound to w. A nil cfg uses DefaultConfig. The
// runtime animation toggle starts at cfg.AnimationEnabled.
func New(w *ecs.World, cfg *Config, opts ...Option) *Notifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := &Notifier{
		world:       w,
		animationOn: cfg.AnimationEnabled,
		build:       entity.NewPickupNotification,
	}
	n.cfg.Store(cfg)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Config() *Config {
	return n.cfg.Load()
}

// SetConfig swaps the configuration. Overlays already on screen keep the
// timing they were spawned with. The runtime toggle is left alone.
func (n *Notifier) SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	n.cfg.Store(cfg)
}

func (n *Notifier) SetAnimationEnabled(on bool) {
	n.animationOn = on
}

func (n *Notifier) AnimationEnabled() bool {
	return n.animationOn
}

// ToggleAnimation flips the runtime toggle and returns the new state.
func (n *Notifier) ToggleAnimation() bool {
	n.animationOn = !n.animationOn
	return n.animationOn
}

// Cancel closes every overlay in the world. Call it before tearing the
// world down or switching maps.
func (n *Notifier) Cancel() int {
	return system.CancelPickupNotifications(n.world)
}

// Wrap returns next decorated with the pickup presentation. The arguments
// reach next unchanged and next always runs, even for a nil item.
func (n *Notifier) Wrap(next GainItemFunc) GainItemFunc {
	return func(item *Item, amount int, includeEquip bool) {
		if item != nil {
			n.present(item, amount)
		}
		if next != nil {
			next(item, amount, includeEquip)
		}
	}
}

func (n *Notifier) present(item *Item, amount int) {
	cfg := n.Config()
	p := Resolve(cfg, &item.Override, n.animationOn)

	fields := log.Fields{
		"item":   item.ID,
		"name":   item.Name,
		"amount": amount,
	}

	if p.SoundEnabled {
		system.RequestSoundEffect(n.world, &component.SoundEffectRequest{
			Name:   p.Sound,
			Volume: p.Volume,
			Pitch:  p.Pitch,
			Pan:    p.Pan,
		})
		fields["sound"] = p.Sound
	}

	if p.AnimationEnabled {
		if err := n.spawnOverlay(cfg, item, amount, p.ShowName); err != nil {
			log.WithFields(fields).WithError(err).Warn("notify: overlay not shown")
		} else {
			fields["overlay"] = true
		}
	}

	log.WithFields(fields).Debug("notify: item gained")
}

func (n *Notifier) spawnOverlay(cfg *Config, item *Item, amount int, showName bool) error {
	if n.build == nil {
		return nil
	}
	layout := NewLayout(Caption(amount, item.Name, showName, cfg.GroupDigits), cfg.FontSize, cfg.ShowWindow, n.measure)
	cw, ch := layout.ContentSize()
	px, py, tileHeight, _ := system.PlayerAnchor(n.world)

	_, err := n.build(n.world, entity.PickupNotificationSpec{
		Caption:       layout.Caption,
		IconIndex:     item.IconIndex,
		FontSize:      layout.FontSize,
		ShowWindow:    cfg.ShowWindow,
		Padding:       layout.Padding,
		Width:         layout.Width,
		Height:        layout.Height,
		ContentWidth:  cw,
		ContentHeight: ch,
		Duration:      cfg.Duration,
		FadeDelay:     cfg.FadeDelay,
		Speed:         cfg.Speed,
		PlayerX:       px,
		PlayerY:       py,
		TileHeight:    tileHeight,
	})
	return err
}
