package component

import "math"

//go:generate go tool stringer -type=NotificationPhase -trimprefix=Notification

// NotificationPhase is the lifecycle of one pickup overlay.
type NotificationPhase uint8

const (
	NotificationCreated NotificationPhase = iota
	NotificationAnimating
	NotificationClosed
)

const (
	// FullOpacity is the contents opacity an overlay spawns with.
	FullOpacity = 255.0
	// stepsPerOffset frames pass per pixel of travel at speed 1.
	stepsPerOffset = 3.0
	// anchorTiles is how many tiles above the player's feet the overlay starts.
	anchorTiles = 1.5
)

// PickupNotification is the per-overlay animation state. It is advanced once
// per frame by the pickup notification system and never scheduled anywhere
// else, so destroying the entity is enough to stop it.
type PickupNotification struct {
	Phase NotificationPhase
	Step  int
	// Faded counts the frames on which opacity was reduced.
	Faded int

	Duration    int
	FadeDelay   int
	Speed       float64
	OpacityStep float64

	Width  float64
	Height float64
	X      float64
	Y      float64
}

// NewPickupNotification builds the state for one overlay. Callers validate
// duration > fadeDelay beforehand; a bad pair closes the overlay at once
// rather than dividing by zero.
func NewPickupNotification(duration, fadeDelay int, speed, width, height float64) PickupNotification {
	n := PickupNotification{
		Duration:  duration,
		FadeDelay: fadeDelay,
		Speed:     speed,
		Width:     width,
		Height:    height,
	}
	if duration <= 0 || fadeDelay < 0 || duration <= fadeDelay {
		n.Phase = NotificationClosed
		return n
	}
	n.OpacityStep = FullOpacity / float64(duration-fadeDelay)
	return n
}

// Place positions the overlay for the current step relative to the player's
// screen anchor (horizontal center, feet) without advancing.
func (n *PickupNotification) Place(playerX, playerY, tileHeight float64) {
	if n == nil {
		return
	}
	n.X = playerX - n.Width/2
	n.Y = playerY - anchorTiles*tileHeight - (float64(n.Step)/stepsPerOffset)*n.Speed
}

// Advance runs one frame: place, fade once past the delay, step. It reports
// whether the overlay is still open afterwards.
func (n *PickupNotification) Advance(playerX, playerY, tileHeight float64) bool {
	if n.Closed() {
		return false
	}
	n.Place(playerX, playerY, tileHeight)
	return n.Tick()
}

// Tick fades and steps without moving the overlay. Used on frames with no
// player to anchor to.
func (n *PickupNotification) Tick() bool {
	if n.Closed() {
		return false
	}
	n.Phase = NotificationAnimating
	if n.Step >= n.FadeDelay {
		n.Faded++
	}
	n.Step++
	if n.Step >= n.Duration {
		n.Phase = NotificationClosed
		return false
	}
	return true
}

// Cancel closes the overlay without finishing the animation.
func (n *PickupNotification) Cancel() {
	if n == nil {
		return
	}
	n.Phase = NotificationClosed
}

func (n *PickupNotification) Closed() bool {
	return n == nil || n.Phase == NotificationClosed
}

// RawOpacity is 255 minus the accumulated fade; it may dip below zero by
// rounding and is what the fade arithmetic produces.
func (n *PickupNotification) RawOpacity() float64 {
	if n == nil {
		return 0
	}
	return FullOpacity - float64(n.Faded)*n.OpacityStep
}

// Opacity is the displayable contents opacity in [0, 255]. It is exactly
// zero once every fade frame has run.
func (n *PickupNotification) Opacity() float64 {
	if n == nil {
		return 0
	}
	if fadeFrames := n.Duration - n.FadeDelay; fadeFrames > 0 && n.Faded >= fadeFrames {
		return 0
	}
	return math.Max(0, math.Min(FullOpacity, n.RawOpacity()))
}

var PickupNotificationComponent = NewComponent[PickupNotification]()
