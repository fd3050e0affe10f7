package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupNotificationFade(t *testing.T) {
	cases := []struct {
		name      string
		duration  int
		fadeDelay int
	}{
		{"defaults", 60, 30},
		{"uneven_step", 37, 30},
		{"fade_from_start", 12, 0},
		{"single_fade_frame", 10, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewPickupNotification(tc.duration, tc.fadeDelay, 1, 100, 70)
			require.Equal(t, NotificationCreated, n.Phase)
			assert.InDelta(t, 255.0/float64(tc.duration-tc.fadeDelay), n.OpacityStep, 1e-12)

			prev := n.Opacity()
			advances := 0
			for !n.Closed() {
				if n.Step < tc.fadeDelay {
					assert.Equal(t, FullOpacity, n.Opacity(), "step %d before fade delay", n.Step)
				}
				n.Advance(0, 0, 48)
				advances++
				assert.LessOrEqual(t, n.Opacity(), prev, "opacity must not increase")
				prev = n.Opacity()
				require.LessOrEqual(t, advances, tc.duration, "overlay ran past its duration")
			}

			assert.Equal(t, tc.duration, advances)
			assert.Equal(t, tc.duration-tc.fadeDelay, n.Faded)
			assert.GreaterOrEqual(t, float64(n.Faded)*n.OpacityStep, 255.0-1e-9)
			assert.Equal(t, 0.0, n.Opacity())
		})
	}
}

func TestPickupNotificationPosition(t *testing.T) {
	const (
		playerX    = 400.0
		playerY    = 300.0
		tileHeight = 48.0
	)

	t.Run("step_zero_is_anchor", func(t *testing.T) {
		n := NewPickupNotification(60, 30, 1, 120, 70)
		n.Advance(playerX, playerY, tileHeight)
		assert.Equal(t, playerX-60, n.X)
		assert.Equal(t, playerY-1.5*tileHeight, n.Y)
		assert.Equal(t, NotificationAnimating, n.Phase)
	})

	t.Run("speed_sign_sets_direction", func(t *testing.T) {
		up := NewPickupNotification(60, 30, 1.5, 120, 70)
		down := NewPickupNotification(60, 30, -1.5, 120, 70)
		for i := 0; i < 31; i++ {
			up.Advance(playerX, playerY, tileHeight)
			down.Advance(playerX, playerY, tileHeight)
		}
		anchor := playerY - 1.5*tileHeight
		// the last placement used step 30: 30/3 * 1.5 = 15px
		assert.InDelta(t, anchor-15, up.Y, 1e-9)
		assert.InDelta(t, anchor+15, down.Y, 1e-9)
	})

	t.Run("tracks_player_each_step", func(t *testing.T) {
		n := NewPickupNotification(60, 30, 0, 100, 70)
		n.Advance(playerX, playerY, tileHeight)
		n.Advance(playerX+32, playerY+16, tileHeight)
		assert.Equal(t, playerX+32-50, n.X)
		assert.Equal(t, playerY+16-1.5*tileHeight, n.Y)
	})
}

func TestPickupNotificationCancel(t *testing.T) {
	n := NewPickupNotification(60, 30, 1, 100, 70)
	n.Advance(0, 0, 48)
	n.Cancel()

	assert.True(t, n.Closed())
	assert.False(t, n.Advance(0, 0, 48), "closed overlays must not advance")
	assert.Equal(t, 1, n.Step)
}

func TestPickupNotificationRejectsBadTiming(t *testing.T) {
	for _, timing := range [][2]int{{30, 30}, {20, 30}, {0, 0}, {10, -1}} {
		n := NewPickupNotification(timing[0], timing[1], 1, 100, 70)
		assert.True(t, n.Closed(), "duration=%d fadeDelay=%d", timing[0], timing[1])
		assert.Zero(t, n.OpacityStep)
	}
}

func TestNotificationPhaseString(t *testing.T) {
	assert.Equal(t, "Created", NotificationCreated.String())
	assert.Equal(t, "Animating", NotificationAnimating.String())
	assert.Equal(t, "Closed", NotificationClosed.String())
	assert.Equal(t, "NotificationPhase(9)", NotificationPhase(9).String())
}

func TestPickupNotificationTickHoldsPosition(t *testing.T) {
	n := NewPickupNotification(10, 5, 1, 100, 70)
	n.Advance(200, 300, 48)
	x, y := n.X, n.Y

	for i := 0; i < 3; i++ {
		assert.True(t, n.Tick())
	}
	assert.Equal(t, x, n.X)
	assert.Equal(t, y, n.Y)
	assert.Equal(t, 4, n.Step)
}
