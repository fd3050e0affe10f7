package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is a decaying sine with one overtone.
type note struct {
	freq   float64
	decay  float64
	length int
	pos    int
	rate   beep.SampleRate
}

func newNote(freq float64, d time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &note{freq: freq, decay: decay, length: rate.N(d), rate: rate}
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.length {
			return i, i > 0
		}
		t := float64(n.pos) / float64(n.rate)
		env := math.Exp(-t * n.decay)
		v := 0.45 * env * (math.Sin(2*math.Pi*n.freq*t) + 0.3*math.Sin(4*math.Pi*n.freq*t))
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

// builtins are synthesized effects used when no file matches a name.
var builtins = map[string]func(beep.SampleRate) beep.Streamer{
	"Chime": func(r beep.SampleRate) beep.Streamer {
		return beep.Seq(
			newNote(987.77, 90*time.Millisecond, 12, r),
			newNote(1318.51, 220*time.Millisecond, 10, r),
		)
	},
	"Blip": func(r beep.SampleRate) beep.Streamer {
		return newNote(660, 80*time.Millisecond, 30, r)
	},
	"Coin": func(r beep.SampleRate) beep.Streamer {
		d := 180 * time.Millisecond
		return beep.Take(r.N(d), beep.Mix(
			newNote(1046.5, d, 14, r),
			newNote(1568, d, 18, r),
		))
	},
}

// Builtins lists the synthesized effect names.
func Builtins() []string {
	return []string{"Blip", "Chime", "Coin"}
}
