package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// resampleQuality is beep's recommended quality for short effects.
const resampleQuality = 4

// Effect is one playback request. Values use the parameter-file scales:
// Volume 100 is unity gain, Pitch 100 is normal speed and Pan runs from
// -100 (left) to 100 (right).
type Effect struct {
	Name   string
	Volume float64
	Pitch  float64
	Pan    float64
}

// Chain resamples src from srcRate to outRate with the pitch applied, then
// scales volume and pans.
func Chain(src beep.Streamer, srcRate, outRate beep.SampleRate, e Effect) beep.Streamer {
	pitch := e.Pitch
	if !(pitch > 0) {
		pitch = 100
	}
	ratio := pitch / 100 * float64(srcRate) / float64(outRate)

	var s beep.Streamer = src
	if ratio != 1 {
		s = beep.ResampleRatio(resampleQuality, ratio, s)
	}
	s = newVolume(s, e.Volume/100)
	if pan := clampPan(e.Pan / 100); pan != 0 {
		s = &effects.Pan{Streamer: s, Pan: pan}
	}
	return s
}

func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if !(gain > 0) {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

func clampPan(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(-1, math.Min(1, p))
}

// Render drains s into 16-bit little-endian stereo PCM, at most maxSamples
// frames long.
func Render(s beep.Streamer, maxSamples int) []byte {
	if s == nil || maxSamples <= 0 {
		return nil
	}
	s = beep.Take(maxSamples, s)

	out := make([]byte, 0, 4*min(maxSamples, 1<<16))
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	switch {
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return -math.MaxInt16
	case math.IsNaN(v):
		return 0
	}
	return int16(v * math.MaxInt16)
}
