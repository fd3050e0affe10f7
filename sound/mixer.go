package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// MaxEffectLength caps a rendered effect; longer sources are cut.
const MaxEffectLength = 5 * time.Second

// Mixer plays effects fire-and-forget.
type Mixer interface {
	Play(e Effect) error
}

// EbitenMixer renders effects through Chain and plays the PCM on an ebiten
// audio context. Players are held until they finish; call Reap once per
// frame to release them.
type EbitenMixer struct {
	ctx     *audio.Context
	bank    *Bank
	players []*audio.Player
}

func NewEbitenMixer(ctx *audio.Context, bank *Bank) *EbitenMixer {
	return &EbitenMixer{ctx: ctx, bank: bank}
}

func (m *EbitenMixer) Play(e Effect) error {
	if m == nil || m.ctx == nil || m.bank == nil {
		return nil
	}
	src, format, err := m.bank.Source(e.Name)
	if err != nil {
		return err
	}
	outRate := beep.SampleRate(m.ctx.SampleRate())
	pcm := Render(Chain(src, format.SampleRate, outRate, e), outRate.N(MaxEffectLength))
	if len(pcm) == 0 {
		return fmt.Errorf("sound: %q rendered empty", e.Name)
	}

	p := m.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	m.players = append(m.players, p)
	return nil
}

// Reap closes players that have finished and returns how many are still
// playing.
func (m *EbitenMixer) Reap() int {
	if m == nil {
		return 0
	}
	live := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	clear(m.players[len(live):])
	m.players = live
	return len(live)
}

// Close stops and releases every player.
func (m *EbitenMixer) Close() {
	if m == nil {
		return
	}
	for _, p := range m.players {
		_ = p.Close()
	}
	m.players = nil
}
