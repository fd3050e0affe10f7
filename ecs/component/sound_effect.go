package component

// SoundEffectRequest is a one-shot request for sound effect playback. The
// values use the parameter-file scales: volume 0-100+, pitch 100 = normal
// speed, pan -100 (left) to 100 (right).
type SoundEffectRequest struct {
	Name   string
	Volume float64
	Pitch  float64
	Pan    float64
}

var SoundEffectRequestComponent = NewComponent[SoundEffectRequest]()
