package notify

// EffectiveParams is the final setting for one pickup event.
type EffectiveParams struct {
	SoundEnabled bool
	Sound        string
	Volume       float64
	Pitch        float64
	Pan          float64

	AnimationEnabled bool
	ShowName         bool
}

// Resolve merges cfg with an optional item override and the runtime
// animation toggle. It never fails: a nil config resolves against
// DefaultConfig and a nil override changes nothing.
func Resolve(cfg *Config, o *ItemOverride, animationOn bool) EffectiveParams {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if o == nil {
		o = &ItemOverride{}
	}
	p := EffectiveParams{
		SoundEnabled:     cfg.SoundEnabled || o.Sound != nil,
		Sound:            cfg.Sound,
		Volume:           cfg.Volume,
		Pitch:            cfg.Pitch,
		Pan:              cfg.Pan,
		AnimationEnabled: o.ForceAnimation || animationOn,
		ShowName:         o.ShowName || cfg.ShowItemName,
	}
	if o.Sound != nil {
		p.Sound = *o.Sound
	}
	if o.Volume != nil {
		p.Volume = *o.Volume
	}
	if o.Pitch != nil {
		p.Pitch = *o.Pitch
	}
	if o.Pan != nil {
		p.Pan = *o.Pan
	}
	return p
}
