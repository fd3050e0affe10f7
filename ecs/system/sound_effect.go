package system

import (
	log "github.com/sirupsen/logrus"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/sound"
)

// SoundEffectSystem hands queued sound effect requests to a mixer and
// destroys the request entities.
type SoundEffectSystem struct {
	mixer sound.Mixer
}

func NewSoundEffectSystem(mixer sound.Mixer) *SoundEffectSystem {
	return &SoundEffectSystem{mixer: mixer}
}

// RequestSoundEffect queues one fire-and-forget playback.
func RequestSoundEffect(w *ecs.World, req *component.SoundEffectRequest) {
	if w == nil || req == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SoundEffectRequestComponent.Kind(), req)
}

func (s *SoundEffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requests := make([]ecs.Entity, 0)
	ecs.ForEach(w, component.SoundEffectRequestComponent.Kind(), func(ent ecs.Entity, req *component.SoundEffectRequest) {
		requests = append(requests, ent)
		if s.mixer == nil || req == nil {
			return
		}
		effect := sound.Effect{Name: req.Name, Volume: req.Volume, Pitch: req.Pitch, Pan: req.Pan}
		if err := s.mixer.Play(effect); err != nil {
			log.WithFields(log.Fields{
				"sound":  req.Name,
				"volume": req.Volume,
				"pitch":  req.Pitch,
				"pan":    req.Pan,
			}).WithError(err).Warn("sound effect: play failed")
		}
	})
	for _, ent := range requests {
		ecs.DestroyEntity(w, ent)
	}

	if r, ok := s.mixer.(interface{ Reap() int }); ok {
		r.Reap()
	}
}
