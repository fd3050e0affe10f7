package notify

import (
	"errors"
	"fmt"
	"math"
)

// Parameter names as they appear in the parameter file.
const (
	ParamSound            = "Pickup Sound"
	ParamVolume           = "Pickup Sound Volume"
	ParamPitch            = "Pickup Sound Pitch"
	ParamPan              = "Pickup Sound Pan"
	ParamSoundEnabled     = "Enable Sound"
	ParamAnimationEnabled = "Enable Animation"
	ParamShowItemName     = "Show Item Name"
	ParamShowWindow       = "Show Window"
	ParamFontSize         = "Font Size"
	ParamSpeed            = "Animation Speed"
	ParamDuration         = "Animation Duration"
	ParamFadeDelay        = "Fade Out Delay"
	ParamGroupDigits      = "Group Digits"
)

// DefaultParams are the values used for parameters absent from the file.
var DefaultParams = map[string]string{
	ParamSound:            "Item3",
	ParamVolume:           "100",
	ParamPitch:            "100",
	ParamPan:              "0",
	ParamSoundEnabled:     "true",
	ParamAnimationEnabled: "true",
	ParamShowItemName:     "true",
	ParamShowWindow:       "false",
	ParamFontSize:         "20",
	ParamSpeed:            "1.00",
	ParamDuration:         "60",
	ParamFadeDelay:        "30",
	ParamGroupDigits:      "false",
}

// Config is the process-wide notifier configuration. It is never mutated
// after LoadConfig returns; a reload produces a new value.
type Config struct {
	Sound  string
	Volume float64
	Pitch  float64
	Pan    float64

	SoundEnabled     bool
	AnimationEnabled bool
	ShowItemName     bool
	ShowWindow       bool
	GroupDigits      bool

	FontSize  float64
	Speed     float64
	Duration  int
	FadeDelay int
}

// ConfigError describes one rejected parameter.
type ConfigError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("notify: parameter %q = %q: %s", e.Param, e.Value, e.Reason)
}

// DefaultConfig returns the configuration built from DefaultParams.
func DefaultConfig() *Config {
	return &Config{
		Sound:            "Item3",
		Volume:           100,
		Pitch:            100,
		Pan:              0,
		SoundEnabled:     true,
		AnimationEnabled: true,
		ShowItemName:     true,
		ShowWindow:       false,
		FontSize:         20,
		Speed:            1,
		Duration:         60,
		FadeDelay:        30,
	}
}

// OpacityStep is how much contents opacity drops per fade frame.
func (c *Config) OpacityStep() float64 {
	if c == nil || c.Duration <= c.FadeDelay {
		return 0
	}
	return 255 / float64(c.Duration-c.FadeDelay)
}

// Validate checks the ranges LoadConfig enforces. It is meant for configs
// built in code.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("notify: nil config")
	}
	var errs []error
	check := func(param string, value float64, ok bool, reason string) {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			errs = append(errs, &ConfigError{Param: param, Value: fmt.Sprint(value), Reason: "not a finite number"})
			return
		}
		if !ok {
			errs = append(errs, &ConfigError{Param: param, Value: fmt.Sprint(value), Reason: reason})
		}
	}
	check(ParamVolume, c.Volume, c.Volume >= 0, "must be >= 0")
	check(ParamPitch, c.Pitch, c.Pitch > 0, "must be > 0")
	check(ParamPan, c.Pan, c.Pan >= -100 && c.Pan <= 100, "must be within [-100, 100]")
	check(ParamFontSize, c.FontSize, c.FontSize > 0, "must be > 0")
	check(ParamSpeed, c.Speed, true, "")
	if c.Duration <= 0 {
		errs = append(errs, &ConfigError{Param: ParamDuration, Value: fmt.Sprint(c.Duration), Reason: "must be > 0"})
	}
	if c.FadeDelay < 0 {
		errs = append(errs, &ConfigError{Param: ParamFadeDelay, Value: fmt.Sprint(c.FadeDelay), Reason: "must be >= 0"})
	}
	if c.Duration > 0 && c.FadeDelay >= 0 && c.Duration <= c.FadeDelay {
		errs = append(errs, &ConfigError{
			Param:  ParamFadeDelay,
			Value:  fmt.Sprint(c.FadeDelay),
			Reason: fmt.Sprintf("must be less than %s (%d)", ParamDuration, c.Duration),
		})
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from raw parameter strings. Absent parameters
// take their DefaultParams value; present but malformed ones are errors.
// Every problem is reported, joined.
func LoadConfig(params map[string]string) (*Config, error) {
	p := newParamReader(params)
	cfg := &Config{
		Sound:            p.str(ParamSound),
		Volume:           p.number(ParamVolume),
		Pitch:            p.number(ParamPitch),
		Pan:              p.number(ParamPan),
		SoundEnabled:     p.boolean(ParamSoundEnabled),
		AnimationEnabled: p.boolean(ParamAnimationEnabled),
		ShowItemName:     p.boolean(ParamShowItemName),
		ShowWindow:       p.boolean(ParamShowWindow),
		GroupDigits:      p.boolean(ParamGroupDigits),
		FontSize:         p.number(ParamFontSize),
		Speed:            p.number(ParamSpeed),
		Duration:         p.integer(ParamDuration),
		FadeDelay:        p.integer(ParamFadeDelay),
	}
	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
