package notify

import (
	"fmt"
	"regexp"
	"strings"
)

// Note tag names read from item notes.
const (
	TagSound          = "GetItemSound"
	TagSoundVolume    = "GetItemSoundVolume"
	TagSoundPitch     = "GetItemSoundPitch"
	TagSoundPan       = "GetItemSoundPan"
	TagShowName       = "GetItemShowName"
	TagForceAnimation = "GetItemAnim"
)

// ItemOverride holds the per-item settings that take precedence over Config.
// Nil pointers mean "use the configured value".
type ItemOverride struct {
	Sound  *string
	Volume *float64
	Pitch  *float64
	Pan    *float64

	ShowName       bool
	ForceAnimation bool
}

// Empty reports whether the override changes nothing.
func (o *ItemOverride) Empty() bool {
	return o == nil || (o.Sound == nil && o.Volume == nil && o.Pitch == nil && o.Pan == nil && !o.ShowName && !o.ForceAnimation)
}

// noteTagPattern matches <Key> and <Key:value>.
var noteTagPattern = regexp.MustCompile(`<([^<>:]+)(:?)([^>]*)>`)

// ParseNoteTags reads the pickup tags out of an item note. Unknown tags are
// ignored; a known numeric tag with a bad value is an error.
func ParseNoteTags(note string) (ItemOverride, error) {
	var o ItemOverride
	for _, m := range noteTagPattern.FindAllStringSubmatch(note, -1) {
		key := strings.TrimSpace(m[1])
		hasValue := m[2] == ":"
		value := strings.TrimSpace(m[3])

		switch key {
		case TagSound:
			if !hasValue || value == "" {
				return ItemOverride{}, fmt.Errorf("note tag <%s> needs a sound name", key)
			}
			o.Sound = &value
		case TagSoundVolume:
			f, err := tagNumber(key, value, hasValue)
			if err != nil {
				return ItemOverride{}, err
			}
			o.Volume = &f
		case TagSoundPitch:
			f, err := tagNumber(key, value, hasValue)
			if err != nil {
				return ItemOverride{}, err
			}
			o.Pitch = &f
		case TagSoundPan:
			f, err := tagNumber(key, value, hasValue)
			if err != nil {
				return ItemOverride{}, err
			}
			o.Pan = &f
		case TagShowName:
			o.ShowName = true
		case TagForceAnimation:
			o.ForceAnimation = true
		}
	}
	return o, nil
}

func tagNumber(key, value string, hasValue bool) (float64, error) {
	if !hasValue {
		return 0, fmt.Errorf("note tag <%s> needs a value", key)
	}
	f, err := parseNumber(value)
	if err != nil {
		return 0, fmt.Errorf("note tag <%s:%s>: %w", key, value, err)
	}
	return f, nil
}

// Merge returns o with every field set in other applied on top.
func (o ItemOverride) Merge(other ItemOverride) ItemOverride {
	if other.Sound != nil {
		o.Sound = other.Sound
	}
	if other.Volume != nil {
		o.Volume = other.Volume
	}
	if other.Pitch != nil {
		o.Pitch = other.Pitch
	}
	if other.Pan != nil {
		o.Pan = other.Pan
	}
	o.ShowName = o.ShowName || other.ShowName
	o.ForceAnimation = o.ForceAnimation || other.ForceAnimation
	return o
}

// validate applies the Config ranges to the fields the override sets.
func (o *ItemOverride) validate() error {
	switch {
	case o.Sound != nil && strings.TrimSpace(*o.Sound) == "":
		return fmt.Errorf("pickup sound name is empty")
	case o.Volume != nil && !(*o.Volume >= 0):
		return fmt.Errorf("pickup volume %v must be >= 0", *o.Volume)
	case o.Pitch != nil && !(*o.Pitch > 0):
		return fmt.Errorf("pickup pitch %v must be > 0", *o.Pitch)
	case o.Pan != nil && !(*o.Pan >= -100 && *o.Pan <= 100):
		return fmt.Errorf("pickup pan %v must be within [-100, 100]", *o.Pan)
	}
	return nil
}
