package notify

import (
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/getitemanim/ecs/entity"
)

// Overlay geometry in pixels.
const (
	WindowPadding = 18.0
	IconGutter    = 64.0
	MinHeight     = 70.0

	// captionBleed leaves room for the caption outline.
	captionBleed = 4.0
)

// Caption formats the overlay text: "+3 Potion", "+3", or "-2 Ether" for
// removals.
func Caption(amount int, name string, showName, groupDigits bool) string {
	sign := "+"
	n := int64(amount)
	// Unsigned magnitude so math.MinInt does not overflow on negation.
	mag := uint64(n)
	if n < 0 {
		sign = "-"
		mag = uint64(-(n + 1)) + 1
	}
	digits := strconv.FormatUint(mag, 10)
	if groupDigits {
		digits = humanize.BigComma(new(big.Int).SetUint64(mag))
	}
	if showName && name != "" {
		return sign + digits + " " + name
	}
	return sign + digits
}

// TextMeasurer returns the advance width of s at the given font size.
type TextMeasurer func(s string, fontSize float64) float64

// FaceMeasurer measures with a Go text face built from src.
func FaceMeasurer(src *text.GoTextFaceSource) TextMeasurer {
	return func(s string, fontSize float64) float64 {
		if src == nil {
			return 0
		}
		return text.Advance(s, &text.GoTextFace{Source: src, Size: fontSize})
	}
}

// Layout is the overlay geometry, computed once when the overlay spawns.
type Layout struct {
	Caption   string
	FontSize  float64
	Padding   float64
	TextWidth float64
	Width     float64
	Height    float64
}

// NewLayout sizes an overlay for caption. Padding is only applied when the
// window frame is shown.
func NewLayout(caption string, fontSize float64, showWindow bool, measure TextMeasurer) Layout {
	padding := 0.0
	if showWindow {
		padding = WindowPadding
	}
	textWidth := 0.0
	if measure != nil {
		textWidth = math.Max(0, measure(caption, fontSize))
	}
	return Layout{
		Caption:   caption,
		FontSize:  fontSize,
		Padding:   padding,
		TextWidth: textWidth,
		Width:     textWidth + IconGutter + 1.25*padding,
		Height:    math.Max(MinHeight, 1.5*fontSize),
	}
}

// ContentSize is the size of the icon and text area inside the padding.
func (l Layout) ContentSize() (int, int) {
	w := int(math.Ceil(entity.OverlayTextX + l.TextWidth + captionBleed))
	h := int(math.Ceil(math.Max(entity.OverlayLineHeight, l.Height-2*l.Padding)))
	return w, h
}
