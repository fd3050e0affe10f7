package notify

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// runeMeasurer is a fixed-pitch stand-in for a font face.
func runeMeasurer(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize / 2
}

func TestCaption(t *testing.T) {
	tests := []struct {
		amount      int
		name        string
		showName    bool
		groupDigits bool
		want        string
	}{
		{3, "Potion", true, false, "+3 Potion"},
		{3, "Potion", false, false, "+3"},
		{3, "", true, false, "+3"},
		{-2, "Ether", true, false, "-2 Ether"},
		{0, "Ether", true, false, "+0 Ether"},
		{1250, "Gold", true, true, "+1,250 Gold"},
		{1250, "Gold", true, false, "+1250 Gold"},
		{-1000000, "", false, true, "-1,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Caption(tt.amount, tt.name, tt.showName, tt.groupDigits))
	}
}

func TestCaptionExtremes(t *testing.T) {
	minDigits := strconv.FormatUint(uint64(math.MaxInt)+1, 10)

	assert.Equal(t, "-"+minDigits, Caption(math.MinInt, "", false, false))
	assert.Equal(t, "+"+strconv.Itoa(math.MaxInt), Caption(math.MaxInt, "", false, false))

	grouped := Caption(math.MinInt, "", false, true)
	assert.NotContains(t, grouped, "--")
	assert.Equal(t, "-"+minDigits, strings.ReplaceAll(grouped, ",", ""))
}

func TestNewLayout(t *testing.T) {
	plain := NewLayout("+3 Potion", 20, false, runeMeasurer)
	assert.Equal(t, 0.0, plain.Padding)
	assert.Equal(t, 90.0, plain.TextWidth)
	assert.Equal(t, 90.0+IconGutter, plain.Width)
	assert.Equal(t, MinHeight, plain.Height)

	framed := NewLayout("+3 Potion", 20, true, runeMeasurer)
	assert.Equal(t, WindowPadding, framed.Padding)
	assert.Equal(t, 90.0+IconGutter+1.25*WindowPadding, framed.Width)

	big := NewLayout("+3", 60, false, runeMeasurer)
	assert.Equal(t, 90.0, big.Height, "1.5 x font size once it exceeds the minimum")

	none := NewLayout("+3", 20, false, nil)
	assert.Equal(t, IconGutter, none.Width)
}

func TestLayoutWidthMonotonic(t *testing.T) {
	prev := 0.0
	for n := 0; n < 40; n++ {
		l := NewLayout("+1 "+strings.Repeat("a", n), 20, false, runeMeasurer)
		assert.GreaterOrEqual(t, l.Width, prev, "length %d", n)
		prev = l.Width
	}
}

func TestLayoutContentSize(t *testing.T) {
	l := NewLayout("+3 Potion", 20, true, runeMeasurer)
	w, h := l.ContentSize()
	assert.Equal(t, 48+90+4, w)
	assert.Equal(t, 36, h)

	l = NewLayout("+3 Potion", 20, false, runeMeasurer)
	_, h = l.ContentSize()
	assert.Equal(t, 70, h)
}
