package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/milk9111/getitemanim/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsEmbeddedItems(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, true, 3)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	for _, want := range []string{"Potion", "Gold Key", "Short Sword", "Equip1", "+3"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderTableAnimationOff(t *testing.T) {
	cfg := notify.DefaultConfig()
	cfg.SoundEnabled = false
	plain := &notify.Item{ID: 1, Name: "Potion"}
	forced := &notify.Item{ID: 2, Name: "Gold Coin", Override: notify.ItemOverride{ForceAnimation: true}}
	db := notify.NewItemDatabase(plain, forced)

	out := renderTable(cfg, db, false, 1)

	assert.Contains(t, out, "Potion")
	assert.Contains(t, out, "on")
	assert.Contains(t, out, "off")
}

func TestConfigErrorsSplitsJoined(t *testing.T) {
	err := errors.Join(errors.New("first"), errors.New("second"))
	assert.Equal(t, []string{"first", "second"}, configErrors(err))
	assert.Equal(t, []string{"single"}, configErrors(errors.New("single")))
}
