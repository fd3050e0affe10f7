// Command pickupcheck loads the pickup parameters and item database the game
// would use, reports every invalid value, and prints the effective pickup
// settings of each item.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/milk9111/getitemanim/notify"
	"github.com/milk9111/getitemanim/prefabs"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	offStyle    = cellStyle.Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

func main() {
	root := flag.String("C", ".", "directory containing the prefabs/ override folder")
	animation := flag.Bool("animation", true, "runtime animation toggle to resolve against")
	amount := flag.Int("amount", 1, "amount used for the caption preview")
	flag.Parse()

	if err := os.Chdir(*root); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errorStyle.Render(err.Error()))
		os.Exit(2)
	}
	os.Exit(run(os.Stdout, os.Stderr, *animation, *amount))
}

func run(stdout, stderr io.Writer, animationOn bool, amount int) int {
	plugin, err := prefabs.LoadPluginSpec()
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("load %s: %v", prefabs.PluginFile, err)))
		return 1
	}
	cfg, err := notify.LoadConfig(plugin.Parameters)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("invalid parameters:"))
		for _, line := range configErrors(err) {
			fmt.Fprintln(stderr, errorStyle.Render("  "+line))
		}
		return 1
	}
	items, err := notify.LoadItems()
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
		return 1
	}

	fmt.Fprintln(stdout, titleStyle.Render(fmt.Sprintf("%s: %d items", plugin.Name, items.Len())))
	fmt.Fprintln(stdout, renderTable(cfg, items, animationOn, amount))
	return 0
}

// configErrors flattens a joined LoadConfig error into one line per
// parameter.
func configErrors(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		lines := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			lines = append(lines, e.Error())
		}
		return lines
	}
	return strings.Split(err.Error(), "\n")
}

func renderTable(cfg *notify.Config, items *notify.ItemDatabase, animationOn bool, amount int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Name", "Kind", "Sound", "Volume", "Pitch", "Pan", "Animation", "Caption")

	disabled := make(map[int]bool)
	for i, item := range items.Items() {
		p := notify.Resolve(cfg, &item.Override, animationOn)
		sound := "-"
		if p.SoundEnabled {
			sound = p.Sound
		}
		anim := "off"
		if p.AnimationEnabled {
			anim = "on"
		}
		if !p.SoundEnabled && !p.AnimationEnabled {
			disabled[i] = true
		}
		t.Row(
			strconv.Itoa(item.ID),
			item.Name,
			item.Kind.String(),
			sound,
			formatFloat(p.Volume),
			formatFloat(p.Pitch),
			formatFloat(p.Pan),
			anim,
			notify.Caption(amount, item.Name, p.ShowName, cfg.GroupDigits),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case disabled[row]:
			return offStyle
		default:
			return cellStyle
		}
	})
	return t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
