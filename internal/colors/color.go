// Package colors decorates display labels with a color chosen from an
// ordered keyword table.
package colors

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Color names a supported label color.
type Color string

const (
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"
	Gray    Color = "gray"
	Orange  Color = "orange"
	Pink    Color = "pink"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var palette = map[Color]lipgloss.Color{
	Black:   lipgloss.Color(flavor.Crust().Hex),
	Red:     lipgloss.Color(flavor.Red().Hex),
	Green:   lipgloss.Color(flavor.Green().Hex),
	Yellow:  lipgloss.Color(flavor.Yellow().Hex),
	Blue:    lipgloss.Color(flavor.Blue().Hex),
	Magenta: lipgloss.Color(flavor.Mauve().Hex),
	Cyan:    lipgloss.Color(flavor.Teal().Hex),
	White:   lipgloss.Color(flavor.Text().Hex),
	Gray:    lipgloss.Color(flavor.Overlay0().Hex),
	Orange:  lipgloss.Color(flavor.Peach().Hex),
	Pink:    lipgloss.Color(flavor.Pink().Hex),
}

var aliases = map[string]Color{
	"grey":   Gray,
	"purple": Magenta,
}

// Parse resolves a color name, case-insensitively. ok is false for names
// that are not supported.
func Parse(name string) (c Color, ok bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, found := aliases[n]; found {
		return a, true
	}
	c = Color(n)
	_, ok = palette[c]
	return c, ok
}

// Lookup returns the style for a color name. Unknown names get an unstyled
// style and ok=false; it never fails.
func Lookup(name string) (style lipgloss.Style, ok bool) {
	c, ok := Parse(name)
	if !ok {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Foreground(palette[c]), true
}

// Names returns the supported color names.
func Names() []string {
	return []string{
		string(Black), string(Red), string(Green), string(Yellow), string(Blue),
		string(Magenta), string(Cyan), string(White), string(Gray), string(Orange), string(Pink),
	}
}
