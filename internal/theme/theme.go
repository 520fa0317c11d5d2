// Package theme provides the colour palette used to paint panels and the CLI.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and the built-in palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Warn("error loading custom themes", "err", err)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q", themeName)
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// StripesBright returns the bright stop of the default panel background.
func StripesBright() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e6e6f0")
	}
	if pc, ok := PanelOverride(); ok {
		return hexOr(pc.StripesBright, t.BrightWhite)
	}
	return t.BrightWhite
}

// StripesDark returns the dark stop of the default panel background.
func StripesDark() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#8c8ca0")
	}
	if pc, ok := PanelOverride(); ok {
		return hexOr(pc.StripesDark, t.Bg)
	}
	return t.Bg
}

// FrameLine returns the colour of the panel frame.
func FrameLine() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#303040")
	}
	return t.BrightBlack
}

// IconFill returns the placeholder colour of an icon of the given kind.
func IconFill(kind string) color.Color {
	t := Current()
	if t == nil {
		switch kind {
		case "application":
			return lipgloss.Color("#5c9ded")
		case "applet":
			return lipgloss.Color("#e0a050")
		case "separator":
			return lipgloss.Color("#808090")
		case "container":
			return lipgloss.Color("#a070d0")
		default:
			return lipgloss.Color("#50b070")
		}
	}
	switch kind {
	case "application":
		return t.Blue
	case "applet":
		return t.Yellow
	case "separator":
		return t.BrightBlack
	case "container":
		return t.Purple
	default:
		return t.Green
	}
}

// PointedOutline returns the outline colour of the pointed icon.
func PointedOutline() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.Fg
}

// LayoutHeader returns the header colour of the layout table.
func LayoutHeader() color.Color {
	return lipgloss.Color("12")
}

// LayoutPointed returns the colour of the pointed row of the layout table.
func LayoutPointed() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// LayoutDim returns the dimmed colour of the layout table.
func LayoutDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
