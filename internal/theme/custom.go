package theme

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

// panelColors holds the optional "panel" section of custom theme files, by theme ID.
var panelColors = map[string]PanelColors{}

// PanelColors overrides the stripe stops of a theme.
type PanelColors struct {
	StripesBright string `json:"stripes_bright"`
	StripesDark   string `json:"stripes_dark"`
}

type panelSection struct {
	Panel *PanelColors `json:"panel"`
}

// GetThemesDir returns the path to the custom themes directory (~/.config/dockwave/themes/).
// Creates the directory if it doesn't exist.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("dockwave/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes reads all *.json files from the themes directory
// and registers each with bubbletint. Bad files are logged and skipped.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		t, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			log.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a JSON theme. The ID defaults to the file name,
// missing colours are filled in and an optional "panel" section is remembered.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path is from user's config directory, reading custom themes is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}
	var section panelSection
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("failed to parse theme panel section: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)

	if section.Panel != nil {
		panelColors[t.ID] = *section.Panel
	}

	return &t, nil
}

// PanelOverride returns the panel section of the current theme, if any.
func PanelOverride() (PanelColors, bool) {
	t := Current()
	if t == nil {
		return PanelColors{}, false
	}
	pc, ok := panelColors[t.ID]
	return pc, ok
}

// fillDefaults fills nil colours: fg/bg and the normal colours with xterm
// defaults, the cursor with fg and the bright colours with their normal variant.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		c   **tint.Color
		hex string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, b := range base {
		if *b.c == nil {
			*b.c = tint.FromHex(b.hex)
		}
	}

	derived := []struct{ dst, src **tint.Color }{
		{&t.Cursor, &t.Fg},
		{&t.BrightBlack, &t.Black},
		{&t.BrightRed, &t.Red},
		{&t.BrightGreen, &t.Green},
		{&t.BrightYellow, &t.Yellow},
		{&t.BrightBlue, &t.Blue},
		{&t.BrightPurple, &t.Purple},
		{&t.BrightCyan, &t.Cyan},
		{&t.BrightWhite, &t.White},
	}
	for _, d := range derived {
		if *d.dst == nil {
			*d.dst = copyColor(*d.src)
		}
	}
}

// copyColor creates a copy of a tint.Color.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}

// hexOr parses hex with tint, falling back to def on an empty string.
func hexOr(hex string, def color.Color) color.Color {
	if hex == "" {
		return def
	}
	if c := tint.FromHex(hex); c != nil {
		return c
	}
	return def
}
