package config

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwave/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ThemeName is the theme to load
	ThemeName string

	// Debug switches the log level to debug
	Debug bool

	// MaxAuthorizedWidth overrides the maximum panel width (0 means use config)
	MaxAuthorizedWidth int

	// Amplitude overrides the magnification amplitude (0 means use config)
	Amplitude float64

	// Position overrides the screen edge of every top-level panel
	Position string

	// Visibility overrides the visibility of every top-level panel
	Visibility string

	// BackgroundImage overrides the background image file
	BackgroundImage string

	// NoSubPanelAnimation disables the unfold animation of sub-panels
	NoSubPanelAnimation bool
}

// ApplyOverrides applies CLI flag overrides on top of the user config.
// A nil userConfig is replaced by the default configuration.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) *UserConfig {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}

	if overrides.Debug {
		userConfig.Appearance.LogLevel = "debug"
	}

	if overrides.MaxAuthorizedWidth > 0 {
		userConfig.Docks.MaxAuthorizedWidth = overrides.MaxAuthorizedWidth
	}

	if overrides.Amplitude > 0 {
		userConfig.Icons.Amplitude = overrides.Amplitude
	}

	if overrides.BackgroundImage != "" {
		userConfig.Docks.BackgroundImage = overrides.BackgroundImage
	}

	if overrides.NoSubPanelAnimation {
		animate := false
		userConfig.Docks.AnimateSubPanels = &animate
	}

	// Position and visibility only make sense for panels that are not opened by an icon
	if overrides.Position != "" || overrides.Visibility != "" {
		sub := subPanelNames(userConfig)
		for i := range userConfig.Panels {
			if sub[userConfig.Panels[i].Name] {
				continue
			}
			if overrides.Position != "" {
				userConfig.Panels[i].Position = overrides.Position
			}
			if overrides.Visibility != "" {
				userConfig.Panels[i].Visibility = overrides.Visibility
			}
		}
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		userConfig.Appearance.Theme = themeName
		if err := theme.Initialize(themeName); err != nil {
			log.Warn("failed to load theme", "theme", themeName, "err", err)
		}
		if userConfig.Docks.StripesBright == DefaultConfig().Docks.StripesBright {
			userConfig.Docks.StripesBright = theme.ColorToString(theme.StripesBright()) + "e0"
		}
		if userConfig.Docks.StripesDark == DefaultConfig().Docks.StripesDark {
			userConfig.Docks.StripesDark = theme.ColorToString(theme.StripesDark()) + "e0"
		}
	}

	return userConfig
}

// subPanelNames returns the names of the panels opened by an icon
func subPanelNames(cfg *UserConfig) map[string]bool {
	sub := make(map[string]bool)
	for _, p := range cfg.Panels {
		for _, ic := range p.Icons {
			if ic.SubPanel != "" {
				sub[ic.SubPanel] = true
			}
		}
	}
	return sub
}

// IsSubPanel reports whether the panel called name is opened by an icon
func (c *UserConfig) IsSubPanel(name string) bool {
	return subPanelNames(c)[name]
}
