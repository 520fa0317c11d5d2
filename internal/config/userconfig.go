package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "dockwave/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Icons      IconsConfig      `toml:"icons"`
	Docks      DocksConfig      `toml:"docks"`
	Backends   BackendsConfig   `toml:"backends"`
	Indicators IndicatorsConfig `toml:"indicators"`
	Panels     []PanelConfig    `toml:"panels"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme    string `toml:"theme"`     // Color theme name (e.g., dracula, nord, my-custom-theme)
	LogLevel string `toml:"log_level"` // Log level: debug, info, warn, error (default: info)
}

// IconsConfig holds icon geometry and magnification settings
type IconsConfig struct {
	Gap                  int     `toml:"gap"`                    // Gap between two icons in pixels (default: 4)
	SinusoidWidth        int     `toml:"sinusoid_width"`         // Width of the magnification wave in pixels (default: 250)
	Amplitude            float64 `toml:"amplitude"`              // Maximum extra zoom of the pointed icon (default: 1.0)
	LabelSize            int     `toml:"label_size"`             // Height reserved for labels (default: 14)
	TextAlwaysHorizontal bool    `toml:"text_always_horizontal"` // Keep labels horizontal on vertical panels
	DefaultWidth         int     `toml:"default_width"`          // Icon width when a launcher does not set one (default: 48)
	DefaultHeight        int     `toml:"default_height"`         // Icon height when a launcher does not set one (default: 48)
}

// DocksConfig holds frame and behaviour settings shared by every panel
type DocksConfig struct {
	Radius             int     `toml:"radius"`                // Corner radius of the frame (default: 12)
	LineWidth          int     `toml:"line_width"`            // Frame line width (default: 1)
	FrameMargin        int     `toml:"frame_margin"`          // Margin between the frame and the icons (default: 4)
	MaxAuthorizedWidth int     `toml:"max_authorized_width"`  // Maximum panel width, 0 means the screen width
	LeaveSubPanelDelay int     `toml:"leave_sub_panel_delay"` // Delay in ms before a left panel shrinks (floor: 330)
	ShowSubPanelDelay  int     `toml:"show_sub_panel_delay"`  // Delay in ms before a pointed sub-panel opens (default: 300)
	AnimateSubPanels   *bool   `toml:"animate_sub_panels"`    // Unfold sub-panels when they open (default: true)
	BackgroundImage    string  `toml:"background_image"`      // Background image file, empty for stripes
	BackgroundRepeat   bool    `toml:"background_repeat"`     // Tile the background image instead of scaling it
	BackgroundAlpha    float64 `toml:"background_alpha"`      // Opacity of the background image (default: 1.0)
	StripesBright      string  `toml:"stripes_bright"`        // Bright stripe colour (#rrggbbaa)
	StripesDark        string  `toml:"stripes_dark"`          // Dark stripe colour (#rrggbbaa)
	Stripes            int     `toml:"stripes"`               // Number of stripes, 0 for a plain gradient
	StripesWidth       float64 `toml:"stripes_width"`         // Width of a stripe relative to its period, in [0, 1]
	StripesAngle       float64 `toml:"stripes_angle"`         // Stripe angle in degrees
}

// BackendsConfig holds animation and sub-panel scaling settings
type BackendsConfig struct {
	SubPanelRatio  float64 `toml:"sub_panel_ratio"` // Icon size ratio of sub-panels relative to the main panel (default: 0.8)
	GrowDuration   int     `toml:"grow_duration"`   // Magnification duration in ms (default: 200)
	ShrinkDuration int     `toml:"shrink_duration"` // Shrink duration in ms (default: 300)
	UnfoldDuration int     `toml:"unfold_duration"` // Sub-panel unfold duration in ms (default: 250)
}

// IndicatorsConfig holds class indicator settings
type IndicatorsConfig struct {
	UseClassIndicators bool `toml:"use_class_indicators"` // Show one indicator per class instead of grouping windows
}

// PanelConfig describes one panel and its icons
type PanelConfig struct {
	Name       string       `toml:"name"`       // Unique panel name; sub-panels are referenced by it
	Position   string       `toml:"position"`   // Screen edge: bottom, top, left, right (default: bottom)
	Alignment  *float64     `toml:"alignment"`  // Position along the edge in [0, 1] (default: 0.5)
	GapX       int          `toml:"gap_x"`      // Horizontal offset from the aligned position
	GapY       int          `toml:"gap_y"`      // Offset from the screen edge
	Visibility string       `toml:"visibility"` // normal, reserve, auto-hide (default: normal)
	Icons      []IconConfig `toml:"icons"`
}

// IconConfig describes one launcher-like icon
type IconConfig struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`      // launcher, application, applet, separator, container (default: launcher)
	Class    string `toml:"class"`     // Application class
	Width    int    `toml:"width"`     // Nominal width, 0 means icons.default_width
	Height   int    `toml:"height"`    // Nominal height, 0 means icons.default_height
	SubPanel string `toml:"sub_panel"` // Name of the panel this icon opens
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	center := 0.5
	animate := true
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:    "",
			LogLevel: "info",
		},
		Icons: IconsConfig{
			Gap:           4,
			SinusoidWidth: 250,
			Amplitude:     1.0,
			LabelSize:     14,
			DefaultWidth:  48,
			DefaultHeight: 48,
		},
		Docks: DocksConfig{
			Radius:             12,
			LineWidth:          1,
			FrameMargin:        4,
			MaxAuthorizedWidth: 0,
			LeaveSubPanelDelay: 330,
			ShowSubPanelDelay:  300,
			AnimateSubPanels:   &animate,
			BackgroundAlpha:    1.0,
			StripesBright:      "#e6e6f0e0",
			StripesDark:        "#8c8ca0e0",
			Stripes:            7,
			StripesWidth:       0.02,
			StripesAngle:       30,
		},
		Backends: BackendsConfig{
			SubPanelRatio:  0.8,
			GrowDuration:   200,
			ShrinkDuration: 300,
			UnfoldDuration: 250,
		},
		Panels: []PanelConfig{
			{
				Name:       "main",
				Position:   "bottom",
				Alignment:  &center,
				Visibility: "normal",
				Icons: []IconConfig{
					{Name: "Terminal", Kind: "launcher", Class: "terminal"},
					{Name: "Browser", Kind: "launcher", Class: "browser"},
					{Name: "Files", Kind: "launcher", Class: "files"},
					{Kind: "separator", Width: 12},
					{Name: "Tools", Kind: "container", SubPanel: "tools"},
				},
			},
			{
				Name:       "tools",
				Position:   "bottom",
				Alignment:  &center,
				Visibility: "normal",
				Icons: []IconConfig{
					{Name: "Editor", Kind: "launcher", Class: "editor"},
					{Name: "Calculator", Kind: "launcher", Class: "calculator"},
				},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom loads, completes and validates the configuration at path
func LoadUserConfigFrom(configPath string) (*UserConfig, error) {
	// #nosec G304 - configPath is from XDG search or the command line, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate and fill in missing sections with defaults
	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingIcons(&cfg, defaultCfg)
	fillMissingDocks(&cfg, defaultCfg)
	fillMissingBackends(&cfg, defaultCfg)
	fillMissingPanels(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			log.Error("config error", "section", err.Field, "key", err.Key, "message", err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	// Log warnings (non-fatal)
	for _, warn := range validation.Warnings {
		log.Warn("config warning", "section", warn.Field, "key", warn.Key, "message", warn.Message)
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteConfig(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to configPath with the documentation header
func WriteConfig(configPath string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# dockwave Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# ICONS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# sinusoid_width: width of the magnification wave, in pixels\n")
	sb.WriteString("# amplitude: extra zoom of the pointed icon (1.0 doubles its size)\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# DOCKS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# max_authorized_width: 0 uses the whole screen width\n")
	sb.WriteString("# leave_sub_panel_delay: never shorter than 330 ms\n")
	sb.WriteString("# background_image: leave empty to draw stripes\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# PANELS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# position: bottom, top, left, right\n")
	sb.WriteString("# visibility: normal, reserve, auto-hide\n")
	sb.WriteString("# An icon with sub_panel = \"name\" opens the panel called name.\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.LogLevel == "" {
		cfg.Appearance.LogLevel = defaultCfg.Appearance.LogLevel
	}
}

// fillMissingIcons fills in any missing icon settings with defaults
func fillMissingIcons(cfg, defaultCfg *UserConfig) {
	if cfg.Icons.Gap < 0 {
		cfg.Icons.Gap = defaultCfg.Icons.Gap
	}
	if cfg.Icons.SinusoidWidth <= 0 {
		cfg.Icons.SinusoidWidth = defaultCfg.Icons.SinusoidWidth
	}
	if cfg.Icons.Amplitude == 0 {
		cfg.Icons.Amplitude = defaultCfg.Icons.Amplitude
	}
	if cfg.Icons.LabelSize == 0 {
		cfg.Icons.LabelSize = defaultCfg.Icons.LabelSize
	}
	if cfg.Icons.DefaultWidth <= 0 {
		cfg.Icons.DefaultWidth = defaultCfg.Icons.DefaultWidth
	}
	if cfg.Icons.DefaultHeight <= 0 {
		cfg.Icons.DefaultHeight = defaultCfg.Icons.DefaultHeight
	}
}

// fillMissingDocks fills in any missing frame settings with defaults
func fillMissingDocks(cfg, defaultCfg *UserConfig) {
	if cfg.Docks.Radius == 0 {
		cfg.Docks.Radius = defaultCfg.Docks.Radius
	}
	if cfg.Docks.LineWidth == 0 {
		cfg.Docks.LineWidth = defaultCfg.Docks.LineWidth
	}
	if cfg.Docks.FrameMargin == 0 {
		cfg.Docks.FrameMargin = defaultCfg.Docks.FrameMargin
	}
	if cfg.Docks.LeaveSubPanelDelay == 0 {
		cfg.Docks.LeaveSubPanelDelay = defaultCfg.Docks.LeaveSubPanelDelay
	}
	if cfg.Docks.ShowSubPanelDelay == 0 {
		cfg.Docks.ShowSubPanelDelay = defaultCfg.Docks.ShowSubPanelDelay
	}
	if cfg.Docks.BackgroundAlpha == 0 {
		cfg.Docks.BackgroundAlpha = defaultCfg.Docks.BackgroundAlpha
	}
	if cfg.Docks.StripesBright == "" {
		cfg.Docks.StripesBright = defaultCfg.Docks.StripesBright
	}
	if cfg.Docks.StripesDark == "" {
		cfg.Docks.StripesDark = defaultCfg.Docks.StripesDark
	}
	// Stripes and StripesWidth keep their zero values: 0 stripes is a plain gradient
}

// fillMissingBackends fills in any missing animation settings with defaults
func fillMissingBackends(cfg, defaultCfg *UserConfig) {
	if cfg.Backends.SubPanelRatio == 0 {
		cfg.Backends.SubPanelRatio = defaultCfg.Backends.SubPanelRatio
	}
	if cfg.Backends.GrowDuration <= 0 {
		cfg.Backends.GrowDuration = defaultCfg.Backends.GrowDuration
	}
	if cfg.Backends.ShrinkDuration <= 0 {
		cfg.Backends.ShrinkDuration = defaultCfg.Backends.ShrinkDuration
	}
	if cfg.Backends.UnfoldDuration <= 0 {
		cfg.Backends.UnfoldDuration = defaultCfg.Backends.UnfoldDuration
	}
}

// fillMissingPanels fills in the default panels and per-panel defaults
func fillMissingPanels(cfg, defaultCfg *UserConfig) {
	if len(cfg.Panels) == 0 {
		cfg.Panels = defaultCfg.Panels
		return
	}
	for i := range cfg.Panels {
		p := &cfg.Panels[i]
		if p.Position == "" {
			p.Position = "bottom"
		}
		if p.Alignment == nil {
			center := 0.5
			p.Alignment = &center
		}
		if p.Visibility == "" {
			p.Visibility = "normal"
		}
		for j := range p.Icons {
			if p.Icons[j].Kind == "" {
				p.Icons[j].Kind = "launcher"
			}
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
