package config

import (
	"fmt"
	"slices"
)

// ValidationIssue is one problem found in a configuration
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects the errors and warnings of a configuration
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether the configuration cannot be used
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// HasWarnings reports whether the configuration has non-fatal problems
func (v *ValidationResult) HasWarnings() bool {
	return len(v.Warnings) > 0
}

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

var (
	validPositions   = []string{"bottom", "top", "left", "right"}
	validVisibility  = []string{"normal", "reserve", "auto-hide"}
	validIconKinds   = []string{"launcher", "application", "applet", "separator", "container"}
	validLogLevels   = []string{"debug", "info", "warn", "error"}
	maxIconDimension = 512
)

// ValidateConfig checks a filled configuration
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}

	if !slices.Contains(validLogLevels, cfg.Appearance.LogLevel) {
		v.addWarning("appearance", "log_level", "unknown level %q, using info", cfg.Appearance.LogLevel)
	}

	if cfg.Icons.Amplitude < 0 {
		v.addError("icons", "amplitude", "must not be negative (got %g)", cfg.Icons.Amplitude)
	}
	if cfg.Icons.SinusoidWidth < cfg.Icons.DefaultWidth {
		v.addWarning("icons", "sinusoid_width", "narrower than an icon (%d < %d), the wave will look abrupt",
			cfg.Icons.SinusoidWidth, cfg.Icons.DefaultWidth)
	}
	if cfg.Icons.DefaultWidth > maxIconDimension || cfg.Icons.DefaultHeight > maxIconDimension {
		v.addError("icons", "default_width", "icons are limited to %dx%d", maxIconDimension, maxIconDimension)
	}

	if cfg.Docks.LineWidth < 0 || cfg.Docks.FrameMargin < 0 || cfg.Docks.Radius < 0 {
		v.addError("docks", "radius", "frame dimensions must not be negative")
	}
	if cfg.Docks.MaxAuthorizedWidth < 0 {
		v.addError("docks", "max_authorized_width", "must not be negative (got %d)", cfg.Docks.MaxAuthorizedWidth)
	}
	if cfg.Docks.BackgroundAlpha < 0 || cfg.Docks.BackgroundAlpha > 1 {
		v.addError("docks", "background_alpha", "must be within [0, 1] (got %g)", cfg.Docks.BackgroundAlpha)
	}
	if cfg.Docks.StripesWidth < 0 || cfg.Docks.StripesWidth > 1 {
		v.addError("docks", "stripes_width", "must be within [0, 1] (got %g)", cfg.Docks.StripesWidth)
	}
	if _, err := ParseHexColor(cfg.Docks.StripesBright); err != nil {
		v.addError("docks", "stripes_bright", "%v", err)
	}
	if _, err := ParseHexColor(cfg.Docks.StripesDark); err != nil {
		v.addError("docks", "stripes_dark", "%v", err)
	}
	if cfg.Docks.LeaveSubPanelDelay < int(MinLeaveDelay.Milliseconds()) {
		v.addWarning("docks", "leave_sub_panel_delay", "raised to %d ms", MinLeaveDelay.Milliseconds())
	}

	if cfg.Backends.SubPanelRatio <= 0 || cfg.Backends.SubPanelRatio > 1 {
		v.addError("backends", "sub_panel_ratio", "must be within (0, 1] (got %g)", cfg.Backends.SubPanelRatio)
	}

	names := make(map[string]bool, len(cfg.Panels))
	for _, p := range cfg.Panels {
		if p.Name == "" {
			v.addError("panels", "name", "every panel needs a name")
			continue
		}
		if names[p.Name] {
			v.addError("panels", "name", "duplicate panel %q", p.Name)
		}
		names[p.Name] = true
		if !slices.Contains(validPositions, p.Position) {
			v.addError("panels", "position", "panel %q: unknown position %q", p.Name, p.Position)
		}
		if !slices.Contains(validVisibility, p.Visibility) {
			v.addError("panels", "visibility", "panel %q: unknown visibility %q", p.Name, p.Visibility)
		}
		if p.Alignment != nil && (*p.Alignment < 0 || *p.Alignment > 1) {
			v.addError("panels", "alignment", "panel %q: must be within [0, 1]", p.Name)
		}
		for _, ic := range p.Icons {
			if !slices.Contains(validIconKinds, ic.Kind) {
				v.addError("panels", "icons.kind", "panel %q: unknown icon kind %q", p.Name, ic.Kind)
			}
			if ic.Width < 0 || ic.Height < 0 || ic.Width > maxIconDimension || ic.Height > maxIconDimension {
				v.addError("panels", "icons.width", "panel %q: icon %q has an invalid size", p.Name, ic.Name)
			}
		}
	}
	for _, p := range cfg.Panels {
		for _, ic := range p.Icons {
			if ic.SubPanel == "" {
				continue
			}
			if !names[ic.SubPanel] {
				v.addError("panels", "icons.sub_panel", "panel %q: icon %q opens unknown panel %q", p.Name, ic.Name, ic.SubPanel)
			}
			if ic.SubPanel == p.Name {
				v.addError("panels", "icons.sub_panel", "panel %q: icon %q opens its own panel", p.Name, ic.Name)
			}
		}
	}

	return v
}
