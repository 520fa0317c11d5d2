package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Params is the immutable set of parameters every layout component reads.
// It is built once from a UserConfig and passed by value.
type Params struct {
	Icons      IconsParams
	Docks      DocksParams
	Backends   BackendsParams
	Indicators IndicatorsParams
}

// IconsParams holds the icon geometry and magnification settings.
type IconsParams struct {
	Gap                  int
	SinusoidWidth        int
	Amplitude            float64
	LabelSize            int
	TextAlwaysHorizontal bool
	DefaultWidth         int
	DefaultHeight        int
}

// DocksParams holds the frame and behaviour settings shared by every panel.
type DocksParams struct {
	Radius             int
	LineWidth          int
	FrameMargin        int
	MaxAuthorizedWidth int
	LeaveSubPanelDelay time.Duration
	ShowSubPanelDelay  time.Duration
	AnimateSubPanels   bool

	BackgroundImage  string
	BackgroundRepeat bool
	BackgroundAlpha  float64
	StripesBright    RGBA
	StripesDark      RGBA
	Stripes          int
	StripesWidth     float64
	StripesAngle     float64
}

// BackendsParams holds the animation and sub-panel scaling settings.
type BackendsParams struct {
	SubPanelRatio  float64
	GrowDuration   time.Duration
	ShrinkDuration time.Duration
	UnfoldDuration time.Duration
}

// IndicatorsParams holds the class indicator settings.
type IndicatorsParams struct {
	UseClassIndicators bool
}

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Params converts the user configuration into layout parameters.
// Invalid colours fall back to the defaults; ValidateConfig reports them.
func (c *UserConfig) Params() Params {
	def := DefaultConfig()
	bright, err := ParseHexColor(c.Docks.StripesBright)
	if err != nil {
		bright, _ = ParseHexColor(def.Docks.StripesBright)
	}
	dark, err := ParseHexColor(c.Docks.StripesDark)
	if err != nil {
		dark, _ = ParseHexColor(def.Docks.StripesDark)
	}

	return Params{
		Icons: IconsParams{
			Gap:                  c.Icons.Gap,
			SinusoidWidth:        c.Icons.SinusoidWidth,
			Amplitude:            c.Icons.Amplitude,
			LabelSize:            c.Icons.LabelSize,
			TextAlwaysHorizontal: c.Icons.TextAlwaysHorizontal,
			DefaultWidth:         c.Icons.DefaultWidth,
			DefaultHeight:        c.Icons.DefaultHeight,
		},
		Docks: DocksParams{
			Radius:             c.Docks.Radius,
			LineWidth:          c.Docks.LineWidth,
			FrameMargin:        c.Docks.FrameMargin,
			MaxAuthorizedWidth: c.Docks.MaxAuthorizedWidth,
			LeaveSubPanelDelay: time.Duration(c.Docks.LeaveSubPanelDelay) * time.Millisecond,
			ShowSubPanelDelay:  time.Duration(c.Docks.ShowSubPanelDelay) * time.Millisecond,
			AnimateSubPanels:   c.Docks.AnimateSubPanels == nil || *c.Docks.AnimateSubPanels,
			BackgroundImage:    c.Docks.BackgroundImage,
			BackgroundRepeat:   c.Docks.BackgroundRepeat,
			BackgroundAlpha:    c.Docks.BackgroundAlpha,
			StripesBright:      bright,
			StripesDark:        dark,
			Stripes:            c.Docks.Stripes,
			StripesWidth:       c.Docks.StripesWidth,
			StripesAngle:       c.Docks.StripesAngle,
		},
		Backends: BackendsParams{
			SubPanelRatio:  c.Backends.SubPanelRatio,
			GrowDuration:   time.Duration(c.Backends.GrowDuration) * time.Millisecond,
			ShrinkDuration: time.Duration(c.Backends.ShrinkDuration) * time.Millisecond,
			UnfoldDuration: time.Duration(c.Backends.UnfoldDuration) * time.Millisecond,
		},
		Indicators: IndicatorsParams{
			UseClassIndicators: c.Indicators.UseClassIndicators,
		},
	}
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	return DefaultConfig().Params()
}
