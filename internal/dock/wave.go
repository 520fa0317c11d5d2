package dock

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

// Wave is the input of one wave computation.
type Wave struct {
	// XAbs is the pointer abscissa relative to the left of the flat panel.
	XAbs      int
	Magnitude float64
	FlatWidth float64
	// Width and Height are the panel window extents, 0 for an abstract sweep.
	Width       int
	Height      int
	Align       float64
	Folding     float64
	DirectionUp bool
}

// Magnitude maps a magnitude index in [0, MagnitudeSteps] to [0, 1] on an
// in-out cubic curve.
func Magnitude(index int) float64 {
	if index <= 0 {
		return 0
	}
	if index >= config.MagnitudeSteps {
		return 1
	}
	m := float64(ease.InOutCubic(float32(index), 0, 1, config.MagnitudeSteps))
	return min(max(m, 0), 1)
}

// CalculateWave sets the scale and position of every icon for a pointer at
// w.XAbs and returns the pointed icon, or nil when the pointer sits exactly
// on either end of the flat panel. Rest positions must be up to date.
func CalculateWave(icons []*Icon, w Wave, par config.Params) *Icon {
	if len(icons) == 0 {
		return nil
	}

	gap := float64(par.Icons.Gap)
	amplitude := par.Icons.Amplitude
	sinusoid := float64(par.Icons.SinusoidWidth)
	if sinusoid <= 0 {
		sinusoid = 1
	}
	lineWidth := float64(par.Docks.LineWidth)
	frameMargin := float64(par.Docks.FrameMargin)
	width := float64(w.Width)
	magnitude := w.Magnitude

	xAbs := w.XAbs
	if w.Width > 0 {
		if xAbs < 0 {
			xAbs = 0
		} else if float64(xAbs) > w.FlatWidth {
			xAbs = int(w.FlatWidth)
		}
	}
	x := float64(xAbs)

	fold := func(v float64) float64 {
		return w.Align*width + (v-w.Align*width)*(1-w.Folding)
	}

	pointed := -1
	if xAbs < 0 {
		pointed = 0
	}
	offset := 0.0
	xCumulated := 0.0
	for i, icon := range icons {
		xCumulated = icon.XAtRest
		xMiddle := icon.XAtRest + icon.Width/2

		icon.Phase = (xMiddle-x)/sinusoid*math.Pi + math.Pi/2
		icon.Phase = min(max(icon.Phase, 0), math.Pi)
		icon.Scale = 1 + magnitude*amplitude*math.Sin(icon.Phase)

		unscaled := icon.Scale
		animated := w.Width > 0 && icon.InsertRemoveFactor != 0
		if animated {
			if icon.InsertRemoveFactor > 0 {
				icon.Scale *= icon.InsertRemoveFactor
			} else {
				icon.Scale *= 1 + icon.InsertRemoveFactor
			}
		}

		if w.DirectionUp {
			icon.Y = float64(w.Height) - lineWidth - frameMargin - icon.Scale*icon.Height
		} else {
			icon.Y = lineWidth + frameMargin
		}

		// Icons after the pointed one follow their predecessor.
		if pointed >= 0 {
			if i == 0 {
				icon.X = xCumulated - (w.FlatWidth-width)/2
			} else {
				prev := icons[i-1]
				icon.X = prev.X + (prev.Width+gap)*prev.Scale

				limit := icon.XMax - amplitude*magnitude*(icon.Width+1.5*gap)/8
				if icon.X+icon.Width*icon.Scale > limit && w.Width != 0 {
					delta := icon.X + icon.Width*icon.Scale - (icon.XMax - amplitude*magnitude*(icon.Width+1.5*gap)/16)
					if amplitude != 0 {
						icon.X -= delta * (1 - (icon.Scale-1)/amplitude) * magnitude
					}
				}
			}
			icon.X = fold(icon.X)
		}

		if pointed < 0 && xCumulated+icon.Width+gap/2 >= x && xCumulated-gap/2 <= x {
			pointed = i
			icon.Pointed = xAbs != int(w.FlatWidth) && xAbs != 0
			icon.X = xCumulated - (w.FlatWidth-width)/2 + (1-icon.Scale)*(x-xCumulated+gap/2)
			icon.X = fold(icon.X)
		} else {
			icon.Pointed = false
		}

		if animated {
			sign := -1.0
			if pointed < 0 {
				sign = 1
			}
			if pointed != i {
				offset += icon.Width * (unscaled - icon.Scale) * sign
			} else {
				offset += 2 * (xMiddle - x) * (unscaled - icon.Scale) * sign
			}
		}
	}

	if pointed < 0 {
		// Pointer on the right of every icon.
		pointed = len(icons) - 1
		icon := icons[pointed]
		icon.X = xCumulated - (w.FlatWidth-width)/2 + (1-icon.Scale)*(icon.Width+gap/2)
		icon.X = fold(icon.X)
	}

	// Icons before the pointed one are placed backwards from it.
	for i := pointed; i > 0; i-- {
		icon, prev := icons[i], icons[i-1]
		prev.X = icon.X - (prev.Width+gap)*prev.Scale

		limit := prev.XMin + amplitude*magnitude*(prev.Width+1.5*gap)/8
		if prev.X < limit && w.Width != 0 && float64(xAbs) < width && magnitude > 0 {
			delta := prev.X - (prev.XMin + amplitude*magnitude*(prev.Width+1.5*gap)/16)
			if amplitude != 0 {
				prev.X -= delta * (1 - (prev.Scale-1)/amplitude) * magnitude
			}
		}
		prev.X = fold(prev.X)
	}

	if offset != 0 {
		offset /= 2
		for _, icon := range icons {
			icon.X -= offset
		}
	}

	if icons[pointed].Pointed {
		return icons[pointed]
	}
	return nil
}

// RestPositions lays the icons flat from the left of the flat panel.
func RestPositions(icons []*Icon, flatWidth float64, par config.Params) {
	gap := float64(par.Icons.Gap)
	xCumulated := 0.0
	for _, icon := range icons {
		switch {
		case xCumulated+icon.Width/2 < 0:
			icon.XAtRest = xCumulated + flatWidth
		case xCumulated+icon.Width/2 > flatWidth:
			icon.XAtRest = xCumulated - flatWidth
		default:
			icon.XAtRest = xCumulated
		}
		xCumulated += icon.Width + gap
	}
}

// FlatWidth returns the sum of icon widths and gaps, 0 for no icon.
func FlatWidth(icons []*Icon, par config.Params) float64 {
	if len(icons) == 0 {
		return 0
	}
	w := -float64(par.Icons.Gap)
	for _, icon := range icons {
		w += icon.Width + float64(par.Icons.Gap)
	}
	return w
}

// MaxDockWidth sweeps the wave across every rest position at maximum
// magnitude, records each icon's XMin/XMax envelope and returns the width
// the panel needs to contain it.
func MaxDockWidth(p *Panel, flatWidth, widthConstraint, extraWidth float64) float64 {
	par := p.params
	if len(p.Icons) == 0 {
		return 2*float64(par.Docks.Radius) + float64(par.Docks.LineWidth) + 2*float64(par.Docks.FrameMargin)
	}

	for _, icon := range p.Icons {
		icon.XMax = config.EnvelopeMaxInit
		icon.XMin = config.EnvelopeMinInit
	}

	sweep := func(xAbs int, align float64) {
		CalculateWave(p.Icons, Wave{
			XAbs:        xAbs,
			Magnitude:   p.MagnitudeMax,
			FlatWidth:   flatWidth,
			Align:       align,
			DirectionUp: p.DirectionUp,
		}, par)
		for _, icon := range p.Icons {
			icon.XMax = max(icon.XMax, icon.X+icon.Width*icon.Scale)
			icon.XMin = min(icon.XMin, icon.X)
		}
	}
	for _, icon := range p.Icons {
		sweep(int(icon.XAtRest), 0.5)
	}
	sweep(int(flatWidth)-1, p.Align)

	first, last := p.Icons[0], p.Icons[len(p.Icons)-1]
	maxWidth := (last.XMax-first.XMin)*widthConstraint + extraWidth
	maxWidth = math.Ceil(maxWidth) + 1

	for _, icon := range p.Icons {
		icon.XMin += maxWidth / 2
		icon.XMax += maxWidth / 2
		icon.X = icon.XAtRest
		icon.Scale = 1
	}
	return maxWidth
}

// CurrentDockWidth is the extent of the icons as currently laid out.
func CurrentDockWidth(p *Panel) float64 {
	margin := 2 * float64(p.params.Docks.FrameMargin)
	if len(p.Icons) == 0 {
		return 1 + margin
	}
	first, last := p.Icons[0], p.Icons[len(p.Icons)-1]
	return last.X - first.X + last.Width*last.Scale + margin
}

// FirstDrawnIndex returns the index drawing starts from, so that the pointed
// icon is drawn last and ends up on top.
func FirstDrawnIndex(icons []*Icon) int {
	for i, icon := range icons {
		if icon.Pointed {
			if i == len(icons)-1 {
				return 0
			}
			return i + 1
		}
	}
	return 0
}
