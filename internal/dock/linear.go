package dock

import "math"

// LinearRenderer is the default view: icons in a straight row over a
// rounded frame.
type LinearRenderer struct{}

// ComputeSize sets the extents of p for its current ratio.
func (LinearRenderer) ComputeSize(p *Panel) {
	par := p.params
	ratio := p.Ratio
	lineWidth := float64(par.Docks.LineWidth)
	frameMargin := float64(par.Docks.FrameMargin)
	iconHeight := p.MaxIconHeight * ratio

	RestPositions(p.Icons, p.FlatWidth, par)

	p.DecorationsHeight = int(iconHeight + 2*frameMargin)
	radius := min(float64(par.Docks.Radius), float64(p.DecorationsHeight+par.Docks.LineWidth)/2-1)
	radius = max(radius, 0)
	extra := lineWidth + 2*(radius+frameMargin)

	p.MaxWidth = int(math.Ceil(MaxDockWidth(p, p.FlatWidth, 1, extra)))
	p.MaxHeight = int((1+par.Icons.Amplitude)*iconHeight) + par.Icons.LabelSize + par.Docks.LineWidth + par.Docks.FrameMargin
	p.MinHeight = int(iconHeight) + 2*par.Docks.FrameMargin + 2*par.Docks.LineWidth
	p.MinWidth = min(p.MaxWidth, int(math.Ceil(p.FlatWidth+extra)))
	p.DecorationsWidth = p.MinWidth

	p.LeftMargin = (p.MaxWidth - p.MinWidth) / 2
	p.MinRightMargin = p.LeftMargin
}

// CalculateIcons applies the wave for the current pointer, classifies the
// pointer and marks the icons making room for a drop.
func (LinearRenderer) CalculateIcons(p *Panel) *Icon {
	pointed := ApplyWaveEffect(p)
	CheckMouseInsideLinear(p)
	for _, icon := range p.Icons {
		icon.DrawX = icon.X
		icon.DrawY = icon.Y
		icon.Alpha = 1
	}
	CheckCanDropLinear(p)
	return pointed
}

// SetSubPanelPosition sets the alignment and gaps of the sub-panel opened by
// pointed so that it shows up next to it.
func (LinearRenderer) SetSubPanelPosition(pointed *Icon, parent *Panel) {
	sub := pointed.SubPanel
	if sub == nil {
		return
	}
	iX := int(pointed.DrawX + pointed.Width*pointed.Scale/2)
	anchor := iX + parent.Container.X - parent.screenOffsetX()

	if sub.Horizontal == parent.Horizontal {
		sub.Align = 0.5
		sub.GapX = anchor - parent.screenWidth()/2
		sub.GapY = parent.GapY + parent.ActiveHeight
		return
	}

	depth := parent.GapY + parent.ActiveHeight
	if parent.DirectionUp {
		sub.Align = 1
		sub.GapX = -depth
		sub.GapY = parent.screenWidth() - anchor - sub.MaxHeight/2
	} else {
		sub.Align = 0
		sub.GapX = depth
		sub.GapY = iX + parent.Container.X - sub.MaxHeight/2
	}
}

// ApplyWaveEffect runs the wave for the panel's pointer and magnitude.
func ApplyWaveEffect(p *Panel) *Icon {
	xAbs := int(float64(p.Container.MouseX) - p.flatOffset())
	return CalculateWave(p.Icons, Wave{
		XAbs:        xAbs,
		Magnitude:   Magnitude(p.MagnitudeIndex),
		FlatWidth:   p.FlatWidth,
		Width:       p.Container.Width,
		Height:      p.Container.Height,
		Align:       p.Align,
		Folding:     p.Folding,
		DirectionUp: p.DirectionUp,
	}, p.params)
}
