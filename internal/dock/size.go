package dock

import "github.com/Gaurav-Gosain/dockwave/internal/config"

// UpdateSize recomputes the panel extents and the ratio that fits them on
// screen, then refreshes everything that depends on the size. It does nothing
// while a size update is already scheduled, the scheduled one will run.
func (p *Panel) UpdateSize() {
	if p.closed || p.sizeTask.Pending() {
		return
	}
	prevMaxWidth, prevMaxHeight := p.MaxWidth, p.MaxHeight

	// Extents are computed from the nominal sizes, ratio 1.
	p.rescaleIcons(1)
	p.FlatWidth = FlatWidth(p.Icons, p.params)
	p.computeMaxIconHeight()
	p.computeSize()

	screenHeight := p.screenHeight()
	authorized := p.MaxAuthorizedWidth()
	maxRatio := p.maxRatio()

	n := 0
	for {
		prevRatio := p.Ratio
		ratio := p.Ratio
		if p.MaxWidth > authorized {
			ratio *= float64(authorized) / float64(p.MaxWidth)
		} else if ratio < maxRatio {
			if p.MaxWidth > 0 {
				ratio *= float64(authorized) / float64(p.MaxWidth)
			}
			ratio = min(ratio, maxRatio)
		} else {
			ratio = maxRatio
		}

		if p.MaxHeight > screenHeight && p.MaxHeight > 0 {
			ratio = min(ratio, prevRatio*float64(screenHeight)/float64(p.MaxHeight))
		}

		if ratio > 0 && ratio != prevRatio {
			p.rescaleIcons(ratio)
			p.FlatWidth = FlatWidth(p.Icons, p.params)
			p.computeSize()
		}

		n++
		fits := p.MaxWidth <= authorized && p.MaxHeight <= screenHeight &&
			(p.Ratio >= 1 || p.MaxWidth >= authorized-config.SizeSlack)
		if fits || n >= config.MaxSizeIterations {
			break
		}
	}
	p.lastSizeIters = n
	p.logger.Debug("size updated", "width", p.MaxWidth, "height", p.MaxHeight, "ratio", p.Ratio, "iterations", n)

	p.CalculateIcons()

	sameSize := prevMaxWidth == p.MaxWidth && prevMaxHeight == p.MaxHeight
	if sameSize {
		// Otherwise the configure acknowledgment refreshes them.
		p.UpdateInputShape()
		p.applyInputState()
		p.TriggerSetWMIconsGeometry()
	}

	if p.window != nil && p.window.Visible() && !sameSize {
		p.TriggerMoveResize()
	}

	p.TriggerLoadBackground()

	if p.RefCount == 0 && p.Visibility == VisibilityReserve {
		p.ReserveSpace(true)
	}
}

// computeSize runs the renderer and defaults the active extents to the max ones.
func (p *Panel) computeSize() {
	p.ActiveWidth, p.ActiveHeight = 0, 0
	p.renderer.ComputeSize(p)
	if p.ActiveWidth == 0 {
		p.ActiveWidth = p.MaxWidth
	}
	if p.ActiveHeight == 0 {
		p.ActiveHeight = p.MaxHeight
	}
}
