package dock

// shapeSet owns the three input regions of a panel. A region is destroyed
// before it is replaced and when the panel closes.
type shapeSet struct {
	normal Shape
	hidden Shape
	active Shape
}

func (s *shapeSet) destroyAll() {
	for _, sh := range []*Shape{&s.normal, &s.hidden, &s.active} {
		if *sh != nil {
			(*sh).Destroy()
			*sh = nil
		}
	}
}

// NormalShape, HiddenShape and ActiveShape return the current regions, nil
// meaning none.
func (p *Panel) NormalShape() Shape { return p.shapes.normal }
func (p *Panel) HiddenShape() Shape { return p.shapes.hidden }
func (p *Panel) ActiveShape() Shape { return p.shapes.active }

// InputShapeRect is the region of a w x h footprint inside the max box,
// in window coordinates (axes swapped for vertical panels).
func (p *Panel) InputShapeRect(w, h int) Rect {
	W, H := p.MaxWidth, p.MaxHeight
	offset := float64(W-p.ActiveWidth)*p.Align + float64(p.ActiveWidth-w)/2
	y := 0
	if p.DirectionUp {
		y = H - h
	}
	if p.Horizontal {
		return Rect{X: int(offset), Y: y, Width: w, Height: h}
	}
	return Rect{X: y, Y: int(offset), Width: h, Height: w}
}

func (p *Panel) createInputShape(w, h int) Shape {
	if p.window == nil || p.MaxWidth == 0 || p.MaxHeight == 0 {
		return nil
	}
	s, err := p.window.CreateInputShape(p.InputShapeRect(w, h))
	if err != nil {
		p.logger.Warn("failed to create an input shape", "err", err)
		return nil
	}
	return s
}

// UpdateInputShape rebuilds the input regions from the current extents.
func (p *Panel) UpdateInputShape() {
	if p.closed {
		return
	}
	p.shapes.destroyAll()

	W, H := p.MaxWidth, p.MaxHeight
	w, h := p.MinWidth, p.MinHeight
	fullyActive := p.ActiveWidth == W && p.ActiveHeight == H

	if w == 0 || h == 0 || p.RefCount > 0 || W == 0 || H == 0 {
		if !fullyActive {
			p.shapes.active = p.createInputShape(p.ActiveWidth, p.ActiveHeight)
		}
		if p.InputState != InputActive {
			p.SetInputShapeActive()
			p.InputState = InputActive
		}
		return
	}

	p.shapes.normal = p.createInputShape(w, h)
	p.shapes.hidden = p.createInputShape(1, 1)
	if !fullyActive {
		p.shapes.active = p.createInputShape(p.ActiveWidth, p.ActiveHeight)
	}

	if u, ok := p.renderer.(InputShapeUpdater); ok {
		u.UpdateInputShape(p)
	}
}

// SetInputShapeActive makes the active region (the whole window if none) receive input.
func (p *Panel) SetInputShapeActive() { p.applyShape(p.shapes.active) }

// SetInputShapeAtRest makes the resting footprint receive input.
func (p *Panel) SetInputShapeAtRest() { p.applyShape(p.shapes.normal) }

// SetInputShapeHidden leaves a single pixel receiving input.
func (p *Panel) SetInputShapeHidden() { p.applyShape(p.shapes.hidden) }

func (p *Panel) applyShape(s Shape) {
	if p.window == nil || p.closed {
		return
	}
	if err := p.window.SetInputShape(s); err != nil {
		p.logger.Warn("failed to set the input shape", "err", err)
	}
}

// applyInputState re-applies the region of the current input state. The
// active state also applies the resting region afterwards.
func (p *Panel) applyInputState() {
	switch p.InputState {
	case InputActive:
		p.SetInputShapeActive()
		fallthrough
	case InputAtRest:
		p.SetInputShapeAtRest()
	default:
	}
}
