package dock

import "github.com/Gaurav-Gosain/dockwave/internal/config"

// Placement is the input of a window position computation. Coordinates run
// along the panel axis: X is along the icons, Y across them.
type Placement struct {
	Width  int
	Height int

	ScreenWidth   int
	ScreenHeight  int
	ScreenOffsetX int
	ScreenOffsetY int

	Align       float64
	DirectionUp bool
	GapX        int
	GapY        int

	SubPanel       bool
	MaxWidth       int
	LeftMargin     int
	MinRightMargin int
	MaxIconHeight  int
}

// PositionAtBalance returns where a window of the given size sits once the
// panel is at rest.
func PositionAtBalance(pl Placement) (x, y int) {
	w, h := pl.Width, pl.Height
	sw, sh := pl.ScreenWidth, pl.ScreenHeight

	x = int(float64(sw-w)*pl.Align + float64(pl.GapX))
	if !pl.SubPanel && pl.Align != 0.5 {
		x = int(float64(x) + (0.5-pl.Align)*float64(pl.MaxWidth-w))
	}
	if pl.DirectionUp {
		y = sh - h - pl.GapY
	} else {
		y = pl.GapY
	}

	if !pl.SubPanel {
		if x+w < config.VisibilityMargin {
			x = config.VisibilityMargin - w
		} else if x > sw-config.VisibilityMargin {
			x = sw - config.VisibilityMargin
		}
	} else {
		if x < -pl.LeftMargin {
			x = -pl.LeftMargin
		} else if x > sw-w+pl.MinRightMargin {
			x = sw - w + pl.MinRightMargin
		}
	}

	if y < -pl.MaxIconHeight {
		y = -pl.MaxIconHeight
	} else if y > sh-h+pl.MaxIconHeight {
		y = sh - h + pl.MaxIconHeight
	}

	return x + pl.ScreenOffsetX, y + pl.ScreenOffsetY
}

// placement describes a window of w x h for this panel.
func (p *Panel) placement(w, h int) Placement {
	return Placement{
		Width:          w,
		Height:         h,
		ScreenWidth:    p.screenWidth(),
		ScreenHeight:   p.screenHeight(),
		ScreenOffsetX:  p.screenOffsetX(),
		ScreenOffsetY:  p.screenOffsetY(),
		Align:          p.Align,
		DirectionUp:    p.DirectionUp,
		GapX:           p.GapX,
		GapY:           p.GapY,
		SubPanel:       p.RefCount > 0,
		MaxWidth:       p.MaxWidth,
		LeftMargin:     p.LeftMargin,
		MinRightMargin: p.MinRightMargin,
		MaxIconHeight:  int(p.MaxIconHeight * p.Ratio),
	}
}

// WindowPositionAtBalance is PositionAtBalance for this panel.
func (p *Panel) WindowPositionAtBalance(w, h int) (x, y int) {
	return PositionAtBalance(p.placement(w, h))
}

// moveResizeWindow moves the window to its balance position at the max
// size, swapping axes for vertical panels.
func (p *Panel) moveResizeWindow() {
	if p.window == nil {
		return
	}
	w, h := p.MaxWidth, p.MaxHeight
	x, y := p.WindowPositionAtBalance(w, h)
	p.requestedX, p.requestedY, p.moveRequested = x, y, true
	var err error
	if p.Horizontal {
		err = p.window.MoveResize(x, y, w, h)
	} else {
		err = p.window.MoveResize(y, x, h, w)
	}
	if err != nil {
		p.logger.Warn("failed to move the window", "err", err)
	}
}

// PreventOutOfScreen recomputes the gaps from the current window position,
// after the window was moved by someone else, and keeps them on screen.
func (p *Panel) PreventOutOfScreen() {
	c := p.Container
	x := float64(c.X-p.screenOffsetX()) + float64(c.Width)*p.Align
	y := c.Y - p.screenOffsetY()
	if p.DirectionUp {
		y += c.Height
	}

	sw, sh := p.screenWidth(), p.screenHeight()
	p.GapX = int(x - float64(sw)*p.Align)
	if p.DirectionUp {
		p.GapY = sh - y
	} else {
		p.GapY = y
	}

	p.GapX = min(max(p.GapX, -sw/2), sw/2)
	p.GapY = min(max(p.GapY, 0), sh)
}

// ReserveSpace asks the window manager to keep other windows off the
// panel's resting footprint, or releases that space.
func (p *Panel) ReserveSpace(reserve bool) {
	if p.window == nil || p.closed {
		return
	}
	var s Strut
	if reserve {
		w, h := p.MinWidth, p.MinHeight
		x, _ := p.WindowPositionAtBalance(w, h)
		depth := h + p.GapY
		switch {
		case p.DirectionUp && p.Horizontal:
			s.Bottom, s.BottomStartX, s.BottomEndX = depth, x, x+w
		case p.DirectionUp:
			s.Right, s.RightStartY, s.RightEndY = depth, x, x+w
		case p.Horizontal:
			s.Top, s.TopStartX, s.TopEndX = depth, x, x+w
		default:
			s.Left, s.LeftStartY, s.LeftEndY = depth, x, x+w
		}
	}
	if err := p.window.SetStrut(s); err != nil {
		p.logger.Warn("failed to set the strut", "err", err)
	}
}
