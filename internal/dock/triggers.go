package dock

import "github.com/Gaurav-Gosain/dockwave/internal/background"

// TriggerUpdateSize schedules a size update on the next idle slot.
func (p *Panel) TriggerUpdateSize() {
	if p.closed || p.loop == nil {
		return
	}
	p.sizeTask.Schedule(p.loop, func() {
		p.UpdateSize()
		p.QueueDraw()
	})
}

// SizeUpdatePending reports whether a size update is scheduled.
func (p *Panel) SizeUpdatePending() bool { return p.sizeTask.Pending() }

// TriggerMoveResize schedules a move of the window to its balance position.
func (p *Panel) TriggerMoveResize() {
	if p.closed || p.loop == nil {
		return
	}
	p.moveResizeTask.Schedule(p.loop, func() {
		if !p.closed {
			p.moveResizeWindow()
		}
	})
}

// TriggerLoadBackground schedules a background reload, unless the loaded one
// already has the decorations size.
func (p *Panel) TriggerLoadBackground() {
	if p.closed || p.loop == nil {
		return
	}
	bw, bh := 0, 0
	if p.Background != nil {
		bw, bh = p.Background.Width, p.Background.Height
	}
	if p.DecorationsWidth == bw && p.DecorationsHeight == bh {
		return
	}
	p.backgroundTask.Schedule(p.loop, func() {
		if !p.closed {
			p.LoadBackground()
		}
	})
}

// LoadBackground builds the background at the decorations size right away.
func (p *Panel) LoadBackground() {
	p.Background = nil
	if p.backgrounds == nil {
		return
	}
	req := background.Request{
		Width:     p.DecorationsWidth,
		Height:    p.DecorationsHeight,
		Shared:    p.RefCount > 0 || p.BackgroundImage == "",
		ImagePath: p.BackgroundImage,
		Bright:    p.BackgroundLight,
		Dark:      p.BackgroundDark,
	}
	buf, err := p.backgrounds.Load(req)
	if err != nil {
		p.logger.Warn("failed to load the background", "err", err)
		return
	}
	p.Background = buf
	p.QueueDraw()
}

// TriggerSetWMIconsGeometry schedules publishing the icon geometry to the
// window manager.
func (p *Panel) TriggerSetWMIconsGeometry() {
	if p.closed || p.loop == nil {
		return
	}
	p.wmIconsTask.Schedule(p.loop, func() {
		if !p.closed {
			p.wmHints.SetIconsGeometry(p)
		}
	})
}

// TriggerRedrawSubPanelContent schedules a redraw of the icon opening p when
// that icon shows the content of p.
func (p *Panel) TriggerRedrawSubPanelContent() {
	if p.closed {
		return
	}
	icon, _ := p.manager.PointingIcon(p)
	if icon == nil {
		return
	}
	drawsContent := icon.SubPanelViewType != 0 ||
		(icon.Class != "" && !p.params.Indicators.UseClassIndicators &&
			(icon.Kind == KindContainer || icon.Kind == KindLauncher))
	if drawsContent {
		p.TriggerRedrawSubPanelContentOnIcon(icon)
	}
}

// TriggerRedrawSubPanelContentOnIcon schedules a redraw of icon, moving an
// already scheduled one to the end of the queue.
func (p *Panel) TriggerRedrawSubPanelContentOnIcon(icon *Icon) {
	if p.loop == nil {
		return
	}
	icon.redrawContent.Reschedule(p.loop, func() { p.redrawSubPanelContent(icon) })
}

func (p *Panel) redrawSubPanelContent(icon *Icon) {
	parent := p.manager.PanelByName(icon.ParentName)
	if parent == nil || parent.closed {
		return
	}
	if icon.SubPanel != nil {
		if parent.Container.Width == 1 && parent.Container.Height == 1 {
			// The parent window is not sized yet.
			icon.redrawContent.Schedule(p.loop, func() { p.redrawSubPanelContent(icon) })
			return
		}
		p.painter.DrawSubPanelContent(icon, parent)
	} else {
		// The icon lost its sub-panel meanwhile.
		p.painter.ReloadIconImage(icon, parent)
	}
	p.painter.RedrawIcon(icon, parent)
}

// RedrawSubPanelContent redraws right away the icon showing the content of p,
// unless a redraw is already scheduled.
func (p *Panel) RedrawSubPanelContent() {
	icon, parent := p.manager.PointingIcon(p)
	if icon == nil || parent == nil || icon.SubPanelViewType == 0 || icon.redrawContent.Pending() {
		return
	}
	p.painter.DrawSubPanelContent(icon, parent)
	p.painter.RedrawIcon(icon, parent)
}

// CalculateIcons lays the icons out for the current pointer, reacts to the
// pointer zone and returns the pointed icon.
func (p *Panel) CalculateIcons() *Icon {
	if p.closed {
		return nil
	}
	pointed := p.renderer.CalculateIcons(p)
	p.manageMousePosition()
	return pointed
}

// HandleConfigure records the window geometry reported by the windowing
// system, in window coordinates. A top-level window found away from where it
// was last moved gets its gaps recomputed from there. When the size changed,
// the input regions, the window manager hints and the layout are refreshed.
func (p *Panel) HandleConfigure(x, y, width, height int) {
	if p.closed {
		return
	}
	if !p.Horizontal {
		x, y = y, x
		width, height = height, width
	}
	resized := width != p.Container.Width || height != p.Container.Height
	p.Container.X, p.Container.Y = x, y
	p.Container.Width, p.Container.Height = width, height

	// Someone else placed the window, keep the panel where it was put.
	if p.RefCount == 0 && p.moveRequested && (x != p.requestedX || y != p.requestedY) {
		p.PreventOutOfScreen()
		if p.Visibility == VisibilityReserve {
			p.ReserveSpace(true)
		}
	}
	if !resized {
		return
	}
	p.UpdateInputShape()
	p.applyInputState()
	p.TriggerSetWMIconsGeometry()
	p.CalculateIcons()
	p.QueueDraw()
}
