package app

import (
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
)

// EnterPanel implements dock.Events: the panel takes input over its whole
// active area and grows.
func (a *App) EnterPanel(p *dock.Panel) {
	if p.Closed() {
		return
	}
	a.Logger.Debug("pointer entered", "panel", p.Name)
	p.CancelLeave()
	if p.InputState != dock.InputActive {
		p.InputState = dock.InputActive
		p.SetInputShapeActive()
	}
	if p.AutoHide() && p.RefCount == 0 {
		a.Anim.StartShowing(p)
	}
	a.Anim.StartGrowing(p)

	// The pointer went from a sub-panel back to its parent.
	if _, parent := a.Registry.PointingIcon(p); parent != nil {
		parent.CancelLeave()
	}
}

// LeavePanel implements dock.Events: the panel shrinks and its sub-panels
// the pointer is not in are hidden.
func (a *App) LeavePanel(p *dock.Panel) {
	if p.Closed() {
		return
	}
	if pointed := p.PointedIcon(); pointed != nil && pointed.SubPanel != nil &&
		pointed.SubPanel.Window().Visible() && pointed.SubPanel.Container.Inside {
		// The pointer moved into the sub-panel opened from this one.
		return
	}
	a.Logger.Debug("pointer left", "panel", p.Name)
	a.Anim.StartShrinking(p)

	for _, icon := range p.Icons {
		if sub := icon.SubPanel; sub != nil && !sub.Container.Inside {
			a.hideSubPanel(sub)
		}
	}
	if p.IsSubPanel() {
		icon, parent := a.Registry.PointingIcon(p)
		if icon == nil || !icon.Pointed || parent == nil || !parent.Container.Inside {
			a.hideSubPanel(p)
		}
	}
}

// UnfoldSubPanel implements dock.Events.
func (a *App) UnfoldSubPanel(icon *dock.Icon, parent *dock.Panel) {
	a.LogInfo("Opening %s from %s", icon.Name, parent.Name)
}

// SetIconsGeometry implements dock.WMHints when no window manager is
// reachable.
func (a *App) SetIconsGeometry(p *dock.Panel) {
	for _, icon := range p.Icons {
		if icon.AppWindow != 0 {
			a.Logger.Debug("icon geometry", "panel", p.Name, "icon", icon.Name,
				"x", icon.DrawX, "y", icon.DrawY, "scale", icon.Scale)
		}
	}
}

func (a *App) hideSubPanel(sub *dock.Panel) {
	w, ok := sub.Window().(hider)
	if !ok || !sub.Window().Visible() {
		return
	}
	w.Hide()
	sub.MagnitudeIndex = 0
	sub.Growing, sub.Shrinking = false, false
	sub.Container.Inside = false
	a.LogInfo("Closing %s", sub.Name)
}
