package dock

import (
	"math"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

// CheckMouseInsideLinear classifies the pointer against a linear panel and
// stores the result in p.MousePosition.
func CheckMouseInsideLinear(p *Panel) MousePosition {
	c := p.Container
	mouseY := c.MouseY
	if p.DirectionUp {
		mouseY = c.Height - c.MouseY
	}

	xAbs := int(float64(c.MouseX) - p.flatOffset())
	inBand := mouseY >= 0 && mouseY < p.ActiveHeight
	inside := xAbs >= 0 && float64(xAbs) <= p.FlatWidth && c.MouseX > 0 && c.MouseX < c.Width

	var pos MousePosition
	switch {
	case inside && inBand:
		pos = MouseInside
	case inside:
		pos = MouseOutside
	case p.AutoHide():
		pos = MouseOutside
		if inBand {
			pos = MouseOnTheEdge
		}
	default:
		// Without auto-hide only the margin left by the alignment is an edge.
		margin := math.Abs(p.Align-0.5) * (float64(c.Width) - p.FlatWidth)
		pos = MouseOutside
		if inBand && float64(xAbs) >= -margin && float64(xAbs) <= p.FlatWidth+margin {
			pos = MouseOnTheEdge
		}
	}
	p.MousePosition = pos
	return pos
}

// flatOffset is the abscissa of the flat panel's left end in the window.
func (p *Panel) flatOffset() float64 {
	return float64(p.Container.Width-p.ActiveWidth)*p.Align + (float64(p.ActiveWidth)-p.FlatWidth)/2
}

// entranceAllowed is false while the pointer is inside the sub-panel opened
// by the pointed icon, so that the parent does not fight with its child.
func (p *Panel) entranceAllowed() bool {
	if !p.EntranceAllowed {
		return false
	}
	pointed := p.PointedIcon()
	if pointed == nil || pointed.SubPanel == nil {
		return true
	}
	sub := pointed.SubPanel
	return !(sub.window != nil && sub.window.Visible() && sub.Container.Inside)
}

// manageMousePosition starts or stops the animations for the current zone.
func (p *Panel) manageMousePosition() {
	switch p.MousePosition {
	case MouseInside:
		notFull := p.MagnitudeIndex < config.MagnitudeSteps && !p.Growing
		if !p.entranceAllowed() || !(notFull || p.Shrinking) ||
			p.InputState == InputHidden || (p.InputState == InputAtRest && !p.Dragging) {
			return
		}
		if p.RefCount != 0 && !p.Container.Inside {
			return
		}
		if (p.MagnitudeIndex == 0 && p.RefCount == 0 && !p.AutoHide() && !p.Growing) || !p.Container.Inside {
			// The enter event was probably missed, emit it again.
			p.events.EnterPanel(p)
			return
		}
		p.animator.StartGrowing(p)
		if p.AutoHide() && p.RefCount == 0 {
			p.animator.StartShowing(p)
		}

	case MouseOnTheEdge:
		if p.MagnitudeIndex > 0 && !p.Growing {
			p.animator.StartShrinking(p)
		}

	case MouseOutside:
		if p.Growing || p.Shrinking || p.leaveTask.Pending() || p.MagnitudeIndex <= 0 || p.IconFlyingAway {
			return
		}
		if p.RefCount > 0 {
			if icon, _ := p.manager.PointingIcon(p); icon != nil && icon.Pointed {
				return
			}
		}
		delay := max(p.params.Docks.LeaveSubPanelDelay, config.MinLeaveDelay)
		p.leaveTask.ScheduleAfter(p.loop, delay, func() {
			if !p.closed {
				p.events.LeavePanel(p)
			}
		})
	}
}

// LeavePending reports whether a leave notification is scheduled.
func (p *Panel) LeavePending() bool { return p.leaveTask.Pending() }

// CancelLeave drops a scheduled leave notification, typically when the
// pointer comes back in.
func (p *Panel) CancelLeave() { p.leaveTask.Cancel() }
