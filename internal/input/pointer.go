// Package input turns the pointer events of panel windows into layout
// updates: mouse coordinates, icon positions, enter and leave notifications
// and the delayed opening of sub-panels.
package input

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// Handler dispatches pointer events to panels. It must only be used from
// the loop goroutine.
type Handler struct {
	events  dock.Events
	logger  *log.Logger
	pending map[*dock.Panel]*pendingShow
	// drags holds the icon picked up on each panel.
	drags map[*dock.Panel]*dock.Icon
}

// pendingShow is the sub-panel a panel is about to open.
type pendingShow struct {
	task loop.Deferred
	icon *dock.Icon
}

// NewHandler returns a handler notifying events of enters. A nil events
// discards them.
func NewHandler(events dock.Events, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		events:  events,
		logger:  logger,
		pending: make(map[*dock.Panel]*pendingShow),
		drags:   make(map[*dock.Panel]*dock.Icon),
	}
}

// HandleMotion records a pointer move at (x, y), in window coordinates.
func (h *Handler) HandleMotion(p *dock.Panel, x, y int) {
	if p.Closed() {
		return
	}
	h.setMouse(p, x, y)
	pointed := p.CalculateIcons()
	p.QueueDraw()

	if pointed == nil || pointed.SubPanel == nil || !p.Container.Inside {
		h.cancelShow(p)
		return
	}
	h.scheduleShow(p, pointed)
}

// HandleEnter records the pointer entering the window at (x, y).
func (h *Handler) HandleEnter(p *dock.Panel, x, y int) {
	if p.Closed() {
		return
	}
	p.Container.Inside = true
	p.CancelLeave()
	h.setMouse(p, x, y)
	if h.events != nil {
		h.events.EnterPanel(p)
	}
	p.CalculateIcons()
	p.QueueDraw()
}

// HandleLeave records the pointer leaving the window at (x, y). The panel
// notifies the leave itself once its delay has elapsed.
func (h *Handler) HandleLeave(p *dock.Panel, x, y int) {
	if p.Closed() {
		return
	}
	p.Container.Inside = false
	h.cancelShow(p)
	h.setMouse(p, x, y)
	p.CalculateIcons()
	p.QueueDraw()
}

// HandlePress picks up the icon under (x, y). Until the release, the icons
// of its group make room where it would be dropped.
func (h *Handler) HandlePress(p *dock.Panel, x, y int) {
	if p.Closed() {
		return
	}
	h.setMouse(p, x, y)
	p.CalculateIcons()
	icon := p.PointedIcon()
	if icon == nil {
		return
	}
	h.cancelShow(p)
	h.drags[p] = icon
	p.Dragging = true
	p.DragGroup = icon.Group
	p.CalculateIcons()
	p.QueueDraw()
}

// HandleRelease drops the picked up icon at (x, y), next to the icon under
// the pointer, when the drop point accepts it.
func (h *Handler) HandleRelease(p *dock.Panel, x, y int) {
	icon, ok := h.drags[p]
	delete(h.drags, p)
	if !ok || p.Closed() {
		return
	}
	h.setMouse(p, x, y)
	p.CalculateIcons()

	target := p.PointedIcon()
	if p.CanDrop && target != nil && target != icon {
		index := p.IconIndex(target)
		if float64(p.Container.MouseX) > target.DrawX+target.Width*target.Scale/2 {
			index++
		}
		p.MoveIcon(icon, index)
		h.logger.Debug("icon moved", "panel", p.Name, "icon", icon.Name, "index", p.IconIndex(icon))
	}

	p.Dragging = false
	dock.StopMarkingIcons(p)
	p.CalculateIcons()
	p.QueueDraw()
}

// Forget drops the state kept for p.
func (h *Handler) Forget(p *dock.Panel) {
	h.cancelShow(p)
	delete(h.pending, p)
	delete(h.drags, p)
}

func (h *Handler) setMouse(p *dock.Panel, x, y int) {
	if !p.Horizontal {
		x, y = y, x
	}
	p.Container.MouseX, p.Container.MouseY = x, y
}

func (h *Handler) scheduleShow(p *dock.Panel, icon *dock.Icon) {
	st, ok := h.pending[p]
	if !ok {
		st = &pendingShow{}
		h.pending[p] = st
	}
	if st.icon == icon && st.task.Pending() {
		return
	}
	st.task.Cancel()
	st.icon = icon

	delay := p.Params().Docks.ShowSubPanelDelay
	if delay <= 0 {
		p.ShowSubPanel(icon)
		return
	}
	st.task.ScheduleAfter(p.Loop(), delay, func() {
		if p.Closed() || !icon.Pointed || !p.Container.Inside {
			return
		}
		h.logger.Debug("opening sub-panel", "panel", p.Name, "icon", icon.Name)
		p.ShowSubPanel(icon)
	})
}

func (h *Handler) cancelShow(p *dock.Panel) {
	if st, ok := h.pending[p]; ok {
		st.task.Cancel()
		st.icon = nil
	}
}
