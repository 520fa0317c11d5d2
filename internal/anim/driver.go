// Package anim drives the panel animations on the event loop: the
// magnification growing and shrinking, the unfolding of sub-panels and the
// insertion and removal of icons.
package anim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// Factors an icon starts from when it is inserted and ends at before it is
// removed.
const (
	insertStart = -0.95
	removeEnd   = 0.05
)

// Driver implements dock.Animator. Each panel has at most one pending frame.
type Driver struct {
	loop   *loop.Loop
	logger *log.Logger
	panels map[*dock.Panel]*panelState
}

type iconTween struct {
	tween    *gween.Tween
	removing bool
	done     func()
}

type panelState struct {
	frame  loop.Deferred
	unfold *gween.Tween
	icons  map[*dock.Icon]*iconTween
}

// NewDriver returns a driver scheduling its frames on l.
func NewDriver(l *loop.Loop, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		loop:   l,
		logger: logger,
		panels: make(map[*dock.Panel]*panelState),
	}
}

func (d *Driver) state(p *dock.Panel) *panelState {
	st, ok := d.panels[p]
	if !ok {
		st = &panelState{icons: make(map[*dock.Icon]*iconTween)}
		d.panels[p] = st
	}
	return st
}

// StartGrowing implements dock.Animator. A folded sub-panel also unfolds.
func (d *Driver) StartGrowing(p *dock.Panel) {
	if p.Closed() {
		return
	}
	p.Growing = true
	p.Shrinking = false
	st := d.state(p)
	if p.Folding > 0 && st.unfold == nil {
		dur := p.Params().Backends.UnfoldDuration
		if dur <= 0 {
			dur = config.DefaultUnfoldDuration
		}
		st.unfold = gween.New(float32(p.Folding), 0, float32(dur.Seconds()), ease.OutCubic)
	}
	d.schedule(p, st)
}

// StartShrinking implements dock.Animator.
func (d *Driver) StartShrinking(p *dock.Panel) {
	if p.Closed() {
		return
	}
	p.Shrinking = true
	p.Growing = false
	d.schedule(p, d.state(p))
}

// StartShowing implements dock.Animator: an auto-hidden panel takes input
// over its whole active area again.
func (d *Driver) StartShowing(p *dock.Panel) {
	if p.Closed() || p.InputState == dock.InputActive {
		return
	}
	p.InputState = dock.InputActive
	p.SetInputShapeActive()
	p.QueueDraw()
}

// AnimateInsert grows icon from nothing to its size.
func (d *Driver) AnimateInsert(p *dock.Panel, icon *dock.Icon) {
	if p.Closed() {
		return
	}
	icon.InsertRemoveFactor = insertStart
	st := d.state(p)
	st.icons[icon] = &iconTween{
		tween: gween.New(insertStart, 0, float32(config.InsertRemoveDuration.Seconds()), ease.OutQuad),
	}
	d.schedule(p, st)
}

// AnimateRemove shrinks icon to nothing, then removes it from p and calls
// done, which may be nil.
func (d *Driver) AnimateRemove(p *dock.Panel, icon *dock.Icon, done func()) {
	if p.Closed() {
		return
	}
	icon.InsertRemoveFactor = 1
	st := d.state(p)
	st.icons[icon] = &iconTween{
		tween:    gween.New(1, removeEnd, float32(config.InsertRemoveDuration.Seconds()), ease.InQuad),
		removing: true,
		done:     done,
	}
	d.schedule(p, st)
}

// Animating reports whether a frame is pending for p.
func (d *Driver) Animating(p *dock.Panel) bool {
	st, ok := d.panels[p]
	return ok && st.frame.Pending()
}

// Forget drops the state of p, typically when it is closed.
func (d *Driver) Forget(p *dock.Panel) {
	if st, ok := d.panels[p]; ok {
		st.frame.Cancel()
		delete(d.panels, p)
	}
}

func (d *Driver) schedule(p *dock.Panel, st *panelState) {
	st.frame.ScheduleAfter(d.loop, config.FrameInterval, func() { d.step(p) })
}

// step advances every animation of p by one frame.
func (d *Driver) step(p *dock.Panel) {
	if p.Closed() {
		d.Forget(p)
		return
	}
	st := d.state(p)
	par := p.Params()
	dt := config.FrameInterval

	if p.Growing {
		p.MagnitudeIndex += steps(dt, par.Backends.GrowDuration, config.DefaultGrowDuration)
		if p.MagnitudeIndex >= config.MagnitudeSteps {
			p.MagnitudeIndex = config.MagnitudeSteps
			p.Growing = false
		}
	} else if p.Shrinking {
		p.MagnitudeIndex -= steps(dt, par.Backends.ShrinkDuration, config.DefaultShrinkDuration)
		if p.MagnitudeIndex <= 0 {
			p.MagnitudeIndex = 0
			p.Shrinking = false
			d.atRest(p)
		}
	}

	if st.unfold != nil {
		v, finished := st.unfold.Update(float32(dt.Seconds()))
		p.Folding = max(float64(v), 0)
		if finished {
			p.Folding = 0
			st.unfold = nil
		}
	}

	for icon, it := range st.icons {
		v, finished := it.tween.Update(float32(dt.Seconds()))
		icon.InsertRemoveFactor = float64(v)
		if !finished {
			continue
		}
		delete(st.icons, icon)
		icon.InsertRemoveFactor = 0
		if it.removing {
			p.RemoveIcon(icon)
			if it.done != nil {
				it.done()
			}
		}
	}

	p.CalculateIcons()
	p.QueueDraw()

	if p.Growing || p.Shrinking || st.unfold != nil || len(st.icons) > 0 {
		d.schedule(p, st)
	}
}

// atRest switches a panel back to its resting input region once it is flat.
func (d *Driver) atRest(p *dock.Panel) {
	if p.IsSubPanel() {
		return
	}
	if p.AutoHide() && !p.Container.Inside {
		p.InputState = dock.InputHidden
		p.SetInputShapeHidden()
		return
	}
	if p.InputState != dock.InputAtRest {
		p.InputState = dock.InputAtRest
		p.SetInputShapeAtRest()
	}
	d.logger.Debug("panel at rest", "panel", p.Name)
}

// steps is the magnitude increment of one frame for an animation lasting dur.
func steps(frame, dur, fallback time.Duration) int {
	if dur <= 0 {
		dur = fallback
	}
	return max(int(int64(config.MagnitudeSteps)*int64(frame)/int64(dur)), 1)
}
