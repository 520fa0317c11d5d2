// Package headless provides an in-memory panel window. It records every
// request instead of talking to a display server, which makes it the
// window of the preview command and of tests.
package headless

import (
	"errors"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
)

// ErrClosed is returned by requests made after Close.
var ErrClosed = errors.New("window closed")

// Shape is an input region created by a Window.
type Shape struct {
	Rect      dock.Rect
	Destroyed bool
}

// Destroy implements dock.Shape.
func (s *Shape) Destroy() { s.Destroyed = true }

// Window implements dock.Window in memory.
type Window struct {
	screen  dock.Screen
	visible bool
	closed  bool

	// Geometry is the last requested geometry, in window coordinates.
	Geometry dock.Rect
	Moves    []dock.Rect
	Shapes   []*Shape
	// Input is the applied input region, nil meaning the whole window.
	Input  dock.Shape
	Struts []dock.Strut
	Draws  int

	// Configure, when set, is called after every MoveResize with the new
	// geometry, the way a window manager acknowledges a configure request.
	Configure func(x, y, width, height int)
}

// New returns an unmapped window on screen.
func New(screen dock.Screen) *Window {
	return &Window{screen: screen}
}

// Screen implements dock.Window.
func (w *Window) Screen() dock.Screen { return w.screen }

// SetScreen moves the window to another monitor.
func (w *Window) SetScreen(s dock.Screen) { w.screen = s }

// Visible implements dock.Window.
func (w *Window) Visible() bool { return w.visible && !w.closed }

// Present implements dock.Window.
func (w *Window) Present() {
	if !w.closed {
		w.visible = true
	}
}

// Hide unmaps the window.
func (w *Window) Hide() { w.visible = false }

// MoveResize implements dock.Window.
func (w *Window) MoveResize(x, y, width, height int) error {
	if w.closed {
		return ErrClosed
	}
	r := dock.Rect{X: x, Y: y, Width: width, Height: height}
	w.Geometry = r
	w.Moves = append(w.Moves, r)
	if w.Configure != nil {
		w.Configure(x, y, width, height)
	}
	return nil
}

// CreateInputShape implements dock.Window.
func (w *Window) CreateInputShape(r dock.Rect) (dock.Shape, error) {
	if w.closed {
		return nil, ErrClosed
	}
	s := &Shape{Rect: r}
	w.Shapes = append(w.Shapes, s)
	return s, nil
}

// SetInputShape implements dock.Window.
func (w *Window) SetInputShape(s dock.Shape) error {
	if w.closed {
		return ErrClosed
	}
	w.Input = s
	return nil
}

// InputRect returns the region receiving input, the whole window when no
// shape is applied.
func (w *Window) InputRect() dock.Rect {
	if s, ok := w.Input.(*Shape); ok && s != nil {
		return s.Rect
	}
	return dock.Rect{Width: w.Geometry.Width, Height: w.Geometry.Height}
}

// SetStrut implements dock.Window.
func (w *Window) SetStrut(s dock.Strut) error {
	if w.closed {
		return ErrClosed
	}
	w.Struts = append(w.Struts, s)
	return nil
}

// QueueDraw implements dock.Window.
func (w *Window) QueueDraw() {
	if !w.closed {
		w.Draws++
	}
}

// Close releases the window. Later requests fail with ErrClosed.
func (w *Window) Close() error {
	w.closed = true
	w.visible = false
	return nil
}

// LiveShapes returns the shapes that were not destroyed.
func (w *Window) LiveShapes() []*Shape {
	var live []*Shape
	for _, s := range w.Shapes {
		if !s.Destroyed {
			live = append(live, s)
		}
	}
	return live
}
