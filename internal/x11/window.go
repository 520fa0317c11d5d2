package x11

import (
	"errors"
	"fmt"
	"image"

	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xproto"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

const eventMask = xproto.EventMaskPointerMotion | xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow | xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
	xproto.EventMaskStructureNotify | xproto.EventMaskExposure

var errForeignShape = errors.New("input shape belongs to another backend")

// Shape is an input region of a Window. The server holds no resource for it,
// the region is sent when the shape is applied.
type Shape struct {
	rect      dock.Rect
	destroyed bool
}

// Destroy implements dock.Shape.
func (s *Shape) Destroy() { s.destroyed = true }

// Window is a dock window. It implements dock.Window.
type Window struct {
	c       *Conn
	id      xproto.Window
	gc      xproto.Gcontext
	screen  dock.Screen
	visible bool
	closed  bool

	panel *dock.Panel
	frame func() (*image.RGBA, error)
	draw  loop.Deferred
}

// NewWindow creates an unmapped dock window on screen.
func (c *Conn) NewWindow(screen dock.Screen) (*Window, error) {
	id, err := xproto.NewWindowId(c.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate a window id: %w", err)
	}
	err = xproto.CreateWindowChecked(c.conn, c.screen.RootDepth, id, c.screen.Root,
		int16(screen.X), int16(screen.Y), 1, 1, 0,
		xproto.WindowClassInputOutput, c.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{c.screen.BlackPixel, eventMask}).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create the window: %w", err)
	}

	w := &Window{c: c, id: id, screen: screen}
	if err := w.setWindowType(); err != nil {
		c.logger.Warn("failed to mark the window as a dock", "err", err)
	}

	gc, err := xproto.NewGcontextId(c.conn)
	if err == nil {
		err = xproto.CreateGCChecked(c.conn, gc, xproto.Drawable(id), 0, nil).Check()
	}
	if err != nil {
		xproto.DestroyWindow(c.conn, id)
		return nil, fmt.Errorf("failed to create the graphics context: %w", err)
	}
	w.gc = gc
	c.windows[id] = w
	return w, nil
}

func (w *Window) setWindowType() error {
	prop, err := w.c.atom("_NET_WM_WINDOW_TYPE")
	if err != nil {
		return err
	}
	dockType, err := w.c.atom("_NET_WM_WINDOW_TYPE_DOCK")
	if err != nil {
		return err
	}
	return xproto.ChangePropertyChecked(w.c.conn, xproto.PropModeReplace, w.id, prop,
		xproto.AtomAtom, 32, 1, cardinals(int(dockType))).Check()
}

// Attach binds the panel shown in the window and the function painting it.
func (w *Window) Attach(p *dock.Panel, frame func() (*image.RGBA, error)) {
	w.panel = p
	w.frame = frame
}

// ID returns the X window id.
func (w *Window) ID() uint32 { return uint32(w.id) }

// Screen implements dock.Window.
func (w *Window) Screen() dock.Screen { return w.screen }

// Visible implements dock.Window.
func (w *Window) Visible() bool { return w.visible && !w.closed }

// Present implements dock.Window.
func (w *Window) Present() {
	if w.closed || w.visible {
		return
	}
	xproto.MapWindow(w.c.conn, w.id)
	w.visible = true
}

// Hide unmaps the window.
func (w *Window) Hide() {
	if w.closed || !w.visible {
		return
	}
	xproto.UnmapWindow(w.c.conn, w.id)
	w.visible = false
}

// MoveResize implements dock.Window.
func (w *Window) MoveResize(x, y, width, height int) error {
	if w.closed {
		return errors.New("window closed")
	}
	err := xproto.ConfigureWindowChecked(w.c.conn, w.id,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(x)), uint32(int32(y)), uint32(max(width, 1)), uint32(max(height, 1))}).Check()
	if err != nil {
		return fmt.Errorf("failed to configure the window: %w", err)
	}
	return nil
}

// CreateInputShape implements dock.Window.
func (w *Window) CreateInputShape(r dock.Rect) (dock.Shape, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("empty input shape %dx%d", r.Width, r.Height)
	}
	return &Shape{rect: r}, nil
}

// SetInputShape implements dock.Window. A nil shape gives the input back to
// the whole window.
func (w *Window) SetInputShape(s dock.Shape) error {
	if w.closed {
		return errors.New("window closed")
	}
	if s == nil {
		err := shape.MaskChecked(w.c.conn, shape.SoSet, shape.SkInput, w.id, 0, 0, xproto.Pixmap(0)).Check()
		if err != nil {
			return fmt.Errorf("failed to reset the input shape: %w", err)
		}
		return nil
	}
	sh, ok := s.(*Shape)
	if !ok {
		return errForeignShape
	}
	if sh.destroyed {
		return errors.New("input shape already destroyed")
	}
	err := shape.RectanglesChecked(w.c.conn, shape.SoSet, shape.SkInput, xproto.ClipOrderingUnsorted,
		w.id, 0, 0, []xproto.Rectangle{rectangle(sh.rect)}).Check()
	if err != nil {
		return fmt.Errorf("failed to set the input shape: %w", err)
	}
	return nil
}

// SetStrut implements dock.Window.
func (w *Window) SetStrut(s dock.Strut) error {
	strut, partial := strutData(s)
	if err := w.c.setCardinals(w.id, "_NET_WM_STRUT", strut); err != nil {
		return err
	}
	return w.c.setCardinals(w.id, "_NET_WM_STRUT_PARTIAL", partial)
}

// QueueDraw implements dock.Window. Draws requested before the loop gets
// to the first one are merged.
func (w *Window) QueueDraw() {
	if w.closed || w.frame == nil {
		return
	}
	w.draw.Schedule(w.c.loop, w.paint)
}

func (w *Window) paint() {
	if w.closed || !w.visible {
		return
	}
	img, err := w.frame()
	if err != nil {
		w.c.logger.Debug("nothing to draw", "err", err)
		return
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	data := toBGRA(img)
	rows := rowsPerRequest(width, w.c.maxLen)
	stride := 4 * width
	for y := 0; y < height; y += rows {
		n := min(rows, height-y)
		xproto.PutImage(w.c.conn, xproto.ImageFormatZPixmap, xproto.Drawable(w.id), w.gc,
			uint16(width), uint16(n), 0, int16(y), 0, w.c.screen.RootDepth,
			data[stride*y:stride*(y+n)])
	}
}

// Close destroys the window.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.draw.Cancel()
	xproto.FreeGC(w.c.conn, w.gc)
	xproto.DestroyWindow(w.c.conn, w.id)
	delete(w.c.windows, w.id)
}
