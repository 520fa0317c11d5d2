// Package x11 implements the panel windows on an X server with the
// jezek/xgb bindings: dock window type, struts, SHAPE input regions, icon
// geometry hints, frame upload and an event pump feeding the loop.
package x11

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/shape"
	"github.com/jezek/xgb/xinerama"
	"github.com/jezek/xgb/xproto"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// ErrNoShapeExtension is returned by Open when the server cannot shape
// input regions.
var ErrNoShapeExtension = errors.New("X server lacks the SHAPE extension")

// PointerHandler receives the pointer events of panel windows, on the loop
// goroutine. Coordinates are relative to the window.
type PointerHandler interface {
	HandleMotion(p *dock.Panel, x, y int)
	HandleEnter(p *dock.Panel, x, y int)
	HandleLeave(p *dock.Panel, x, y int)
	HandlePress(p *dock.Panel, x, y int)
	HandleRelease(p *dock.Panel, x, y int)
}

// Conn is a connection to the X server. Windows and atoms must only be used
// from the loop goroutine.
type Conn struct {
	conn     *xgb.Conn
	screen   *xproto.ScreenInfo
	maxLen   uint32
	monitors []dock.Screen
	atoms    map[string]xproto.Atom
	windows  map[xproto.Window]*Window
	loop     *loop.Loop
	logger   *log.Logger
}

// Open connects to the display named by $DISPLAY.
func Open(l *loop.Loop, logger *log.Logger) (*Conn, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	xc, err := xgb.NewConnDisplay("")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the X server: %w", err)
	}
	if err := shape.Init(xc); err != nil {
		xc.Close()
		return nil, fmt.Errorf("%w: %v", ErrNoShapeExtension, err)
	}

	setup := xproto.Setup(xc)
	c := &Conn{
		conn:    xc,
		screen:  setup.DefaultScreen(xc),
		maxLen:  uint32(setup.MaximumRequestLength),
		atoms:   make(map[string]xproto.Atom),
		windows: make(map[xproto.Window]*Window),
		loop:    l,
		logger:  logger,
	}
	c.monitors = c.queryMonitors()
	return c, nil
}

// queryMonitors lists the monitors, the whole root window when Xinerama is
// not available.
func (c *Conn) queryMonitors() []dock.Screen {
	root := []dock.Screen{{Width: int(c.screen.WidthInPixels), Height: int(c.screen.HeightInPixels)}}
	if err := xinerama.Init(c.conn); err != nil {
		c.logger.Debug("xinerama unavailable, using the root window", "err", err)
		return root
	}
	reply, err := xinerama.QueryScreens(c.conn).Reply()
	if err != nil || len(reply.ScreenInfo) == 0 {
		return root
	}
	screens := make([]dock.Screen, len(reply.ScreenInfo))
	for i, s := range reply.ScreenInfo {
		screens[i] = dock.Screen{X: int(s.XOrg), Y: int(s.YOrg), Width: int(s.Width), Height: int(s.Height)}
	}
	return screens
}

// Monitors returns the geometry of every monitor.
func (c *Conn) Monitors() []dock.Screen { return c.monitors }

// Monitor returns monitor n, or the first one when n is out of range.
func (c *Conn) Monitor(n int) dock.Screen {
	if n < 0 || n >= len(c.monitors) {
		n = 0
	}
	return c.monitors[n]
}

// atom interns name once.
func (c *Conn) atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(c.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// setCardinals replaces property name of win with 32-bit values.
func (c *Conn) setCardinals(win xproto.Window, name string, data []byte) error {
	prop, err := c.atom(name)
	if err != nil {
		return err
	}
	err = xproto.ChangePropertyChecked(c.conn, xproto.PropModeReplace, win, prop,
		xproto.AtomCardinal, 32, uint32(len(data)/4), data).Check()
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}

// SetIconsGeometry implements dock.WMHints: every application icon of p
// tells the window manager where its window minimizes to.
func (c *Conn) SetIconsGeometry(p *dock.Panel) {
	for _, icon := range p.Icons {
		if icon.AppWindow == 0 {
			continue
		}
		r := iconGeometry(p, icon)
		err := c.setCardinals(xproto.Window(icon.AppWindow), "_NET_WM_ICON_GEOMETRY",
			cardinals(r.X, r.Y, r.Width, r.Height))
		if err != nil {
			c.logger.Warn("failed to publish the icon geometry", "icon", icon.Name, "err", err)
		}
	}
}

// Run posts every event to the loop until ctx is done or the connection
// breaks. The reader goroutine stops when the connection is closed.
func (c *Conn) Run(ctx context.Context, h PointerHandler) error {
	errc := make(chan error, 1)
	go func() {
		for {
			ev, xerr := c.conn.WaitForEvent()
			if ev == nil && xerr == nil {
				errc <- errors.New("X connection closed")
				return
			}
			if xerr != nil {
				c.logger.Debug("X error", "err", xerr)
				continue
			}
			c.loop.Post(func() { c.dispatch(ev, h) })
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errc:
		return err
	}
}

// dispatch routes one event to the window it is about.
func (c *Conn) dispatch(ev xgb.Event, h PointerHandler) {
	switch e := ev.(type) {
	case xproto.MotionNotifyEvent:
		if w := c.windows[e.Event]; w != nil && w.panel != nil {
			h.HandleMotion(w.panel, int(e.EventX), int(e.EventY))
		}
	case xproto.EnterNotifyEvent:
		if w := c.windows[e.Event]; w != nil && w.panel != nil {
			h.HandleEnter(w.panel, int(e.EventX), int(e.EventY))
		}
	case xproto.LeaveNotifyEvent:
		if w := c.windows[e.Event]; w != nil && w.panel != nil {
			h.HandleLeave(w.panel, int(e.EventX), int(e.EventY))
		}
	case xproto.ButtonPressEvent:
		if w := c.windows[e.Event]; w != nil && w.panel != nil && e.Detail == xproto.ButtonIndex1 {
			h.HandlePress(w.panel, int(e.EventX), int(e.EventY))
		}
	case xproto.ButtonReleaseEvent:
		if w := c.windows[e.Event]; w != nil && w.panel != nil && e.Detail == xproto.ButtonIndex1 {
			h.HandleRelease(w.panel, int(e.EventX), int(e.EventY))
		}
	case xproto.ConfigureNotifyEvent:
		if w := c.windows[e.Window]; w != nil && w.panel != nil {
			w.panel.HandleConfigure(int(e.X), int(e.Y), int(e.Width), int(e.Height))
		}
	case xproto.ExposeEvent:
		if w := c.windows[e.Window]; w != nil && e.Count == 0 {
			w.QueueDraw()
		}
	}
}

// Close destroys every window and closes the connection.
func (c *Conn) Close() {
	for _, w := range c.windows {
		w.Close()
	}
	c.conn.Close()
}
