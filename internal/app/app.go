// Package app wires the panels of a configuration to their collaborators:
// the event loop, the registry, the painter, the animation driver, the
// pointer handler and the background loader.
package app

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwave/internal/anim"
	"github.com/Gaurav-Gosain/dockwave/internal/background"
	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/input"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
	"github.com/Gaurav-Gosain/dockwave/internal/render"
)

// WindowFactory creates the window of the panel named name.
type WindowFactory func(name string, pos dock.Position) (dock.Window, error)

// frameAttacher is implemented by windows that paint themselves.
type frameAttacher interface {
	Attach(p *dock.Panel, frame func() (*image.RGBA, error))
}

// hider is implemented by windows that can be unmapped.
type hider interface {
	Hide()
}

// App owns the panels and everything they share.
type App struct {
	Loop        *loop.Loop
	Registry    *dock.Registry
	Logger      *log.Logger
	Painter     *render.Painter
	Anim        *anim.Driver
	Input       *input.Handler
	Backgrounds *background.Loader
	LogMessages []LogMessage

	params config.Params
	hints  dock.WMHints
	now    func() time.Time
}

// Options configures an App.
type Options struct {
	Loop   *loop.Loop
	Logger *log.Logger
	Params config.Params
	// WMHints publishes icon geometry, the App logs it when nil.
	WMHints dock.WMHints
	// Clock stamps log messages, time.Now when nil.
	Clock func() time.Time
}

// New returns an App without panels.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := opts.Loop
	if l == nil {
		l = loop.New()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	a := &App{
		Loop:        l,
		Registry:    dock.NewRegistry(),
		Logger:      logger,
		Painter:     render.NewPainter(logger),
		Anim:        anim.NewDriver(l, logger),
		Backgrounds: background.NewLoader(opts.Params.Docks, logger),
		params:      opts.Params,
		hints:       opts.WMHints,
		now:         now,
	}
	a.Input = input.NewHandler(a, logger)
	if a.hints == nil {
		a.hints = a
	}
	return a
}

// Params returns the parameters the panels currently use.
func (a *App) Params() config.Params { return a.params }

// Build creates the panels of cfg with windows from newWindow, links the
// icons to the sub-panels they open and shows the top-level panels.
func (a *App) Build(cfg *config.UserConfig, newWindow WindowFactory) error {
	links := make(map[*dock.Icon]string)
	for _, pc := range cfg.Panels {
		if err := a.addPanel(cfg, pc, newWindow, links); err != nil {
			return err
		}
	}

	for icon, name := range links {
		sub := a.Registry.PanelByName(name)
		if sub == nil {
			a.LogWarn("Icon %s opens unknown panel %s", icon.Name, name)
			continue
		}
		a.Registry.Link(icon, sub)
	}

	for _, p := range a.Registry.Panels() {
		if p.IsSubPanel() {
			continue
		}
		p.Window().Present()
		p.TriggerUpdateSize()
	}
	a.LogInfo("Built %d panels", len(a.Registry.Panels()))
	return nil
}

func (a *App) addPanel(cfg *config.UserConfig, pc config.PanelConfig, newWindow WindowFactory, links map[*dock.Icon]string) error {
	pos, err := dock.ParsePosition(pc.Position)
	if err != nil {
		return fmt.Errorf("panel %s: %w", pc.Name, err)
	}
	vis, err := dock.ParseVisibility(pc.Visibility)
	if err != nil {
		return fmt.Errorf("panel %s: %w", pc.Name, err)
	}
	align := 0.5
	if pc.Alignment != nil {
		align = *pc.Alignment
	}

	win, err := newWindow(pc.Name, pos)
	if err != nil {
		return fmt.Errorf("failed to create the window of panel %s: %w", pc.Name, err)
	}

	p := dock.New(dock.Options{
		Name:        pc.Name,
		Position:    pos,
		Align:       align,
		Visibility:  vis,
		GapX:        pc.GapX,
		GapY:        pc.GapY,
		Params:      a.params,
		Loop:        a.Loop,
		Window:      win,
		Renderer:    dock.LinearRenderer{},
		Backgrounds: a,
		Manager:     a.Registry,
		Events:      a,
		Animator:    a.Anim,
		WMHints:     a.hints,
		Painter:     a.Painter,
		Logger:      a.Logger,
	})
	if !a.Registry.Add(p) {
		return fmt.Errorf("duplicate panel name %q", pc.Name)
	}
	if fa, ok := win.(frameAttacher); ok {
		fa.Attach(p, func() (*image.RGBA, error) { return a.Painter.Frame(p) })
	}

	for _, ic := range pc.Icons {
		w, h := ic.Width, ic.Height
		if w <= 0 {
			w = cfg.Icons.DefaultWidth
		}
		if h <= 0 {
			h = cfg.Icons.DefaultHeight
		}
		icon := dock.NewIcon(ic.Name, dock.ParseIconKind(ic.Kind), float64(w), float64(h))
		icon.Class = ic.Class
		if ic.SubPanel != "" {
			icon.Kind = dock.KindContainer
			links[icon] = ic.SubPanel
		}
		p.InsertIcon(icon, -1)
	}
	return nil
}

// Load implements dock.Backgrounds with the loader of the current parameters.
func (a *App) Load(req background.Request) (*background.Buffer, error) {
	return a.Backgrounds.Load(req)
}

// AddIcon inserts icon at the end of panel name with an insertion animation.
func (a *App) AddIcon(name string, icon *dock.Icon) error {
	p := a.Registry.PanelByName(name)
	if p == nil {
		return fmt.Errorf("no panel named %q", name)
	}
	p.InsertIcon(icon, -1)
	a.Anim.AnimateInsert(p, icon)
	return nil
}

// RemoveIcon removes icon from panel name after a removal animation.
func (a *App) RemoveIcon(name string, icon *dock.Icon) error {
	p := a.Registry.PanelByName(name)
	if p == nil {
		return fmt.Errorf("no panel named %q", name)
	}
	if p.IconIndex(icon) < 0 {
		return fmt.Errorf("icon %s is not on panel %s", icon.Name, name)
	}
	a.Anim.AnimateRemove(p, icon, func() {
		if icon.SubPanel != nil {
			a.Registry.Unlink(icon)
		}
	})
	return nil
}

// Reload gives every panel new parameters and recomputes their size.
func (a *App) Reload(par config.Params) {
	a.params = par
	a.Backgrounds = background.NewLoader(par.Docks, a.Logger)
	for _, p := range a.Registry.Panels() {
		// Colours may change without the size changing.
		p.Background = nil
		p.SetParams(par)
	}
	a.LogInfo("Configuration reloaded for %d panels", len(a.Registry.Panels()))
}

// Close closes every panel and drops their animation and input state.
func (a *App) Close() {
	for _, p := range a.Registry.Panels() {
		a.Anim.Forget(p)
		a.Input.Forget(p)
	}
	a.Registry.Close()
}
