package dock

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dockwave/internal/background"
	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// Panel is one dock: a row of icons in its own window. All its methods must
// be called from the loop goroutine.
type Panel struct {
	ID   string
	Name string

	Icons []*Icon

	// RefCount is the number of icons opening this panel, 0 for a top-level panel.
	RefCount    int
	Horizontal  bool
	DirectionUp bool
	Align       float64
	Ratio       float64
	Visibility  Visibility

	Container Container

	FlatWidth         float64
	ActiveWidth       int
	ActiveHeight      int
	MinWidth          int
	MinHeight         int
	MaxWidth          int
	MaxHeight         int
	DecorationsWidth  int
	DecorationsHeight int
	// MaxIconHeight is the tallest non-separator icon at ratio 1.
	MaxIconHeight float64

	GapX           int
	GapY           int
	LeftMargin     int
	MinRightMargin int

	MagnitudeIndex int
	MagnitudeMax   float64
	Growing        bool
	Shrinking      bool
	Folding        float64

	MousePosition MousePosition
	InputState    InputState

	Dragging        bool
	CanDrop         bool
	DragGroup       int
	AvoidingMargin  float64
	IconFlyingAway  bool
	EntranceAllowed bool

	// BackgroundImage and the two colours are the panel's own background.
	BackgroundImage string
	BackgroundDark  config.RGBA
	BackgroundLight config.RGBA
	Background      *background.Buffer

	params      config.Params
	loop        *loop.Loop
	window      Window
	renderer    Renderer
	backgrounds Backgrounds
	manager     Manager
	events      Events
	animator    Animator
	wmHints     WMHints
	painter     IconPainter
	logger      *log.Logger

	shapes        shapeSet
	lastSizeIters int
	closed        bool

	// Last position asked of the window, along and across the panel axis.
	requestedX, requestedY int
	moveRequested          bool

	sizeTask       loop.Deferred
	moveResizeTask loop.Deferred
	backgroundTask loop.Deferred
	wmIconsTask    loop.Deferred
	leaveTask      loop.Deferred
}

// Options holds the collaborators of a panel. Loop and Window are required,
// nil optional ones are replaced by no-ops.
type Options struct {
	Name        string
	Position    Position
	Align       float64
	Visibility  Visibility
	GapX        int
	GapY        int
	Params      config.Params
	Loop        *loop.Loop
	Window      Window
	Renderer    Renderer
	Backgrounds Backgrounds
	Manager     Manager
	Events      Events
	Animator    Animator
	WMHints     WMHints
	Painter     IconPainter
	Logger      *log.Logger
}

// New creates an empty panel.
func New(opts Options) *Panel {
	p := &Panel{
		ID:              uuid.NewString(),
		Name:            opts.Name,
		Horizontal:      opts.Position.Horizontal(),
		DirectionUp:     opts.Position.DirectionUp(),
		Align:           opts.Align,
		Ratio:           1,
		Visibility:      opts.Visibility,
		GapX:            opts.GapX,
		GapY:            opts.GapY,
		MagnitudeMax:    1,
		MousePosition:   MouseOutside,
		AvoidingMargin:  0.5,
		EntranceAllowed: true,
		params:          opts.Params,
		loop:            opts.Loop,
		window:          opts.Window,
		renderer:        opts.Renderer,
		backgrounds:     opts.Backgrounds,
		manager:         opts.Manager,
		events:          opts.Events,
		animator:        opts.Animator,
		wmHints:         opts.WMHints,
		painter:         opts.Painter,
		logger:          opts.Logger,
	}
	if p.renderer == nil {
		p.renderer = LinearRenderer{}
	}
	if p.manager == nil {
		p.manager = noopManager{}
	}
	if p.events == nil {
		p.events = noopEvents{}
	}
	if p.animator == nil {
		p.animator = noopAnimator{}
	}
	if p.wmHints == nil {
		p.wmHints = noopWMHints{}
	}
	if p.painter == nil {
		p.painter = noopIconPainter{}
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	p.logger = p.logger.With("panel", p.Name)
	return p
}

// Params returns the parameters the panel was built with.
func (p *Panel) Params() config.Params { return p.params }

// Window returns the panel window.
func (p *Panel) Window() Window { return p.window }

// Loop returns the loop the panel schedules its work on.
func (p *Panel) Loop() *loop.Loop { return p.loop }

// Renderer returns the panel view.
func (p *Panel) Renderer() Renderer { return p.renderer }

// Closed reports whether Close was called.
func (p *Panel) Closed() bool { return p.closed }

// IsSubPanel reports whether at least one icon opens this panel.
func (p *Panel) IsSubPanel() bool { return p.RefCount > 0 }

// AutoHide reports whether the panel hides when the pointer leaves it.
func (p *Panel) AutoHide() bool { return p.Visibility == VisibilityAutoHide }

// LastSizeIterations is the number of ratio iterations of the last size update.
func (p *Panel) LastSizeIterations() int { return p.lastSizeIters }

// SetParams replaces the parameters, typically after a configuration reload,
// and schedules a size update.
func (p *Panel) SetParams(par config.Params) {
	p.params = par
	p.TriggerUpdateSize()
}

// Close cancels every pending task of the panel and its icons, and releases
// its shapes and background. The panel must not be used afterwards.
func (p *Panel) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.sizeTask.Cancel()
	p.moveResizeTask.Cancel()
	p.backgroundTask.Cancel()
	p.wmIconsTask.Cancel()
	p.leaveTask.Cancel()
	for _, icon := range p.Icons {
		icon.cancelTasks()
	}
	p.shapes.destroyAll()
	p.Background = nil
}

// InsertIcon inserts icon at index, or at the end when index is out of range.
func (p *Panel) InsertIcon(icon *Icon, index int) {
	icon.ParentName = p.Name
	icon.rescale(p.Ratio)
	if index < 0 || index > len(p.Icons) {
		index = len(p.Icons)
	}
	p.Icons = slices.Insert(p.Icons, index, icon)
	p.FlatWidth = FlatWidth(p.Icons, p.params)
	p.TriggerUpdateSize()
}

// RemoveIcon removes icon from the panel and reports whether it was there.
func (p *Panel) RemoveIcon(icon *Icon) bool {
	i := slices.Index(p.Icons, icon)
	if i < 0 {
		return false
	}
	icon.cancelTasks()
	p.Icons = slices.Delete(p.Icons, i, i+1)
	p.FlatWidth = FlatWidth(p.Icons, p.params)
	p.TriggerUpdateSize()
	return true
}

// MoveIcon moves icon so that it ends up before the icon now at index, or
// last when index is out of range. It reports whether icon was on p.
func (p *Panel) MoveIcon(icon *Icon, index int) bool {
	i := slices.Index(p.Icons, icon)
	if i < 0 {
		return false
	}
	if index > i {
		index--
	}
	p.Icons = slices.Delete(p.Icons, i, i+1)
	if index < 0 || index > len(p.Icons) {
		index = len(p.Icons)
	}
	p.Icons = slices.Insert(p.Icons, index, icon)
	RestPositions(p.Icons, p.FlatWidth, p.params)
	p.TriggerUpdateSize()
	return true
}

// ResizeIcon changes the nominal size of icon, reloads its image and schedules
// a size update.
func (p *Panel) ResizeIcon(icon *Icon, width, height float64) {
	icon.NominalWidth = width
	icon.NominalHeight = height
	icon.rescale(p.Ratio)
	p.painter.ReloadIconImage(icon, p)
	p.TriggerUpdateSize()
	p.QueueDraw()
}

// IconIndex returns the position of icon, or -1.
func (p *Panel) IconIndex(icon *Icon) int {
	return slices.Index(p.Icons, icon)
}

// PointedIcon returns the icon under the pointer, if any.
func (p *Panel) PointedIcon() *Icon {
	for _, icon := range p.Icons {
		if icon.Pointed {
			return icon
		}
	}
	return nil
}

// QueueDraw asks the window for a redraw.
func (p *Panel) QueueDraw() {
	if p.window != nil && !p.closed {
		p.window.QueueDraw()
	}
}

func (p *Panel) screen() Screen {
	if p.window == nil {
		return Screen{}
	}
	return p.window.Screen()
}

// screenWidth and screenHeight are along and across the panel axis.
func (p *Panel) screenWidth() int {
	s := p.screen()
	if p.Horizontal {
		return s.Width
	}
	return s.Height
}

func (p *Panel) screenHeight() int {
	s := p.screen()
	if p.Horizontal {
		return s.Height
	}
	return s.Width
}

func (p *Panel) screenOffsetX() int {
	s := p.screen()
	if p.Horizontal {
		return s.X
	}
	return s.Y
}

func (p *Panel) screenOffsetY() int {
	s := p.screen()
	if p.Horizontal {
		return s.Y
	}
	return s.X
}

// MaxAuthorizedWidth is the widest the panel may get along its axis.
func (p *Panel) MaxAuthorizedWidth() int {
	w := p.screenWidth()
	if limit := p.params.Docks.MaxAuthorizedWidth; limit > 0 && (w == 0 || limit < w) {
		return limit
	}
	return w
}

func (p *Panel) maxRatio() float64 {
	if p.RefCount == 0 {
		return 1
	}
	if r := p.params.Backends.SubPanelRatio; r > 0 && r <= 1 {
		return r
	}
	return 1
}

func (p *Panel) rescaleIcons(ratio float64) {
	p.Ratio = ratio
	for _, icon := range p.Icons {
		icon.rescale(ratio)
	}
}

func (p *Panel) computeMaxIconHeight() {
	h := 0.0
	for _, icon := range p.Icons {
		if !icon.IsSeparator() {
			h = max(h, icon.NominalHeight)
		}
	}
	if h == 0 {
		h = config.DefaultMaxIconHeight
	}
	p.MaxIconHeight = h
}
