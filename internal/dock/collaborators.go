package dock

import "github.com/Gaurav-Gosain/dockwave/internal/background"

// Renderer is the view that computes a panel's extents and icon positions.
type Renderer interface {
	// ComputeSize fills the max/min/decorations extents and may set the active ones.
	ComputeSize(p *Panel)
	// CalculateIcons lays the icons out for the current pointer and returns the pointed icon.
	CalculateIcons(p *Panel) *Icon
}

// InputShapeUpdater is implemented by renderers that refine the input shapes.
type InputShapeUpdater interface {
	UpdateInputShape(p *Panel)
}

// SubPanelPlacer is implemented by renderers that position sub-panels.
type SubPanelPlacer interface {
	SetSubPanelPosition(pointed *Icon, parent *Panel)
}

// Window is the panel's top-level surface. Coordinates are physical
// (not swapped for vertical panels).
type Window interface {
	Screen() Screen
	Visible() bool
	Present()
	MoveResize(x, y, width, height int) error
	CreateInputShape(r Rect) (Shape, error)
	// SetInputShape applies s, nil meaning the whole window.
	SetInputShape(s Shape) error
	SetStrut(s Strut) error
	QueueDraw()
}

// Shape is a windowing input region owned by the panel that created it.
type Shape interface {
	Destroy()
}

// Backgrounds produces background buffers.
type Backgrounds interface {
	Load(req background.Request) (*background.Buffer, error)
}

// Manager resolves panels and the icons pointing at them.
type Manager interface {
	// PointingIcon returns the icon opening p and the panel holding that icon.
	PointingIcon(p *Panel) (*Icon, *Panel)
	PanelByName(name string) *Panel
}

// Events receives the notifications a panel emits.
type Events interface {
	EnterPanel(p *Panel)
	LeavePanel(p *Panel)
	UnfoldSubPanel(icon *Icon, parent *Panel)
}

// Animator drives the magnification and auto-hide animations.
type Animator interface {
	StartGrowing(p *Panel)
	StartShrinking(p *Panel)
	StartShowing(p *Panel)
}

// WMHints publishes icon geometry to the window manager.
type WMHints interface {
	SetIconsGeometry(p *Panel)
}

// IconPainter redraws icon images.
type IconPainter interface {
	DrawSubPanelContent(icon *Icon, parent *Panel)
	ReloadIconImage(icon *Icon, p *Panel)
	RedrawIcon(icon *Icon, p *Panel)
}

type noopManager struct{}

func (noopManager) PointingIcon(*Panel) (*Icon, *Panel) { return nil, nil }
func (noopManager) PanelByName(string) *Panel           { return nil }

type noopEvents struct{}

func (noopEvents) EnterPanel(*Panel)            {}
func (noopEvents) LeavePanel(*Panel)            {}
func (noopEvents) UnfoldSubPanel(*Icon, *Panel) {}

type noopAnimator struct{}

func (noopAnimator) StartGrowing(*Panel)   {}
func (noopAnimator) StartShrinking(*Panel) {}
func (noopAnimator) StartShowing(*Panel)   {}

type noopWMHints struct{}

func (noopWMHints) SetIconsGeometry(*Panel) {}

type noopIconPainter struct{}

func (noopIconPainter) DrawSubPanelContent(*Icon, *Panel) {}
func (noopIconPainter) ReloadIconImage(*Icon, *Panel)     {}
func (noopIconPainter) RedrawIcon(*Icon, *Panel)          {}
