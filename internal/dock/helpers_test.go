package dock

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/Gaurav-Gosain/dockwave/internal/background"
	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

type fakeShape struct {
	rect      Rect
	destroyed bool
}

func (s *fakeShape) Destroy() { s.destroyed = true }

type fakeWindow struct {
	screen    Screen
	visible   bool
	presented int
	moves     []Rect
	created   []*fakeShape
	applied   []Shape
	struts    []Strut
	draws     int
	shapeErr  error
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{screen: Screen{Width: 1920, Height: 1080}, visible: true}
}

func (w *fakeWindow) Screen() Screen { return w.screen }
func (w *fakeWindow) Visible() bool  { return w.visible }
func (w *fakeWindow) Present()       { w.presented++; w.visible = true }
func (w *fakeWindow) QueueDraw()     { w.draws++ }

func (w *fakeWindow) MoveResize(x, y, width, height int) error {
	w.moves = append(w.moves, Rect{X: x, Y: y, Width: width, Height: height})
	return nil
}

func (w *fakeWindow) CreateInputShape(r Rect) (Shape, error) {
	if w.shapeErr != nil {
		return nil, w.shapeErr
	}
	s := &fakeShape{rect: r}
	w.created = append(w.created, s)
	return s, nil
}

func (w *fakeWindow) SetInputShape(s Shape) error {
	w.applied = append(w.applied, s)
	return nil
}

func (w *fakeWindow) SetStrut(s Strut) error {
	w.struts = append(w.struts, s)
	return nil
}

type recordingAnimator struct {
	calls []string
}

func (a *recordingAnimator) StartGrowing(p *Panel)   { a.calls = append(a.calls, "grow") }
func (a *recordingAnimator) StartShrinking(p *Panel) { a.calls = append(a.calls, "shrink") }
func (a *recordingAnimator) StartShowing(p *Panel)   { a.calls = append(a.calls, "show") }

type recordingEvents struct {
	calls []string
}

func (e *recordingEvents) EnterPanel(p *Panel) { e.calls = append(e.calls, "enter:"+p.Name) }
func (e *recordingEvents) LeavePanel(p *Panel) { e.calls = append(e.calls, "leave:"+p.Name) }
func (e *recordingEvents) UnfoldSubPanel(icon *Icon, parent *Panel) {
	e.calls = append(e.calls, "unfold:"+icon.Name)
}

type recordingPainter struct {
	calls []string
}

func (r *recordingPainter) DrawSubPanelContent(icon *Icon, parent *Panel) {
	r.calls = append(r.calls, "content:"+icon.Name)
}

func (r *recordingPainter) ReloadIconImage(icon *Icon, p *Panel) {
	r.calls = append(r.calls, "reload:"+icon.Name)
}

func (r *recordingPainter) RedrawIcon(icon *Icon, p *Panel) {
	r.calls = append(r.calls, "redraw:"+icon.Name)
}

type countingBackgrounds struct {
	loads int
}

func (b *countingBackgrounds) Load(req background.Request) (*background.Buffer, error) {
	b.loads++
	if req.Width <= 0 || req.Height <= 0 {
		return nil, errors.New("empty")
	}
	return &background.Buffer{
		Width:  req.Width,
		Height: req.Height,
		Image:  image.NewRGBA(image.Rect(0, 0, req.Width, req.Height)),
	}, nil
}

type countingWMHints struct {
	calls int
}

func (h *countingWMHints) SetIconsGeometry(*Panel) { h.calls++ }

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type testPanel struct {
	*Panel
	win      *fakeWindow
	loop     *loop.Loop
	clock    *fakeClock
	animator *recordingAnimator
	events   *recordingEvents
}

// newTestPanel builds a bottom, centered panel of n launchers of 48x48 on a
// 1920x1080 screen. mutate may adjust the parameters.
func newTestPanel(name string, n int, mutate func(*config.Params)) *testPanel {
	par := config.DefaultParams()
	if mutate != nil {
		mutate(&par)
	}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tp := &testPanel{
		win:      newFakeWindow(),
		loop:     loop.New(loop.WithClock(clock.now)),
		clock:    clock,
		animator: &recordingAnimator{},
		events:   &recordingEvents{},
	}
	tp.Panel = New(Options{
		Name:     name,
		Position: PositionBottom,
		Align:    0.5,
		Params:   par,
		Loop:     tp.loop,
		Window:   tp.win,
		Animator: tp.animator,
		Events:   tp.events,
	})
	for i := range n {
		tp.InsertIcon(NewIcon(fmt.Sprintf("icon%d", i), KindLauncher, 48, 48), -1)
	}
	return tp
}

func launchers(n int, par config.Params) []*Icon {
	icons := make([]*Icon, n)
	for i := range icons {
		icons[i] = NewIcon(fmt.Sprintf("icon%d", i), KindLauncher, 48, 48)
	}
	RestPositions(icons, FlatWidth(icons, par), par)
	return icons
}
