package dock

import (
	"testing"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

// hiddenSubPanelFixture is a subPanelFixture whose sub-panel window is not
// mapped yet and whose opening icon sits at 150 in a parent at 700.
func hiddenSubPanelFixture(animate bool) *subPanelFixture {
	f := newSubPanelFixture(func(p *config.Params) {
		p.Docks.AnimateSubPanels = animate
	})
	f.sub.win.visible = false
	f.sub.win.moves = nil
	f.parent.Container = Container{X: 700, Y: 965, Width: 400, Height: 115}
	f.icon.DrawX = 150
	f.icon.Scale = 1
	return f
}

func TestShowSubPanelPlacesItAboveItsIcon(t *testing.T) {
	f := hiddenSubPanelFixture(false)
	f.parent.ShowSubPanel(f.icon)

	sub := f.sub
	if !sub.win.visible || sub.win.presented != 1 {
		t.Errorf("visible = %v, presented = %d, want true, 1", sub.win.visible, sub.win.presented)
	}
	if len(sub.win.moves) != 1 {
		t.Fatalf("moves = %v, want one", sub.win.moves)
	}
	m := sub.win.moves[0]
	if m.Width != sub.MaxWidth || m.Height != sub.MaxHeight {
		t.Errorf("size = %dx%d, want %dx%d", m.Width, m.Height, sub.MaxWidth, sub.MaxHeight)
	}

	anchor := 700 + 150 + int(f.icon.Width/2)
	if center := m.X + m.Width/2; center < anchor-1 || center > anchor+1 {
		t.Errorf("sub-panel center = %d, want %d", center, anchor)
	}
	if want := 1080 - sub.MaxHeight - f.parent.ActiveHeight; m.Y != want {
		t.Errorf("y = %d, want %d", m.Y, want)
	}
	if sub.Align != 0.5 {
		t.Errorf("Align = %v, want 0.5", sub.Align)
	}
	if sub.Folding != 0 {
		t.Errorf("Folding = %v without animation, want 0", sub.Folding)
	}

	want := "unfold:" + f.icon.Name
	if calls := f.parent.events.calls; len(calls) != 1 || calls[0] != want {
		t.Errorf("events = %v, want [%s]", calls, want)
	}
}

func TestShowSubPanelUnfolds(t *testing.T) {
	f := hiddenSubPanelFixture(true)
	f.parent.ShowSubPanel(f.icon)

	if f.sub.Folding != config.UnfoldStart {
		t.Errorf("Folding = %v, want %v", f.sub.Folding, config.UnfoldStart)
	}
	if calls := f.sub.animator.calls; len(calls) != 1 || calls[0] != "grow" {
		t.Errorf("animator calls = %v, want [grow]", calls)
	}
}

func TestShowSubPanelAlreadyVisible(t *testing.T) {
	tests := []struct {
		name      string
		shrinking bool
		want      []string
	}{
		{"shrinking grows back", true, []string{"grow"}},
		{"steady is left alone", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubPanelFixture(nil)
			f.sub.win.moves = nil
			f.sub.Shrinking = tt.shrinking

			f.parent.ShowSubPanel(f.icon)

			if len(f.sub.win.moves) != 0 {
				t.Errorf("moves = %v, want none", f.sub.win.moves)
			}
			if len(f.parent.events.calls) != 0 {
				t.Errorf("events = %v, want none", f.parent.events.calls)
			}
			got := f.sub.animator.calls
			if len(got) != len(tt.want) {
				t.Fatalf("animator calls = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("animator calls[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShowSubPanelWithoutSubPanel(t *testing.T) {
	tp := newTestPanel("main", 1, nil)
	tp.ShowSubPanel(tp.Icons[0])
	if len(tp.events.calls) != 0 {
		t.Errorf("events = %v, want none", tp.events.calls)
	}
}

func TestSetSubPanelPositionAcrossOrientations(t *testing.T) {
	tests := []struct {
		name      string
		up        bool
		wantAlign float64
	}{
		{"right parent", true, 1},
		{"left parent", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubPanelFixture(nil)
			parent := f.parent
			parent.Horizontal, parent.DirectionUp = false, tt.up
			parent.GapY = 5
			parent.ActiveHeight = 100
			parent.Container = Container{X: 300, Width: 400, Height: 100}
			f.icon.DrawX, f.icon.Scale = 100, 1

			LinearRenderer{}.SetSubPanelPosition(f.icon, parent.Panel)

			sub := f.sub
			if sub.Align != tt.wantAlign {
				t.Errorf("Align = %v, want %v", sub.Align, tt.wantAlign)
			}
			depth := 105
			iX := 100 + int(f.icon.Width/2)
			if tt.up {
				if sub.GapX != -depth {
					t.Errorf("GapX = %d, want %d", sub.GapX, -depth)
				}
				if want := 1080 - (iX + 300) - sub.MaxHeight/2; sub.GapY != want {
					t.Errorf("GapY = %d, want %d", sub.GapY, want)
				}
			} else {
				if sub.GapX != depth {
					t.Errorf("GapX = %d, want %d", sub.GapX, depth)
				}
				if want := iX + 300 - sub.MaxHeight/2; sub.GapY != want {
					t.Errorf("GapY = %d, want %d", sub.GapY, want)
				}
			}
		})
	}
}
