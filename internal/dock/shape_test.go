package dock

import (
	"errors"
	"testing"
)

// shapePanel has a 400x100 max box, a 300x60 resting footprint and is fully
// active.
func shapePanel() *testPanel {
	tp := newTestPanel("main", 0, nil)
	tp.MaxWidth, tp.MaxHeight = 400, 100
	tp.MinWidth, tp.MinHeight = 300, 60
	tp.ActiveWidth, tp.ActiveHeight = 400, 100
	return tp
}

func TestInputShapeRect(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		up         bool
		w, h       int
		want       Rect
	}{
		{"bottom", true, true, 300, 60, Rect{X: 50, Y: 40, Width: 300, Height: 60}},
		{"top", true, false, 300, 60, Rect{X: 50, Y: 0, Width: 300, Height: 60}},
		{"right", false, true, 300, 60, Rect{X: 40, Y: 50, Width: 60, Height: 300}},
		{"left", false, false, 300, 60, Rect{X: 0, Y: 50, Width: 60, Height: 300}},
		{"single pixel", true, true, 1, 1, Rect{X: 199, Y: 99, Width: 1, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := shapePanel()
			tp.Horizontal, tp.DirectionUp = tt.horizontal, tt.up
			if got := tp.InputShapeRect(tt.w, tt.h); got != tt.want {
				t.Errorf("InputShapeRect(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestUpdateInputShape(t *testing.T) {
	tp := shapePanel()
	tp.UpdateInputShape()

	if tp.NormalShape() == nil || tp.HiddenShape() == nil {
		t.Fatal("normal or hidden shape missing")
	}
	if tp.ActiveShape() != nil {
		t.Error("active shape built for a fully active panel")
	}
	if got := tp.NormalShape().(*fakeShape).rect; got != (Rect{X: 50, Y: 40, Width: 300, Height: 60}) {
		t.Errorf("normal shape = %+v", got)
	}

	tp.ActiveWidth = 350
	first := tp.NormalShape().(*fakeShape)
	tp.UpdateInputShape()
	if !first.destroyed {
		t.Error("previous shape not destroyed when replaced")
	}
	if tp.ActiveShape() == nil {
		t.Error("active shape missing while the active extents differ from the max ones")
	}
}

func TestUpdateInputShapeDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*testPanel)
	}{
		{"sub-panel", func(tp *testPanel) { tp.RefCount = 1 }},
		{"no resting height", func(tp *testPanel) { tp.MinHeight = 0 }},
		{"no max width", func(tp *testPanel) { tp.MaxWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := shapePanel()
			tp.ActiveHeight = 80
			tt.setup(tp)
			tp.UpdateInputShape()

			if tp.NormalShape() != nil || tp.HiddenShape() != nil {
				t.Error("resting shapes built for a degenerate panel")
			}
			if tp.InputState != InputActive {
				t.Errorf("InputState = %v, want %v", tp.InputState, InputActive)
			}
			if len(tp.win.applied) != 1 || tp.win.applied[0] != tp.ActiveShape() {
				t.Errorf("applied = %v, want the active shape once", tp.win.applied)
			}
		})
	}
}

func TestUpdateInputShapeCreationFailure(t *testing.T) {
	tp := shapePanel()
	tp.win.shapeErr = errors.New("no shape extension")
	tp.UpdateInputShape()
	if tp.NormalShape() != nil || tp.HiddenShape() != nil || tp.ActiveShape() != nil {
		t.Error("shapes set although their creation failed")
	}
}

func TestApplyInputState(t *testing.T) {
	tests := []struct {
		name  string
		state InputState
		want  []string
	}{
		{"active also applies the resting shape", InputActive, []string{"active", "normal"}},
		{"at rest", InputAtRest, []string{"normal"}},
		{"hidden does nothing", InputHidden, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := shapePanel()
			tp.ActiveWidth = 350
			tp.UpdateInputShape()
			tp.win.applied = nil
			names := map[Shape]string{
				tp.NormalShape(): "normal",
				tp.HiddenShape(): "hidden",
				tp.ActiveShape(): "active",
			}

			tp.InputState = tt.state
			tp.applyInputState()

			var got []string
			for _, s := range tp.win.applied {
				got = append(got, names[s])
			}
			if len(got) != len(tt.want) {
				t.Fatalf("applied %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("applied[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCloseDestroysShapes(t *testing.T) {
	tp := shapePanel()
	tp.ActiveWidth = 350
	tp.UpdateInputShape()
	tp.Close()
	for i, s := range tp.win.created {
		if !s.destroyed {
			t.Errorf("shape %d not destroyed on close", i)
		}
	}
}
