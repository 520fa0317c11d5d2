package headless

import (
	"errors"
	"testing"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
)

func TestWindowRecordsRequests(t *testing.T) {
	w := New(dock.Screen{Width: 1920, Height: 1080})
	if w.Visible() {
		t.Error("new window is visible")
	}
	w.Present()

	var acked []dock.Rect
	w.Configure = func(x, y, width, height int) {
		acked = append(acked, dock.Rect{X: x, Y: y, Width: width, Height: height})
	}
	if err := w.MoveResize(10, 20, 300, 100); err != nil {
		t.Fatalf("MoveResize() error = %v", err)
	}
	want := dock.Rect{X: 10, Y: 20, Width: 300, Height: 100}
	if w.Geometry != want || len(acked) != 1 || acked[0] != want {
		t.Errorf("Geometry = %+v, acked = %v, want %+v", w.Geometry, acked, want)
	}

	if got := w.InputRect(); got != (dock.Rect{Width: 300, Height: 100}) {
		t.Errorf("InputRect() without shape = %+v, want the whole window", got)
	}
	s, err := w.CreateInputShape(dock.Rect{X: 50, Y: 40, Width: 200, Height: 60})
	if err != nil {
		t.Fatalf("CreateInputShape() error = %v", err)
	}
	if err := w.SetInputShape(s); err != nil {
		t.Fatalf("SetInputShape() error = %v", err)
	}
	if got := w.InputRect(); got.Width != 200 {
		t.Errorf("InputRect() = %+v, want the shape", got)
	}

	s.Destroy()
	if len(w.LiveShapes()) != 0 {
		t.Errorf("LiveShapes() = %v, want none", w.LiveShapes())
	}
}

func TestWindowClosed(t *testing.T) {
	w := New(dock.Screen{Width: 800, Height: 600})
	w.Present()
	_ = w.Close()

	if w.Visible() {
		t.Error("closed window is visible")
	}
	if err := w.MoveResize(0, 0, 1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("MoveResize() error = %v, want %v", err, ErrClosed)
	}
	if _, err := w.CreateInputShape(dock.Rect{}); !errors.Is(err, ErrClosed) {
		t.Errorf("CreateInputShape() error = %v, want %v", err, ErrClosed)
	}
	w.QueueDraw()
	if w.Draws != 0 {
		t.Errorf("Draws = %d after Close, want 0", w.Draws)
	}
}
