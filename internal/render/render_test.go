package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/headless"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

func newPanel(t *testing.T, pos dock.Position, n int) (*dock.Panel, *headless.Window) {
	t.Helper()
	l := loop.New()
	win := headless.New(dock.Screen{Width: 1920, Height: 1080})
	p := dock.New(dock.Options{
		Name:     "main",
		Position: pos,
		Align:    0.5,
		Params:   config.DefaultParams(),
		Loop:     l,
		Window:   win,
	})
	for range n {
		p.InsertIcon(dock.NewIcon("icon", dock.KindLauncher, 48, 48), -1)
	}
	l.Drain(10)
	return p, win
}

func TestTranspose(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{R: 255, A: 255}
	img.SetRGBA(2, 1, red)

	out := transpose(img)
	if b := out.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 2x3", b)
	}
	if got := out.RGBAAt(1, 2); got != red {
		t.Errorf("pixel (1, 2) = %v, want %v", got, red)
	}
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		name string
		pos  dock.Position
	}{
		{"horizontal", dock.PositionBottom},
		{"vertical", dock.PositionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPanel(t, tt.pos, 3)
			img, err := NewPainter(nil).Frame(p)
			if err != nil {
				t.Fatalf("Frame() error = %v", err)
			}
			w, h := p.MaxWidth, p.MaxHeight
			if !p.Horizontal {
				w, h = h, w
			}
			if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
				t.Errorf("bounds = %v, want %dx%d", b, w, h)
			}
		})
	}
}

func TestFrameEmptyPanel(t *testing.T) {
	p := dock.New(dock.Options{Name: "empty", Params: config.DefaultParams(), Loop: loop.New()})
	if _, err := NewPainter(nil).Frame(p); err != ErrEmptyPanel {
		t.Errorf("Frame() error = %v, want %v", err, ErrEmptyPanel)
	}
}

func TestMakePreview(t *testing.T) {
	p, _ := newPanel(t, dock.PositionBottom, 5)
	path := filepath.Join(t.TempDir(), "preview.png")

	if err := MakePreview(p, NewPainter(nil), path); err != nil {
		t.Fatalf("MakePreview() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("preview not written: %v", err)
	}

	middle := p.Icons[2]
	if !middle.Pointed {
		t.Error("middle icon not pointed")
	}
	for i, icon := range p.Icons {
		if i != 2 && icon.Scale >= middle.Scale {
			t.Errorf("icons[%d].Scale = %v, want below the pointed %v", i, icon.Scale, middle.Scale)
		}
	}
}

func TestDrawSubPanelContent(t *testing.T) {
	parent, _ := newPanel(t, dock.PositionBottom, 1)
	sub, _ := newPanel(t, dock.PositionBottom, 2)
	icon := parent.Icons[0]
	icon.SubPanel = sub

	pt := NewPainter(nil)
	pt.DrawSubPanelContent(icon, parent)
	if _, ok := pt.images[icon.ID]; !ok {
		t.Fatal("no miniature drawn")
	}

	pt.ReloadIconImage(icon, parent)
	if _, ok := pt.images[icon.ID]; !ok {
		t.Error("miniature dropped while the sub-panel is still linked")
	}
	icon.SubPanel = nil
	pt.ReloadIconImage(icon, parent)
	if _, ok := pt.images[icon.ID]; ok {
		t.Error("miniature kept after the sub-panel was unlinked")
	}
}
