package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
)

// ErrEmptyPanel is returned when a panel has no size to render.
var ErrEmptyPanel = errors.New("panel has no size")

// Frame paints p at its window size and returns the image in window
// coordinates, transposed for vertical panels.
func (pt *Painter) Frame(p *dock.Panel) (*image.RGBA, error) {
	w, h := p.Container.Width, p.Container.Height
	if w <= 0 || h <= 0 {
		w, h = p.MaxWidth, p.MaxHeight
	}
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyPanel
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	if err := pt.Paint(dc, p); err != nil {
		return nil, err
	}

	img := toRGBA(dc.Image())
	if !p.Horizontal {
		img = transpose(img)
	}
	return img, nil
}

// PointAtMiddle lays p out with the pointer over its middle at full
// magnification, sizing the container to the panel's max extents.
func PointAtMiddle(p *dock.Panel) error {
	if p.MaxWidth <= 0 || p.MaxHeight <= 0 {
		return ErrEmptyPanel
	}
	p.Container.Width, p.Container.Height = p.MaxWidth, p.MaxHeight
	p.Container.MouseX = p.MaxWidth / 2
	p.Container.MouseY = 1
	if p.DirectionUp {
		p.Container.MouseY = p.MaxHeight - 1
	}
	p.Container.Inside = true
	p.MagnitudeIndex = config.MagnitudeSteps
	p.Renderer().CalculateIcons(p)
	return nil
}

// MakePreview writes p, laid out by PointAtMiddle, to path as a PNG.
func MakePreview(p *dock.Panel, pt *Painter, path string) error {
	if err := PointAtMiddle(p); err != nil {
		return err
	}

	img, err := pt.Frame(p)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

// transpose swaps the axes of img, turning a layout drawn along x into a
// vertical window.
func transpose(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(y-b.Min.Y, x-b.Min.X, img.RGBAAt(x, y))
		}
	}
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
