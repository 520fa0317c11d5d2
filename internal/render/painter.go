// Package render paints panels with a software rasterizer and writes
// previews of their layout.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/theme"
)

// iconRadius is the corner radius of an icon placeholder relative to its size.
const iconRadius = 0.2

// Painter draws a panel frame, its background and its icons.
type Painter struct {
	logger *log.Logger
	// images holds the icon images, keyed by icon id. Icons without one are
	// drawn as placeholders coloured by kind.
	images map[string]*gg.ImageBuf
}

// NewPainter returns a painter. A nil logger discards messages.
func NewPainter(logger *log.Logger) *Painter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Painter{logger: logger, images: make(map[string]*gg.ImageBuf)}
}

// SetIconImage attaches an image to an icon. A nil image removes it.
func (pt *Painter) SetIconImage(icon *dock.Icon, img image.Image) {
	if img == nil {
		delete(pt.images, icon.ID)
		return
	}
	pt.images[icon.ID] = gg.ImageBufFromImage(img)
}

// Paint draws p in layout coordinates: x along the icons, y across them.
// The context must be at least MaxWidth x MaxHeight.
func (pt *Painter) Paint(dc *gg.Context, p *dock.Panel) error {
	dc.Clear()
	if err := pt.paintFrame(dc, p); err != nil {
		return err
	}
	n := len(p.Icons)
	first := dock.FirstDrawnIndex(p.Icons)
	for i := range n {
		icon := p.Icons[(first+i)%n]
		if err := pt.paintIcon(dc, p, icon); err != nil {
			return fmt.Errorf("failed to paint icon %q: %w", icon.Name, err)
		}
	}
	return nil
}

// decorationsOrigin is where the frame starts in the window.
func decorationsOrigin(p *dock.Panel) (x, y float64) {
	x = float64(p.Container.Width-p.DecorationsWidth) * p.Align
	if p.Container.Width == 0 {
		x = float64(p.MaxWidth-p.DecorationsWidth) * p.Align
	}
	height := p.Container.Height
	if height == 0 {
		height = p.MaxHeight
	}
	if p.DirectionUp {
		y = float64(height - p.DecorationsHeight)
	}
	return x, y
}

func (pt *Painter) paintFrame(dc *gg.Context, p *dock.Panel) error {
	if p.DecorationsWidth <= 0 || p.DecorationsHeight <= 0 {
		return nil
	}
	par := p.Params()
	x, y := decorationsOrigin(p)
	w, h := float64(p.DecorationsWidth), float64(p.DecorationsHeight)
	radius := min(float64(par.Docks.Radius), h/2)

	if p.Background != nil && p.Background.Image != nil {
		dc.DrawImage(gg.ImageBufFromImage(p.Background.Image), x, y)
	} else {
		dc.SetColor(toColor(par.Docks.StripesBright))
		dc.DrawRoundedRectangle(x, y, w, h, radius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("failed to fill frame: %w", err)
		}
	}

	if par.Docks.LineWidth > 0 {
		lw := float64(par.Docks.LineWidth)
		dc.SetColor(theme.FrameLine())
		dc.SetLineWidth(lw)
		dc.DrawRoundedRectangle(x+lw/2, y+lw/2, w-lw, h-lw, radius)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("failed to stroke frame: %w", err)
		}
	}
	return nil
}

func (pt *Painter) paintIcon(dc *gg.Context, p *dock.Panel, icon *dock.Icon) error {
	w, h := icon.Width*icon.Scale, icon.Height*icon.Scale
	if w <= 0 || h <= 0 {
		return nil
	}
	x, y := icon.DrawX, icon.DrawY

	if img, ok := pt.images[icon.ID]; ok {
		dc.DrawImageEx(img, gg.DrawImageOptions{
			X:         x,
			Y:         y,
			DstWidth:  w,
			DstHeight: h,
			Opacity:   icon.Alpha,
		})
	} else {
		r, g, b, _ := theme.IconFill(icon.Kind.String()).RGBA()
		dc.SetRGBA(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, icon.Alpha)
		dc.DrawRoundedRectangle(x, y, w, h, math.Min(w, h)*iconRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if icon.Pointed && p.MagnitudeIndex > 0 {
		dc.SetColor(theme.PointedOutline())
		dc.SetLineWidth(2)
		dc.DrawRoundedRectangle(x, y, w, h, math.Min(w, h)*iconRadius)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// DrawSubPanelContent implements dock.IconPainter: the icon opening a
// sub-panel shows a miniature of the sub-panel icons.
func (pt *Painter) DrawSubPanelContent(icon *dock.Icon, parent *dock.Panel) {
	sub := icon.SubPanel
	if sub == nil || len(sub.Icons) == 0 {
		return
	}
	size := int(max(icon.NominalWidth, icon.NominalHeight))
	if size <= 0 {
		return
	}
	dc := gg.NewContext(size, size)
	defer dc.Close()

	// Up to four icons in a 2x2 grid.
	cell := float64(size) / 2
	for i, child := range sub.Icons[:min(len(sub.Icons), 4)] {
		x, y := float64(i%2)*cell, float64(i/2)*cell
		dc.SetColor(theme.IconFill(child.Kind.String()))
		dc.DrawRoundedRectangle(x+2, y+2, cell-4, cell-4, cell*iconRadius)
		if err := dc.Fill(); err != nil {
			pt.logger.Warn("failed to draw sub-panel content", "icon", icon.Name, "err", err)
			return
		}
	}
	pt.images[icon.ID] = gg.ImageBufFromImage(dc.Image())
}

// ReloadIconImage implements dock.IconPainter. Placeholders are redrawn from
// the icon geometry, so only the miniature of a lost sub-panel is dropped.
func (pt *Painter) ReloadIconImage(icon *dock.Icon, p *dock.Panel) {
	if icon.SubPanel == nil {
		delete(pt.images, icon.ID)
	}
}

// RedrawIcon implements dock.IconPainter.
func (pt *Painter) RedrawIcon(icon *dock.Icon, p *dock.Panel) {
	p.QueueDraw()
}

func toColor(c config.RGBA) color.Color {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
