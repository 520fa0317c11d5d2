// Package background builds the image buffers drawn behind panel icons.
package background

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

// ErrNoImage is returned when a request names no image file.
var ErrNoImage = errors.New("no background image")

// Request describes the buffer a panel needs.
type Request struct {
	Width  int
	Height int
	// Shared selects the background common to every panel: the configured
	// image, else the stripes. Sub-panels always use it.
	Shared bool
	// ImagePath is the panel's own image, read when Shared is false.
	ImagePath string
	// Bright and Dark are the panel colours of the last-resort gradient.
	Bright config.RGBA
	Dark   config.RGBA
}

// Buffer is a loaded background.
type Buffer struct {
	Width  int
	Height int
	Image  *image.RGBA
}

// Loader builds backgrounds from the shared panel settings.
type Loader struct {
	params config.DocksParams
	logger *log.Logger
}

// NewLoader returns a loader for par. A nil logger discards messages.
func NewLoader(par config.DocksParams, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{params: par, logger: logger}
}

// Load builds the buffer for req. Image failures are logged and fall back to
// generated gradients, so an error is only returned for unusable sizes.
func (l *Loader) Load(req Request) (*Buffer, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("invalid background size %dx%d", req.Width, req.Height)
	}

	var img *image.RGBA
	if req.Shared {
		img = l.loadShared(req.Width, req.Height)
	} else if req.ImagePath != "" {
		var err error
		img, err = LoadImage(req.ImagePath, req.Width, req.Height, false, 1)
		if err != nil {
			l.logger.Warn("failed to load panel background", "path", req.ImagePath, "err", err)
		}
	}
	if img == nil {
		var err error
		img, err = Stripes(req.Width, req.Height, req.Bright, req.Dark, 0, 0, 90)
		if err != nil {
			return nil, err
		}
	}
	return &Buffer{Width: req.Width, Height: req.Height, Image: img}, nil
}

func (l *Loader) loadShared(w, h int) *image.RGBA {
	par := l.params
	if par.BackgroundImage != "" {
		img, err := LoadImage(par.BackgroundImage, w, h, par.BackgroundRepeat, par.BackgroundAlpha)
		if err == nil {
			return img
		}
		l.logger.Warn("failed to load background image", "path", par.BackgroundImage, "err", err)
	}
	img, err := Stripes(w, h, par.StripesBright, par.StripesDark, par.Stripes, par.StripesWidth, par.StripesAngle)
	if err != nil {
		l.logger.Error("failed to draw stripes", "err", err)
		return nil
	}
	return img
}

// Stripes paints a repeating linear gradient of n dark stripes over a bright
// ground, each stripe width wide in gradient units, tilted by angle degrees.
// With n == 0 it is a plain dark to bright gradient.
func Stripes(w, h int, bright, dark config.RGBA, n int, width, angle float64) (*image.RGBA, error) {
	var grad *gg.LinearGradientBrush
	if math.Abs(angle) != 90 {
		grad = gg.NewLinearGradientBrush(0, 0, float64(w), float64(w)*math.Tan(angle*math.Pi/180))
	} else {
		y := float64(h)
		if angle != 90 {
			y = -y
		}
		grad = gg.NewLinearGradientBrush(0, 0, 0, y)
	}
	grad.SetExtend(gg.ExtendRepeat)

	b, d := toGG(bright), toGG(dark)
	if n > 0 {
		for i := 0; i <= n; i++ {
			step := float64(i) / float64(n)
			grad.AddColorStop(step-width/2, b).
				AddColorStop(step, d).
				AddColorStop(step+width/2, b)
		}
	} else {
		grad.AddColorStop(0, d).AddColorStop(1, b)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill stripes: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

// LoadImage reads path and fits it to w x h: tiled at its natural size when
// repeat is set, else scaled to fill. alpha scales the opacity.
func LoadImage(path string, w, h int, repeat bool, alpha float64) (*image.RGBA, error) {
	if path == "" {
		return nil, ErrNoImage
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	fitted := image.NewRGBA(image.Rect(0, 0, w, h))
	if repeat {
		sb := src.Bounds()
		for y := 0; y < h; y += sb.Dy() {
			for x := 0; x < w; x += sb.Dx() {
				r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
				draw.Draw(fitted, r, src, sb.Min, draw.Src)
			}
		}
	} else {
		draw.CatmullRom.Scale(fitted, fitted.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	if alpha >= 1 {
		return fitted, nil
	}
	out := image.NewRGBA(fitted.Bounds())
	mask := image.NewUniform(color.Alpha{A: uint8(max(alpha, 0) * 255)})
	draw.DrawMask(out, out.Bounds(), fitted, image.Point{}, mask, image.Point{}, draw.Over)
	return out, nil
}

func toGG(c config.RGBA) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, c.A)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
