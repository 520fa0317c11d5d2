package x11

import (
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/Gaurav-Gosain/dockwave/internal/dock"
)

// putImageHeader is the size in bytes of a PutImage request without its data.
const putImageHeader = 24

// cardinals encodes values as 32-bit CARDINALs for ChangeProperty.
func cardinals(values ...int) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		xgb.Put32(buf[4*i:], uint32(max(v, 0)))
	}
	return buf
}

// strutData returns the _NET_WM_STRUT and _NET_WM_STRUT_PARTIAL payloads.
func strutData(s dock.Strut) (strut, partial []byte) {
	v := s.Values()
	return cardinals(v[:4]...), cardinals(v[:]...)
}

// toBGRA converts img to the byte order of a 32 bits per pixel ZPixmap on
// a little-endian server. Pixels stay premultiplied.
func toBGRA(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 4*b.Dx()*b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			px := row[4*x : 4*x+4]
			out[i], out[i+1], out[i+2], out[i+3] = px[2], px[1], px[0], px[3]
			i += 4
		}
	}
	return out
}

// rowsPerRequest is how many rows of a width pixels wide image fit in one
// PutImage request of at most maxLength 4-byte units.
func rowsPerRequest(width int, maxLength uint32) int {
	if width <= 0 {
		return 0
	}
	return max((int(maxLength)*4-putImageHeader)/(4*width), 1)
}

// iconGeometry returns the on-screen rectangle of icon, a member of p, in
// root window coordinates.
func iconGeometry(p *dock.Panel, icon *dock.Icon) dock.Rect {
	x := p.Container.X + int(icon.DrawX)
	y := p.Container.Y + int(icon.DrawY)
	w := int(icon.Width * icon.Scale)
	h := int(icon.Height * icon.Scale)
	if !p.Horizontal {
		x, y = y, x
		w, h = h, w
	}
	return dock.Rect{X: x, Y: y, Width: w, Height: h}
}

func rectangle(r dock.Rect) xproto.Rectangle {
	return xproto.Rectangle{
		X:      int16(r.X),
		Y:      int16(r.Y),
		Width:  uint16(max(r.Width, 0)),
		Height: uint16(max(r.Height, 0)),
	}
}
