package dock

import "fmt"

// MousePosition is the zone the pointer is in, relative to a panel.
type MousePosition int

const (
	MouseInside MousePosition = iota
	MouseOnTheEdge
	MouseOutside
)

func (m MousePosition) String() string {
	switch m {
	case MouseInside:
		return "inside"
	case MouseOnTheEdge:
		return "on-the-edge"
	default:
		return "outside"
	}
}

// InputState selects which input shape is applied to the panel window.
type InputState int

const (
	InputAtRest InputState = iota
	InputActive
	InputHidden
)

func (s InputState) String() string {
	switch s {
	case InputActive:
		return "active"
	case InputHidden:
		return "hidden"
	default:
		return "at-rest"
	}
}

// Visibility is how a top-level panel shares the screen.
type Visibility int

const (
	VisibilityNormal Visibility = iota
	VisibilityReserve
	VisibilityAutoHide
)

// ParseVisibility maps a configuration name to a visibility.
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "", "normal":
		return VisibilityNormal, nil
	case "reserve":
		return VisibilityReserve, nil
	case "auto-hide":
		return VisibilityAutoHide, nil
	}
	return VisibilityNormal, fmt.Errorf("unknown visibility %q", s)
}

// Position is the screen edge a panel sits on.
type Position int

const (
	PositionBottom Position = iota
	PositionTop
	PositionRight
	PositionLeft
)

// ParsePosition maps a configuration name to a position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "", "bottom":
		return PositionBottom, nil
	case "top":
		return PositionTop, nil
	case "right":
		return PositionRight, nil
	case "left":
		return PositionLeft, nil
	}
	return PositionBottom, fmt.Errorf("unknown position %q", s)
}

// Horizontal reports whether icons are laid out along the x axis.
func (p Position) Horizontal() bool {
	return p == PositionBottom || p == PositionTop
}

// DirectionUp reports whether icons grow away from the bottom or right edge.
func (p Position) DirectionUp() bool {
	return p == PositionBottom || p == PositionRight
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Screen is the geometry of the monitor a panel is on.
type Screen struct {
	X, Y, Width, Height int
}

// Strut is the screen space reserved along each edge, in the
// _NET_WM_STRUT_PARTIAL layout.
type Strut struct {
	Left, Right, Top, Bottom int
	LeftStartY, LeftEndY     int
	RightStartY, RightEndY   int
	TopStartX, TopEndX       int
	BottomStartX, BottomEndX int
}

// Values returns the strut as the 12 cardinals of _NET_WM_STRUT_PARTIAL.
func (s Strut) Values() [12]int {
	return [12]int{
		s.Left, s.Right, s.Top, s.Bottom,
		s.LeftStartY, s.LeftEndY, s.RightStartY, s.RightEndY,
		s.TopStartX, s.TopEndX, s.BottomStartX, s.BottomEndX,
	}
}

// Container is the panel window as seen along the panel axis: X and Width
// run along the icons, whatever the panel orientation.
type Container struct {
	X, Y          int
	Width, Height int
	MouseX        int
	MouseY        int
	Inside        bool
}
