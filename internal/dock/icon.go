// Package dock computes the layout of dock panels: the magnification wave,
// the panel size, pointer zones, window placement and input shapes, and
// schedules the deferred work that keeps them up to date.
package dock

import (
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/dockwave/internal/loop"
)

// IconKind is the role of an icon on a panel.
type IconKind int

const (
	KindLauncher IconKind = iota
	KindApplication
	KindApplet
	KindSeparator
	KindContainer
)

var kindNames = [...]string{"launcher", "application", "applet", "separator", "container"}

func (k IconKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseIconKind maps a configuration name to a kind. Unknown names are launchers.
func ParseIconKind(s string) IconKind {
	for i, name := range kindNames {
		if name == s {
			return IconKind(i)
		}
	}
	return KindLauncher
}

// Icon is one element of a panel. The layout fields are written by the
// wave engine and read by renderers.
type Icon struct {
	ID    string
	Name  string
	Kind  IconKind
	Class string
	// Group is the ordering group, icons of the same group are kept together.
	Group int

	// Size at ratio 1. Width and Height always equal nominal size times the panel ratio.
	NominalWidth  float64
	NominalHeight float64
	Width         float64
	Height        float64

	Scale   float64
	XAtRest float64
	X       float64
	Y       float64
	// Envelope of X across a full magnification sweep.
	XMin  float64
	XMax  float64
	Phase float64

	DrawX         float64
	DrawY         float64
	Alpha         float64
	Pointed       bool
	AvoidingMouse bool

	// InsertRemoveFactor is >0 while the icon is being removed and <0 while it
	// is being inserted, 0 otherwise.
	InsertRemoveFactor float64

	// SubPanel is the panel this icon opens. It is not owned by the icon.
	SubPanel         *Panel
	ParentName       string
	SubPanelViewType int

	// AppWindow is the windowing id of the application this icon stands for, 0 if none.
	AppWindow uint32

	redrawContent loop.Deferred
}

// NewIcon creates an icon at rest with the given nominal size.
func NewIcon(name string, kind IconKind, width, height float64) *Icon {
	return &Icon{
		ID:            uuid.NewString(),
		Name:          name,
		Kind:          kind,
		NominalWidth:  width,
		NominalHeight: height,
		Width:         width,
		Height:        height,
		Scale:         1,
		Alpha:         1,
	}
}

// IsSeparator reports whether the icon only separates groups.
func (ic *Icon) IsSeparator() bool {
	return ic.Kind == KindSeparator
}

// IsApplication reports whether the icon stands for a running application.
func (ic *Icon) IsApplication() bool {
	return ic.Kind == KindApplication || ic.AppWindow != 0
}

func (ic *Icon) rescale(ratio float64) {
	ic.Width = ic.NominalWidth * ratio
	ic.Height = ic.NominalHeight * ratio
}

func (ic *Icon) cancelTasks() {
	ic.redrawContent.Cancel()
}
