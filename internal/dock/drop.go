package dock

import "github.com/Gaurav-Gosain/dockwave/internal/config"

// CheckCanDropLinear decides whether a dragged item can be dropped at the
// pointer and moves the neighbours of the drop point aside.
func CheckCanDropLinear(p *Panel) {
	switch {
	case !p.Dragging:
		p.CanDrop = false
	case len(p.Icons) == 0:
		p.CanDrop = true
	default:
		p.CanDrop = p.checkCanDrop(p.DragGroup, p.AvoidingMargin)
	}
}

func (p *Panel) checkCanDrop(group int, margin float64) bool {
	amplitude := p.params.Icons.Amplitude
	mouseX := float64(p.Container.MouseX)
	canDrop := false
	for i := 0; i < len(p.Icons); i++ {
		icon := p.Icons[i]
		if !icon.Pointed {
			icon.AvoidingMouse = false
			continue
		}
		drawn := icon.Width * icon.Scale
		switch {
		case mouseX < icon.DrawX+drawn*margin:
			var prev *Icon
			if i > 0 {
				prev = p.Icons[i-1]
			}
			if icon.Group == group || (prev != nil && prev.Group == group) {
				avoidMouse(icon, 1, amplitude)
				if prev != nil {
					avoidMouse(prev, -1, amplitude)
				}
				canDrop = true
			}
		case mouseX > icon.DrawX+drawn*(1-margin):
			var next *Icon
			if i+1 < len(p.Icons) {
				next = p.Icons[i+1]
			}
			if icon.Group == group || (next != nil && next.Group == group) {
				avoidMouse(icon, -1, amplitude)
				if next != nil {
					avoidMouse(next, 1, amplitude)
				}
				canDrop = true
			}
			// The next icon is already handled.
			i++
		}
	}
	return canDrop
}

func avoidMouse(icon *Icon, direction, amplitude float64) {
	icon.AvoidingMouse = true
	icon.Alpha = config.AvoidingMouseAlpha
	if amplitude != 0 {
		icon.DrawX += icon.Width * icon.Scale / 4 * direction
	}
}

// StopMarkingIcons clears the drop marks of every icon.
func StopMarkingIcons(p *Panel) {
	for _, icon := range p.Icons {
		icon.AvoidingMouse = false
	}
}
