package dock

import "github.com/Gaurav-Gosain/dockwave/internal/config"

// ShowSubPanel shows the sub-panel opened by pointed, an icon of p, next to it.
func (p *Panel) ShowSubPanel(pointed *Icon) {
	sub := pointed.SubPanel
	if sub == nil || sub.closed || sub.window == nil {
		return
	}

	if sub.window.Visible() {
		if sub.Shrinking {
			sub.animator.StartGrowing(sub)
		}
		return
	}

	if placer, ok := sub.renderer.(SubPanelPlacer); ok {
		placer.SetSubPanelPosition(pointed, p)
	}

	w, h := sub.MaxWidth, sub.MaxHeight
	x, y := sub.WindowPositionAtBalance(w, h)
	sub.window.Present()
	var err error
	if sub.Horizontal {
		err = sub.window.MoveResize(x, y, w, h)
	} else {
		err = sub.window.MoveResize(y, x, h, w)
		if p.params.Icons.TextAlwaysHorizontal {
			// The sub-panel covers the parent's label.
			p.QueueDraw()
		}
	}
	if err != nil {
		sub.logger.Warn("failed to place the sub-panel", "err", err)
	}

	if sub.params.Docks.AnimateSubPanels && len(sub.Icons) > 0 {
		sub.Folding = config.UnfoldStart
		sub.animator.StartGrowing(sub)
		sub.renderer.CalculateIcons(sub)
	} else {
		sub.Folding = 0
	}
	p.events.UnfoldSubPanel(pointed, p)
}
