package dock

import "slices"

// Registry keeps the panels by name and knows which icon opens which panel.
type Registry struct {
	panels []*Panel
	byName map[string]*Panel
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Panel)}
}

// Add registers p under its name. It reports false when the name is taken.
func (r *Registry) Add(p *Panel) bool {
	if _, ok := r.byName[p.Name]; ok {
		return false
	}
	r.panels = append(r.panels, p)
	r.byName[p.Name] = p
	return true
}

// Remove unregisters and closes the panel called name. Icons opening it
// lose their sub-panel.
func (r *Registry) Remove(name string) {
	p, ok := r.byName[name]
	if !ok {
		return
	}
	for _, other := range r.panels {
		for _, icon := range other.Icons {
			if icon.SubPanel == p {
				icon.SubPanel = nil
			}
		}
	}
	delete(r.byName, name)
	r.panels = slices.DeleteFunc(r.panels, func(q *Panel) bool { return q == p })
	p.Close()
}

// Panels returns the panels in registration order.
func (r *Registry) Panels() []*Panel {
	return slices.Clone(r.panels)
}

// PanelByName implements Manager.
func (r *Registry) PanelByName(name string) *Panel {
	return r.byName[name]
}

// PointingIcon implements Manager.
func (r *Registry) PointingIcon(p *Panel) (*Icon, *Panel) {
	for _, parent := range r.panels {
		for _, icon := range parent.Icons {
			if icon.SubPanel == p {
				return icon, parent
			}
		}
	}
	return nil, nil
}

// Link makes icon open sub.
func (r *Registry) Link(icon *Icon, sub *Panel) {
	if icon.SubPanel == sub {
		return
	}
	r.Unlink(icon)
	icon.SubPanel = sub
	sub.RefCount++
	sub.TriggerUpdateSize()
}

// Unlink detaches icon from the panel it opens, if any.
func (r *Registry) Unlink(icon *Icon) {
	sub := icon.SubPanel
	if sub == nil {
		return
	}
	icon.SubPanel = nil
	sub.RefCount = max(sub.RefCount-1, 0)
	sub.TriggerUpdateSize()
}

// Close closes every panel.
func (r *Registry) Close() {
	for _, p := range r.panels {
		p.Close()
	}
	r.panels = nil
	clear(r.byName)
}
