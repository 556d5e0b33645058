package gauge

// HoverState is what the meter shows while a slab arc is hovered. Index is
// -1 for the resting state.
type HoverState struct {
	Index       int    `json:"index" yaml:"index"`
	HideScore   bool   `json:"hideScore" yaml:"hideScore"`
	Transparent []int  `json:"transparent,omitempty" yaml:"transparent,omitempty"`
	Assessment  string `json:"assessment" yaml:"assessment"`
	MinText     string `json:"minText" yaml:"minText"`
	MaxText     string `json:"maxText" yaml:"maxText"`
	Fill        string `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// Hover returns the state of the meter while the arc at index is hovered.
// Any index outside the arcs returns the resting state: the score's
// assessment and the domain limits in the default fill.
func (c *Chart) Hover(index int) HoverState {
	if index < 0 || index >= len(c.Arcs) {
		return HoverState{
			Index:      -1,
			Assessment: c.Assessment.Text,
			MinText:    FormatNumber(c.Min),
			MaxText:    FormatNumber(c.Max),
		}
	}

	s := c.Arcs[index].Slab
	h := HoverState{
		Index:       index,
		HideScore:   true,
		Transparent: make([]int, 0, len(c.Arcs)-1),
		Assessment:  s.Assessment,
		MinText:     FormatNumber(s.Min),
		MaxText:     FormatNumber(s.Max),
		Fill:        s.Color,
	}
	for i := range c.Arcs {
		if i != index {
			h.Transparent = append(h.Transparent, i)
		}
	}
	return h
}
