package view

import "github.com/labwc/labwc-core/geom"

// Output is a physical or virtual display. Usable is the layout-coordinate
// rectangle remaining after layer-shell exclusive zones are subtracted;
// Scale and Transform mirror the wlr_output fields of the same name.
type Output struct {
	Name      string
	Usable    geom.Box
	Scale     float64
	Transform int

	destroyed bool
}

// NewOutput creates an Output with scale 1 and no exclusive zones applied.
func NewOutput(name string, usable geom.Box) *Output {
	return &Output{Name: name, Usable: usable, Scale: 1}
}

// Usable_ reports whether the output can host views: it stops being usable once
// it is marked destroyed, even before the struct itself is freed, so
// in-flight iteration (edge search, placement) can bail out early.
func (o *Output) Usable_() bool { return o != nil && !o.destroyed }

// MarkDestroyed flags o as no longer usable. Views still referencing it
// must migrate to a surviving output before the struct is discarded.
func (o *Output) MarkDestroyed() { o.destroyed = true }
