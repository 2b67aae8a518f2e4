package gridview

import "fmt"

// AxisParameters configures one row or column, addressed by data index.
//
// Default, minimum and maximum dimensions can be given in any order. When
// a size slot is first created the default is clamped to [minimum, maximum]
// for resizable axes and used as-is otherwise. Negative values panic in
// debug builds and are clamped to zero otherwise, whether they came through
// the With* setters or a struct literal.
type AxisParameters struct {
	Name             string   // Header label; empty means the numeric label
	DefaultDimension *float32 // Initial size; nil means the table default
	MinimumDimension float32
	MaximumDimension float32 // +Inf allows unbounded growth
	Resizable        bool
	Monospace        bool
}

// NewAxisParameters returns parameters with the documented defaults:
// minimum 10, no maximum, resizable, proportional text.
func NewAxisParameters() AxisParameters {
	return AxisParameters{
		MinimumDimension: 10,
		MaximumDimension: inf32,
		Resizable:        true,
	}
}

// WithName sets the header label.
func (p AxisParameters) WithName(name string) AxisParameters {
	p.Name = name
	return p
}

// WithDefaultDimension sets the initial width (columns) or height (rows).
func (p AxisParameters) WithDefaultDimension(v float32) AxisParameters {
	v = sanitizeDimension("default", v)
	p.DefaultDimension = &v
	return p
}

// WithMinimumDimension sets the smallest size a resize can produce. The
// effective minimum of a resizable axis is never below what the resize
// handle needs to stay grabbable.
func (p AxisParameters) WithMinimumDimension(v float32) AxisParameters {
	p.MinimumDimension = sanitizeDimension("minimum", v)
	return p
}

// WithMaximumDimension sets the largest size a resize can produce.
func (p AxisParameters) WithMaximumDimension(v float32) AxisParameters {
	p.MaximumDimension = sanitizeDimension("maximum", v)
	return p
}

// WithResizable enables or disables interactive resizing.
func (p AxisParameters) WithResizable(v bool) AxisParameters {
	p.Resizable = v
	return p
}

// WithMonospace marks the axis as holding fixed-width content.
func (p AxisParameters) WithMonospace(v bool) AxisParameters {
	p.Monospace = v
	return p
}

// clamp limits v to the configured range. An inverted range resolves to
// the minimum.
func (p AxisParameters) clamp(v float32) float32 {
	lo := sanitizeDimension("minimum", p.MinimumDimension)
	hi := sanitizeDimension("maximum", p.MaximumDimension)
	return maxf(minf(v, hi), lo)
}

// initialSize returns the seeded size for a new slot, or ok=false when the
// table default applies.
func (p AxisParameters) initialSize() (size float32, ok bool) {
	if p.DefaultDimension == nil {
		return 0, false
	}
	size = sanitizeDimension("default", *p.DefaultDimension)
	if p.Resizable {
		return p.clamp(size), true
	}
	return size, true
}

// parametersAt returns the caller's parameters for a data index, or the
// defaults when none were supplied.
func parametersAt(params []AxisParameters, index int) (AxisParameters, bool) {
	if index >= 0 && index < len(params) {
		return params[index], true
	}
	return NewAxisParameters(), false
}

func sanitizeDimension(what string, v float32) float32 {
	if v >= 0 {
		return v
	}
	if debugBuild {
		panic(fmt.Sprintf("gridview: negative %s dimension %v", what, v))
	}
	logger.Warn("negative dimension clamped to zero", "dimension", what, "value", v)
	return 0
}
