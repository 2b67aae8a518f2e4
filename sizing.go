package gridview

// AxisSizes is the per-index size table for one axis, indexed by data index.
//
// Its length never decreases: when a data source shrinks and later grows
// again, sizes the user set for the returning indices are still there.
type AxisSizes struct {
	sizes    []float32
	fallback float32
}

// NewAxisSizes wraps previously persisted sizes.
func NewAxisSizes(sizes []float32) AxisSizes {
	return AxisSizes{sizes: sizes}
}

// EnsureCapacity appends a default for every slot in [Len(), target).
// A slot with caller parameters and a default dimension uses that default;
// every other slot uses fallback. Existing slots are never touched.
func (a *AxisSizes) EnsureCapacity(target int, fallback float32, params []AxisParameters) {
	a.fallback = fallback
	for i := len(a.sizes); i < target; i++ {
		size := fallback
		if p, ok := parametersAt(params, i); ok {
			if s, ok := p.initialSize(); ok {
				size = s
			}
		}
		a.sizes = append(a.sizes, size)
	}
}

// Len returns the number of sized slots.
func (a *AxisSizes) Len() int {
	return len(a.sizes)
}

// Get returns the size of a slot, or the fallback for an unknown index.
func (a *AxisSizes) Get(index int) float32 {
	if index >= 0 && index < len(a.sizes) {
		return a.sizes[index]
	}
	return a.fallback
}

// Set overwrites one slot. Out-of-range indices are ignored.
func (a *AxisSizes) Set(index int, v float32) {
	if index >= 0 && index < len(a.sizes) {
		a.sizes[index] = v
	}
}

// Values returns the backing slice. Callers must not modify it.
func (a *AxisSizes) Values() []float32 {
	return a.sizes
}

// Clone returns a copy safe to hand to a state store.
func (a *AxisSizes) Clone() []float32 {
	out := make([]float32, len(a.sizes))
	copy(out, a.sizes)
	return out
}

// Extent returns the pixel length of the first count positions after
// ordering and filtering, adding spacing per shown position.
func (a *AxisSizes) Extent(count int, ordering, filter []int, spacing float32) float32 {
	return a.extent(count, count, ordering, filter, spacing)
}

// Offset returns the pixel start of a visible position, measured the same
// way as Extent.
func (a *AxisSizes) Offset(count int, ordering, filter []int, spacing float32, position int) float32 {
	return a.extent(count, min(position, count), ordering, filter, spacing)
}

// extent sums the first limit positions of an axis of count entries.
// count bounds the ordering, limit bounds the walk.
func (a *AxisSizes) extent(count, limit int, ordering, filter []int, spacing float32) float32 {
	var total float32
	for pos := 0; pos < limit; pos++ {
		idx := MapIndex(count, ordering, pos)
		if containsIndex(filter, idx) {
			continue
		}
		total += a.Get(idx) + spacing
	}
	return total
}
