package gridview

import "errors"

// ErrEmptyAxis is returned when an axis has nothing to lay out.
var ErrEmptyAxis = errors.New("gridview: axis has no sizes")

// ViewportWindow locates one pixel offset on an axis.
type ViewportWindow struct {
	Position int  // Visible position containing the offset
	Index    int  // Data index at Position
	Range    Span // Pixel range of Position
	Filtered int  // Filtered positions walked before stopping
}

// WindowedRange finds the visible position whose pixel range contains
// offset. Positions are mapped through ordering; positions whose data index
// is in filter take no space. Each shown position occupies its size plus
// spacing.
//
// An offset past the content yields Position == Index == len(sizes) with an
// empty range at the end of the content.
func WindowedRange(offset float32, sizes []float32, ordering, filter []int, spacing float32) (ViewportWindow, error) {
	var w ViewportWindow
	n := len(sizes)

	for {
		w.Index = MapIndex(n, ordering, w.Position)
		if w.Index >= n {
			if w.Position == 0 {
				return ViewportWindow{}, ErrEmptyAxis
			}
			// past the last position: keep the previous iteration's range
			break
		}

		if containsIndex(filter, w.Index) {
			w.Position++
			w.Filtered++
			continue
		}

		size := sizes[w.Index] + spacing
		w.Range.Max += size
		if w.Range.Contains(offset) {
			break
		}

		w.Range.Min += size
		w.Position++
	}

	return w, nil
}
