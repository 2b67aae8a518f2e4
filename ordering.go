package gridview

import (
	"fmt"
	"slices"
)

// ApplyReordering moves data index from so that it takes the visible
// position currently held by data index to, shifting the entries between.
//
// A nil ordering is the identity. The ordering is grown with identity
// entries until both indices are present, so the result is always a
// permutation of 0..max(len, from+1, to+1). from == to is a no-op.
//
// Use it to apply the From/To of a ColumnReorder or RowReorder action to
// the ordering a data source reports.
func ApplyReordering(ordering *[]int, from, to int) {
	if from < 0 || to < 0 {
		panic(fmt.Sprintf("gridview: negative reorder index (from=%d, to=%d)", from, to))
	}
	if from == to {
		return
	}
	if *ordering == nil {
		*ordering = []int{}
	}

	o := *ordering
	for need := max(from, to) + 1; len(o) < need; {
		o = append(o, len(o))
	}

	fromPos := slices.Index(o, from)
	toPos := slices.Index(o, to)
	if fromPos < 0 || toPos < 0 {
		panic(fmt.Sprintf("gridview: ordering %v is not a permutation (from=%d, to=%d)", o, from, to))
	}
	o = slices.Delete(o, fromPos, fromPos+1)
	o = slices.Insert(o, toPos, from)

	*ordering = o
}

// MapIndex maps a visible position to a data index. Entries missing from
// the ordering, or naming an index outside [0, count), map to the position
// itself.
func MapIndex(count int, ordering []int, position int) int {
	if position >= 0 && position < len(ordering) {
		if idx := ordering[position]; idx >= 0 && idx < count {
			return idx
		}
	}
	return position
}

// containsIndex reports whether a filter names idx.
func containsIndex(filter []int, idx int) bool {
	return slices.Contains(filter, idx)
}
