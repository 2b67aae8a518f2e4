package gridview_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridview"
)

func TestApplyReordering(t *testing.T) {
	tests := []struct {
		from, to int
		ordering []int
		want     []int
	}{
		{from: 0, to: 1, ordering: []int{1, 0}, want: []int{0, 1}},
		{from: 4, to: 0, ordering: []int{0, 1, 2, 3, 4, 5, 6}, want: []int{4, 0, 1, 2, 3, 5, 6}},
		{from: 10, to: 0, ordering: []int{}, want: []int{10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{from: 4, to: 3, ordering: []int{4, 0, 1, 2, 3, 5, 6}, want: []int{0, 1, 2, 3, 4, 5, 6}},
		{from: 0, to: 1, ordering: []int{}, want: []int{1, 0}},
		{from: 1, to: 0, ordering: []int{1, 0}, want: []int{0, 1}},
		{from: 1, to: 0, ordering: []int{1, 0, 2, 3, 4}, want: []int{0, 1, 2, 3, 4}},
		{from: 4, to: 0, ordering: []int{}, want: []int{4, 0, 1, 2, 3}},
		{from: 10, to: 9, ordering: []int{10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, want: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{from: 0, to: 0, ordering: []int{}, want: []int{}},
		{from: 4, to: 4, ordering: []int{0, 1}, want: []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d->%d %v", tt.from, tt.to, tt.ordering), func(t *testing.T) {
			ordering := slices.Clone(tt.ordering)
			gridview.ApplyReordering(&ordering, tt.from, tt.to)
			assert.Equal(t, tt.want, ordering)
		})
	}
}

func TestApplyReorderingNilOrdering(t *testing.T) {
	var ordering []int
	gridview.ApplyReordering(&ordering, 2, 0)
	assert.Equal(t, []int{2, 0, 1}, ordering)

	var untouched []int
	gridview.ApplyReordering(&untouched, 3, 3)
	assert.Nil(t, untouched, "from == to must not allocate an ordering")
}

func TestApplyReorderingIsPermutation(t *testing.T) {
	initial := []int{3, 1, 0, 2}
	for from := 0; from < 8; from++ {
		for to := 0; to < 8; to++ {
			ordering := slices.Clone(initial)
			gridview.ApplyReordering(&ordering, from, to)

			n := max(len(initial), from+1, to+1)
			if from == to {
				n = len(initial)
			}
			sorted := slices.Clone(ordering)
			slices.Sort(sorted)
			want := make([]int, n)
			for i := range want {
				want[i] = i
			}
			require.Equal(t, want, sorted, "from=%d to=%d gave %v", from, to, ordering)
		}
	}
}

func TestApplyReorderingMovesValue(t *testing.T) {
	ordering := []int{0, 1, 2, 3, 4}
	gridview.ApplyReordering(&ordering, 0, 3)
	assert.Equal(t, 3, slices.Index(ordering, 0), "moved index takes the target's old position")
}

func TestApplyReorderingNegativePanics(t *testing.T) {
	var ordering []int
	assert.Panics(t, func() { gridview.ApplyReordering(&ordering, -1, 0) })
	assert.Panics(t, func() { gridview.ApplyReordering(&ordering, 0, -1) })
}

func TestMapIndex(t *testing.T) {
	ordering := []int{2, 0, 1, 9}

	assert.Equal(t, 2, gridview.MapIndex(3, ordering, 0))
	assert.Equal(t, 1, gridview.MapIndex(3, ordering, 2))
	assert.Equal(t, 3, gridview.MapIndex(4, ordering, 3), "entry past count falls back to the position")
	assert.Equal(t, 5, gridview.MapIndex(6, ordering, 5), "position past the ordering maps to itself")
	assert.Equal(t, 1, gridview.MapIndex(3, nil, 1))
}
