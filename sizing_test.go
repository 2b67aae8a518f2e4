package gridview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gridview"
)

func TestAxisSizesEnsureCapacity(t *testing.T) {
	var sizes gridview.AxisSizes
	sizes.EnsureCapacity(3, 40, nil)
	assert.Equal(t, []float32{40, 40, 40}, sizes.Values())

	sizes.Set(1, 75)
	before := sizes.Clone()

	sizes.EnsureCapacity(5, 60, nil)
	assert.Equal(t, before, sizes.Values()[:3], "existing slots are untouched")
	assert.Equal(t, []float32{60, 60}, sizes.Values()[3:])

	sizes.EnsureCapacity(2, 99, nil)
	assert.Equal(t, 5, sizes.Len(), "a smaller target never shrinks")
}

func TestAxisSizesSeedsFromParameters(t *testing.T) {
	params := []gridview.AxisParameters{
		gridview.NewAxisParameters().WithDefaultDimension(120),
		gridview.NewAxisParameters(),
		gridview.NewAxisParameters().WithDefaultDimension(5).WithMinimumDimension(30),
		gridview.NewAxisParameters().WithDefaultDimension(500).WithMaximumDimension(200),
		gridview.NewAxisParameters().WithDefaultDimension(5).WithMinimumDimension(30).WithResizable(false),
	}

	var sizes gridview.AxisSizes
	sizes.EnsureCapacity(6, 50, params)

	assert.Equal(t, []float32{120, 50, 30, 200, 5, 50}, sizes.Values())
}

func TestAxisSizesGetSet(t *testing.T) {
	var sizes gridview.AxisSizes
	sizes.EnsureCapacity(2, 25, nil)

	sizes.Set(5, 100)
	assert.Equal(t, 2, sizes.Len(), "out of range Set is ignored")
	assert.Equal(t, float32(25), sizes.Get(7), "unknown index reads the fallback")

	clone := sizes.Clone()
	clone[0] = 1
	assert.Equal(t, float32(25), sizes.Get(0), "Clone does not alias")
}

func TestAxisSizesExtent(t *testing.T) {
	sizes := gridview.NewAxisSizes([]float32{10, 20, 30, 40})

	assert.Equal(t, float32(100), sizes.Extent(4, nil, nil, 0))
	assert.Equal(t, float32(108), sizes.Extent(4, nil, nil, 2))
	assert.Equal(t, float32(60), sizes.Extent(4, nil, []int{0, 2}, 0))
	assert.Equal(t, float32(60), sizes.Extent(3, nil, nil, 0), "only the first count positions")

	ordering := []int{3, 2, 1, 0}
	assert.Equal(t, float32(70), sizes.Offset(4, ordering, nil, 0, 2))
	assert.Equal(t, float32(40), sizes.Offset(4, ordering, []int{2}, 0, 2))
}

func TestAxisParametersDefaults(t *testing.T) {
	p := gridview.NewAxisParameters()
	assert.Equal(t, float32(10), p.MinimumDimension)
	assert.True(t, p.Resizable)
	assert.False(t, p.Monospace)
	assert.Nil(t, p.DefaultDimension)

	named := p.WithName("Price").WithMonospace(true)
	assert.Equal(t, "Price", named.Name)
	assert.True(t, named.Monospace)
	assert.Empty(t, p.Name, "setters return a copy")
}
