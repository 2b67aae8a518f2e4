package gridview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizedSizeStaysInRange(t *testing.T) {
	const radius = 5
	minGrab := minimumGrabbable(radius)

	params := []AxisParameters{
		NewAxisParameters(),
		NewAxisParameters().WithMinimumDimension(40).WithMaximumDimension(90),
		NewAxisParameters().WithMinimumDimension(2).WithMaximumDimension(300),
		NewAxisParameters().WithMinimumDimension(0),
	}
	deltas := []float32{
		0, 1, -1, 37.5, -37.5, 1e6, -1e6, math.MaxFloat32, -math.MaxFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
	}

	for _, p := range params {
		lo := max(p.MinimumDimension, minGrab)
		for _, delta := range deltas {
			got := resizedSize(60, delta, 8, p, minGrab)
			assert.GreaterOrEqual(t, got, lo, "min=%v max=%v delta=%v", p.MinimumDimension, p.MaximumDimension, delta)
			assert.LessOrEqual(t, got, max(p.MaximumDimension, lo), "min=%v max=%v delta=%v", p.MinimumDimension, p.MaximumDimension, delta)
		}
	}
}

func TestResizedSizeSubtractsPadding(t *testing.T) {
	got := resizedSize(58, 20, 8, NewAxisParameters(), minimumGrabbable(5))
	assert.Equal(t, float32(70), got)
}

func TestMinimumGrabbable(t *testing.T) {
	assert.Equal(t, float32(12), minimumGrabbable(5))
}

func TestHandleRect(t *testing.T) {
	cell := Rect{X: 10, Y: 20, W: 50, H: 18}

	col := handleRect(AxisColumns, cell, 4)
	assert.Equal(t, Rect{X: 56, Y: 20, W: 8, H: 18}, col)

	row := handleRect(AxisRows, cell, 4)
	assert.Equal(t, Rect{X: 10, Y: 34, W: 50, H: 8}, row)
}

func TestAxisParametersLiteralIsSanitized(t *testing.T) {
	if debugBuild {
		t.Skip("negative dimensions panic in debug builds")
	}

	p := AxisParameters{MinimumDimension: -5, MaximumDimension: 100, Resizable: true}
	assert.Equal(t, float32(0), p.clamp(-20))
	assert.Equal(t, float32(100), p.clamp(500))

	inverted := AxisParameters{MinimumDimension: 10, MaximumDimension: -1, Resizable: true}
	assert.Equal(t, float32(10), inverted.clamp(50), "negative maximum becomes zero, minimum wins")

	def := float32(-7)
	fixed := AxisParameters{DefaultDimension: &def}
	size, ok := fixed.initialSize()
	assert.True(t, ok)
	assert.Equal(t, float32(0), size)

	resizable := AxisParameters{DefaultDimension: &def, MinimumDimension: 15, MaximumDimension: inf32, Resizable: true}
	size, _ = resizable.initialSize()
	assert.Equal(t, float32(15), size)
}
