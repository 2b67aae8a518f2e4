package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellKindAt(t *testing.T) {
	assert.Equal(t, CellCorner, cellKindAt(0, 0))
	assert.Equal(t, CellColumnHeader, cellKindAt(0, 3))
	assert.Equal(t, CellRowHeader, cellKindAt(5, 0))
	assert.Equal(t, CellValue, cellKindAt(1, 1))
}

func TestHeaderLabel(t *testing.T) {
	table := NewTable("labels", WithColumnParameters(
		NewAxisParameters().WithName("Name"),
		NewAxisParameters(),
	))

	assert.Equal(t, "Name", table.headerLabel(AxisColumns, 0))
	assert.Equal(t, "2", table.headerLabel(AxisColumns, 1), "unnamed headers are numbered from 1")
	assert.Equal(t, "8", table.headerLabel(AxisRows, 7))

	zero := NewTable("labels", WithFlags(TableFlagsZeroBasedHeaders))
	assert.Equal(t, "7", zero.headerLabel(AxisRows, 7))
}

func TestCornerLabel(t *testing.T) {
	label := cornerLabel(TableDimensions{RowCount: 10, ColumnCount: 5}, CellIndex{Row: 2, Column: 3})
	assert.Equal(t, "5*10 (3,2)", label)
}

func TestRowBackgroundStripes(t *testing.T) {
	style := DefaultStyle()
	striped := NewTable("stripes")
	plain := NewTable("plain", WithFlags(TableFlagsNone))

	assert.Equal(t, style.BackgroundColor, striped.rowBackground(style, 2, style.BackgroundColor))
	assert.Equal(t, style.RowBgAltColor, striped.rowBackground(style, 3, style.BackgroundColor))
	assert.Equal(t, style.BackgroundColor, plain.rowBackground(style, 3, style.BackgroundColor))
}

func TestGridFrameClampsVisibleCounts(t *testing.T) {
	dims := TableDimensions{RowCount: 3, ColumnCount: 4}
	var first, last [2]ViewportWindow
	last[AxisRows] = ViewportWindow{Position: 3}
	last[AxisColumns] = ViewportWindow{Position: 9}

	f := newGridFrame(dims, axisView{count: 3}, axisView{count: 4}, first, last,
		Vec2{50, 20}, Vec2{}, 0, Rect{W: 400, H: 200}, Vec2{}, Rect{W: 800, H: 600})

	assert.Equal(t, 3, f.visibleRows)
	assert.Equal(t, 4, f.visibleColumns)
	assert.Equal(t, Vec2{50, 20}, f.headerEnd)
	assert.Equal(t, Rect{X: 50, Y: 20, W: 350, H: 180}, f.cellsClip)
}
