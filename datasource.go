package gridview

// TableDimensions is the size of the data set.
type TableDimensions struct {
	RowCount    int
	ColumnCount int
}

// IsEmpty reports whether either axis has no entries.
func (d TableDimensions) IsEmpty() bool {
	return d.RowCount <= 0 || d.ColumnCount <= 0
}

// CellIndex addresses a cell by data row and column.
type CellIndex struct {
	Row    int
	Column int
}

// DataSource provides the dimensions of the data the table shows. Cell
// content is drawn by a CellRenderer, which receives the source back.
//
// A source may also implement any of Preparer, Finalizer, RowFilterer,
// ColumnFilterer, RowOrderer and ColumnOrderer.
type DataSource interface {
	// Dimensions is called exactly once per frame; the table never
	// re-queries it mid-frame.
	Dimensions() TableDimensions
}

// Preparer is called once per frame before any other method. It is the
// place to poll background loading; it must not block.
type Preparer interface {
	Prepare()
}

// Finalizer is called once per frame after the source has been used,
// including frames where the table turned out to be empty.
type Finalizer interface {
	Finalize()
}

// RowFilterer hides rows by data index for the current frame.
type RowFilterer interface {
	RowsToFilter() []int
}

// ColumnFilterer hides columns by data index for the current frame.
type ColumnFilterer interface {
	ColumnsToFilter() []int
}

// RowOrderer reports the display order of rows: element i is the data
// index shown at visible position i. A nil result is the identity.
type RowOrderer interface {
	RowOrdering() []int
}

// ColumnOrderer reports the display order of columns, like RowOrderer.
type ColumnOrderer interface {
	ColumnOrdering() []int
}

// CellRenderer draws the content of one value cell.
type CellRenderer interface {
	RenderCell(s *CellSurface, cell CellIndex, source DataSource)
}

// CellRendererFunc adapts a function to CellRenderer.
type CellRendererFunc func(s *CellSurface, cell CellIndex, source DataSource)

// RenderCell calls f.
func (f CellRendererFunc) RenderCell(s *CellSurface, cell CellIndex, source DataSource) {
	f(s, cell, source)
}

// axisView is the per-frame ordering and filter of one axis, read once
// from the source's optional capabilities.
type axisView struct {
	count    int
	ordering []int
	filter   []int
}

func (v axisView) mapIndex(position int) int {
	return MapIndex(v.count, v.ordering, position)
}

func (v axisView) filtered(index int) bool {
	return containsIndex(v.filter, index)
}

// position returns the visible position showing a data index, or -1.
func (v axisView) position(index int) int {
	for pos := 0; pos < v.count; pos++ {
		if v.mapIndex(pos) == index {
			return pos
		}
	}
	return -1
}

func rowView(source DataSource, count int) axisView {
	v := axisView{count: count}
	if o, ok := source.(RowOrderer); ok {
		v.ordering = o.RowOrdering()
	}
	if f, ok := source.(RowFilterer); ok {
		v.filter = f.RowsToFilter()
	}
	return v
}

func columnView(source DataSource, count int) axisView {
	v := axisView{count: count}
	if o, ok := source.(ColumnOrderer); ok {
		v.ordering = o.ColumnOrdering()
	}
	if f, ok := source.(ColumnFilterer); ok {
		v.filter = f.ColumnsToFilter()
	}
	return v
}
