package gridview_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridview"
)

var tableDisplaySize = gridview.Vec2{X: 800, Y: 600}

// gridSource is a data source with counters for every callback.
type gridSource struct {
	rows, columns int

	rowFilter      []int
	columnOrdering []int

	dimensionCalls int
	prepareCalls   int
	finalizeCalls  int
}

func (s *gridSource) Dimensions() gridview.TableDimensions {
	s.dimensionCalls++
	return gridview.TableDimensions{RowCount: s.rows, ColumnCount: s.columns}
}

func (s *gridSource) Prepare()              { s.prepareCalls++ }
func (s *gridSource) Finalize()             { s.finalizeCalls++ }
func (s *gridSource) RowsToFilter() []int   { return s.rowFilter }
func (s *gridSource) ColumnOrdering() []int { return s.columnOrdering }

// recordingRenderer remembers which cells were handed out.
type recordingRenderer struct {
	cells []gridview.CellIndex
}

func (r *recordingRenderer) RenderCell(s *gridview.CellSurface, cell gridview.CellIndex, _ gridview.DataSource) {
	r.cells = append(r.cells, cell)
	s.Text("x")
}

// Helper to create a GUI whose cells have no padding and no grid lines, so
// cell geometry is a plain multiple of the cell size.
func setupTableTest() (*gridview.GUI, *gridview.InputState) {
	style := gridview.DefaultStyle()
	style.ItemSpacing = gridview.Vec2{}
	style.GridLineWidth = 0
	ui := gridview.New(&mockRenderer{}, gridview.WithStyle(style))
	return ui, gridview.NewInputState()
}

// newTestTable creates a 400x200 table of 50x20 cells. The header row and
// column use the same size, so value cell (0,0) starts at (50,20).
func newTestTable(opts ...gridview.Option) *gridview.Table {
	base := []gridview.Option{
		gridview.WithDefaultCellSize(gridview.Vec2{X: 50, Y: 20}),
		gridview.WithSize(gridview.Vec2{X: 400, Y: 200}),
	}
	return gridview.NewTable("test", append(base, opts...)...)
}

// showFrame runs one frame and clears the per-frame input edges after it.
func showFrame(ui *gridview.GUI, input *gridview.InputState, table *gridview.Table, source gridview.DataSource, renderer gridview.CellRenderer) (gridview.Response, []gridview.Action) {
	ctx := ui.Begin(input, tableDisplaySize, 0.016)
	resp, actions := table.Show(ctx, source, renderer)
	_ = ui.End()
	input.Reset()
	return resp, actions
}

func TestTableCellOrigin(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 10, columns: 5}
	table := newTestTable(
		gridview.WithSize(gridview.Vec2{X: 172, Y: 112}),
		gridview.WithMinSize(gridview.Vec2{}),
	)

	table.SetScrollOffset(gridview.Vec2{X: 120, Y: 45})
	resp, actions := showFrame(ui, input, table, source, &recordingRenderer{})

	assert.Empty(t, actions)
	assert.Equal(t, gridview.CellIndex{Row: 2, Column: 2}, resp.CellOrigin)
	assert.Equal(t, resp.CellOrigin, table.CellOrigin())
	assert.Equal(t, gridview.Vec2{X: 120, Y: 45}, table.ScrollOffset())
	assert.Equal(t, gridview.Vec2{X: 300, Y: 220}, resp.ContentSize)
}

func TestTableScrollOffsetIsClamped(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 10, columns: 5}
	table := newTestTable(
		gridview.WithSize(gridview.Vec2{X: 172, Y: 112}),
		gridview.WithMinSize(gridview.Vec2{}),
	)

	table.SetScrollOffset(gridview.Vec2{X: 5000, Y: -20})
	showFrame(ui, input, table, source, &recordingRenderer{})

	// content 300x220, view 160x100
	assert.Equal(t, gridview.Vec2{X: 140, Y: 0}, table.ScrollOffset())
}

func TestTableRendersOnlyVisibleCells(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 1_000_000, columns: 1000}
	renderer := &recordingRenderer{}
	table := newTestTable()

	resp, _ := showFrame(ui, input, table, source, renderer)

	require.NotEmpty(t, renderer.cells)
	// 338x168 of body: 7 columns by 9 rows, give or take a partial cell
	assert.LessOrEqual(t, len(renderer.cells), 8*10)
	for _, c := range renderer.cells {
		assert.Less(t, c.Row, 10)
		assert.Less(t, c.Column, 8)
	}
	assert.Contains(t, renderer.cells, gridview.CellIndex{Row: 0, Column: 0})
	assert.Equal(t, gridview.Rect{X: 0, Y: 0, W: 400, H: 200}, resp.Rect)
}

func TestTableDimensionsQueriedOncePerFrame(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 50, columns: 20}
	table := newTestTable()

	for i := 1; i <= 3; i++ {
		showFrame(ui, input, table, source, &recordingRenderer{})
		assert.Equal(t, i, source.dimensionCalls)
		assert.Equal(t, i, source.prepareCalls)
		assert.Equal(t, i, source.finalizeCalls)
	}
}

func TestTableEmptyStillPreparesAndFinalizes(t *testing.T) {
	ui, input := setupTableTest()
	renderer := &recordingRenderer{}
	table := newTestTable()

	for _, source := range []*gridSource{{rows: 0, columns: 4}, {rows: 4, columns: 0}} {
		resp, actions := showFrame(ui, input, table, source, renderer)

		assert.Equal(t, gridview.Response{}, resp)
		assert.Nil(t, actions)
		assert.Equal(t, 1, source.prepareCalls)
		assert.Equal(t, 1, source.finalizeCalls)
	}
	assert.Empty(t, renderer.cells)
}

func TestTableCellClickedOnRelease(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable()
	renderer := &recordingRenderer{}

	// Press inside value cell (0,0)
	input.SetMousePos(75, 30)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	resp, actions := showFrame(ui, input, table, source, renderer)
	assert.Empty(t, actions, "press alone does not click")
	assert.True(t, resp.CellHovered)
	assert.Equal(t, gridview.CellIndex{Row: 0, Column: 0}, resp.HoveredCell)

	// Release
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	_, actions = showFrame(ui, input, table, source, renderer)
	assert.Equal(t, []gridview.Action{gridview.CellClicked(0, 0)}, actions)
}

func TestTableCellClickedReportsDataIndices(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20, columnOrdering: []int{1, 0}, rowFilter: []int{0}}
	table := newTestTable()

	// Second visible column shows data column 0. The first visible row is
	// data row 1 since row 0 is filtered.
	input.SetMousePos(125, 30)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, &recordingRenderer{})
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	resp, actions := showFrame(ui, input, table, source, &recordingRenderer{})

	assert.Equal(t, []gridview.Action{gridview.CellClicked(1, 0)}, actions)
	assert.Equal(t, gridview.CellIndex{Row: 1, Column: 0}, resp.HoveredCell)
}

func TestTableFilteredRowsAreNotRendered(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 3, rowFilter: []int{0, 1, 4}}
	renderer := &recordingRenderer{}
	table := newTestTable()

	showFrame(ui, input, table, source, renderer)

	require.NotEmpty(t, renderer.cells)
	for _, c := range renderer.cells {
		assert.NotContains(t, source.rowFilter, c.Row)
	}
	assert.Equal(t, gridview.CellIndex{Row: 2, Column: 0}, renderer.cells[0])
}

func TestTableHeaderDropEmitsColumnReorder(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable()
	renderer := &recordingRenderer{}

	// Press on column header 0
	input.SetMousePos(75, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	assert.False(t, table.Drag().Active(), "no drag before the pointer moves")

	// Drag over column header 2
	input.SetMousePos(175, 10)
	_, actions := showFrame(ui, input, table, source, renderer)
	assert.Empty(t, actions)
	assert.Equal(t, gridview.DragReorderColumn, table.Drag().Kind)
	assert.Equal(t, 0, table.Drag().Index)

	// Drop
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	_, actions = showFrame(ui, input, table, source, renderer)
	assert.Equal(t, []gridview.Action{gridview.ColumnReorder(0, 2)}, actions)
	assert.False(t, table.Drag().Active())
}

func TestTableHeaderDropEmitsRowReorder(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable()
	renderer := &recordingRenderer{}

	input.SetMousePos(25, 30)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)

	input.SetMousePos(25, 90)
	showFrame(ui, input, table, source, renderer)

	input.SetMouseButton(gridview.MouseButtonLeft, false)
	_, actions := showFrame(ui, input, table, source, renderer)
	assert.Equal(t, []gridview.Action{gridview.RowReorder(0, 3)}, actions)
}

func TestTableHandlePressNeverReorders(t *testing.T) {
	tests := []struct {
		name  string
		press gridview.Vec2
	}{
		{"own half of the handle", gridview.Vec2{X: 98, Y: 10}},
		{"half overlapping the next header", gridview.Vec2{X: 102, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, input := setupTableTest()
			source := &gridSource{rows: 20, columns: 20}
			table := newTestTable(
				gridview.WithColumnParameters(gridview.NewAxisParameters().WithResizable(false)),
			)
			renderer := &recordingRenderer{}

			input.SetMousePos(tt.press.X, tt.press.Y)
			input.SetMouseButton(gridview.MouseButtonLeft, true)
			showFrame(ui, input, table, source, renderer)

			input.SetMousePos(175, 10)
			_, actions := showFrame(ui, input, table, source, renderer)
			assert.Empty(t, actions)
			assert.False(t, table.Drag().Active(), "a non-resizable handle starts no drag at all")

			input.SetMouseButton(gridview.MouseButtonLeft, false)
			_, actions = showFrame(ui, input, table, source, renderer)
			assert.Empty(t, actions)
			assert.Equal(t, float32(50), table.ColumnWidths()[0])
		})
	}
}

func TestTableNonResizableHandleCursor(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable(
		gridview.WithColumnParameters(gridview.NewAxisParameters().WithResizable(false)),
	)
	renderer := &recordingRenderer{}

	input.SetMousePos(100, 10)
	ctx := ui.Begin(input, tableDisplaySize, 0.016)
	table.Show(ctx, source, renderer)
	assert.Equal(t, gridview.CursorNotAllowed, ctx.CursorIcon())
	require.NoError(t, ui.End())
	input.Reset()

	// Pressing and dragging the disabled handle changes nothing
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(140, 10)
	showFrame(ui, input, table, source, renderer)
	assert.False(t, table.Drag().Active())
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	showFrame(ui, input, table, source, renderer)
	assert.Equal(t, float32(50), table.ColumnWidths()[0])

	// Column 1 keeps the default parameters
	input.SetMousePos(150, 10)
	ctx = ui.Begin(input, tableDisplaySize, 0.016)
	table.Show(ctx, source, renderer)
	assert.Equal(t, gridview.CursorResizeColumn, ctx.CursorIcon())
	require.NoError(t, ui.End())
	input.Reset()
}

func TestTableCrossKindDropIsIgnored(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable()
	renderer := &recordingRenderer{}

	// Column header 0 dropped onto row header 2
	input.SetMousePos(75, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(25, 70)
	showFrame(ui, input, table, source, renderer)
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	_, actions := showFrame(ui, input, table, source, renderer)

	assert.Empty(t, actions)
}

func TestTableResizeCommitsOnlyOnChange(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable()
	renderer := &recordingRenderer{}

	// Press on the right edge of column header 0
	input.SetMousePos(100, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	resp, _ := showFrame(ui, input, table, source, renderer)
	assert.False(t, resp.RepaintRequested)

	input.SetMousePos(130, 10)
	resp, actions := showFrame(ui, input, table, source, renderer)
	assert.Empty(t, actions)
	assert.True(t, resp.RepaintRequested)
	assert.Equal(t, gridview.DragResizeColumn, table.Drag().Kind)
	assert.Equal(t, float32(80), table.ColumnWidths()[0])

	// Pointer held still: nothing new to commit
	resp, _ = showFrame(ui, input, table, source, renderer)
	assert.False(t, resp.RepaintRequested)
	assert.Equal(t, float32(80), table.ColumnWidths()[0])

	input.SetMouseButton(gridview.MouseButtonLeft, false)
	resp, _ = showFrame(ui, input, table, source, renderer)
	assert.False(t, resp.RepaintRequested)
	assert.False(t, table.Drag().Active())
	assert.Equal(t, float32(80), table.ColumnWidths()[0])
	assert.Equal(t, float32(50), table.ColumnWidths()[1])
}

func TestTableResizeRespectsParameters(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 20}
	table := newTestTable(
		gridview.WithColumnParameters(gridview.NewAxisParameters().WithMaximumDimension(60)),
		gridview.WithRowParameters(gridview.NewAxisParameters().WithResizable(false)),
	)
	renderer := &recordingRenderer{}

	input.SetMousePos(100, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(300, 10)
	showFrame(ui, input, table, source, renderer)
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	showFrame(ui, input, table, source, renderer)
	assert.Equal(t, float32(60), table.ColumnWidths()[0])

	// Bottom edge of row header 0 is not resizable
	input.SetMousePos(25, 39)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(25, 80)
	showFrame(ui, input, table, source, renderer)
	assert.False(t, table.Drag().Active(), "neither a resize nor a reorder")
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	showFrame(ui, input, table, source, renderer)
	assert.Equal(t, float32(20), table.RowHeights()[0])
}

func TestTableSizesSurviveShrinkingSource(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 10, columns: 6}
	table := newTestTable()
	renderer := &recordingRenderer{}

	showFrame(ui, input, table, source, renderer)
	widths := table.ColumnWidths()
	require.Len(t, widths, 6)

	source.columns = 2
	renderer.cells = nil
	showFrame(ui, input, table, source, renderer)
	assert.Equal(t, widths, table.ColumnWidths(), "sizes never shrink")
	require.NotEmpty(t, renderer.cells)
	for _, c := range renderer.cells {
		assert.Less(t, c.Column, 2)
	}
}

func TestTableScrollToCell(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 100, columns: 100}
	table := newTestTable()

	table.ScrollToCell(gridview.CellIndex{Row: 10, Column: 3})
	resp, _ := showFrame(ui, input, table, source, &recordingRenderer{})

	assert.Equal(t, gridview.CellIndex{Row: 10, Column: 3}, resp.CellOrigin)
	assert.Equal(t, gridview.Vec2{X: 150, Y: 200}, table.ScrollOffset())
}

func TestTableScrollToCellFollowsOrdering(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 10, columns: 20, columnOrdering: []int{5, 0, 1, 2, 3, 4}}
	params := make([]gridview.AxisParameters, 6)
	for i := range params {
		params[i] = gridview.NewAxisParameters()
	}
	params[5] = params[5].WithDefaultDimension(200)
	table := newTestTable(gridview.WithColumnParameters(params...))

	// Data column 1 sits at visible position 2, after the 200px column 5
	table.ScrollToCell(gridview.CellIndex{Column: 1})
	resp, _ := showFrame(ui, input, table, source, &recordingRenderer{})

	assert.Equal(t, float32(250), table.ScrollOffset().X)
	assert.Equal(t, 2, resp.CellOrigin.Column)
}

func TestTableStateStore(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 5}
	store := gridview.MapStateStore{}
	table := newTestTable(gridview.WithStateStore(store))
	renderer := &recordingRenderer{}

	showFrame(ui, input, table, source, renderer)
	state, ok := store.Get(table.ID())
	require.True(t, ok, "sizes are stored once created")
	assert.Equal(t, []float32{50, 50, 50, 50, 50}, state.ColumnWidths)
	assert.Len(t, state.RowHeights, 20)

	// Resize column 0 to 80
	input.SetMousePos(100, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(130, 10)
	showFrame(ui, input, table, source, renderer)
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	showFrame(ui, input, table, source, renderer)

	state, _ = store.Get(table.ID())
	assert.Equal(t, float32(80), state.ColumnWidths[0])

	// Same label, same store: the width comes back
	restored := newTestTable(gridview.WithStateStore(store))
	assert.Equal(t, table.ID(), restored.ID())
	showFrame(ui, input, restored, source, renderer)
	assert.Equal(t, float32(80), restored.ColumnWidths()[0])
}

func TestTableReorderAppliedByHost(t *testing.T) {
	ui, input := setupTableTest()
	source := &gridSource{rows: 20, columns: 5}
	table := newTestTable()
	renderer := &recordingRenderer{}

	input.SetMousePos(75, 10)
	input.SetMouseButton(gridview.MouseButtonLeft, true)
	showFrame(ui, input, table, source, renderer)
	input.SetMousePos(175, 10)
	showFrame(ui, input, table, source, renderer)
	input.SetMouseButton(gridview.MouseButtonLeft, false)
	_, actions := showFrame(ui, input, table, source, renderer)
	require.Len(t, actions, 1)

	a := actions[0]
	gridview.ApplyReordering(&source.columnOrdering, a.From, a.To)
	assert.Equal(t, []int{1, 2, 0}, source.columnOrdering)

	renderer.cells = nil
	showFrame(ui, input, table, source, renderer)
	var firstRow []int
	for _, c := range renderer.cells {
		if c.Row == 0 {
			firstRow = append(firstRow, c.Column)
		}
	}
	assert.True(t, slices.Equal([]int{1, 2, 0, 3, 4}, firstRow), "got %v", firstRow)
}
