package gridview

// Response describes the table after one frame.
type Response struct {
	Rect             Rect // Area the table occupied, scrollbars included
	Hovered          bool
	RepaintRequested bool // A resize was committed; draw another frame

	CellOrigin     CellIndex // Visible position of the top-left value cell
	VisibleRows    int       // Grid rows walked this frame, excluding the header row
	VisibleColumns int
	ContentSize    Vec2 // Full scrollable size, header bands included

	CellHovered bool
	HoveredCell CellIndex // Data indices; valid when CellHovered
}

// Table is a virtualized grid that only lays out the cells in view.
//
// A Table owns its sizing, scroll and drag state; keep the same value across
// frames. Column widths and row heights are indexed by data index and survive
// reordering, filtering and shrinking of the data source.
type Table struct {
	id   ID
	opts options

	columns AxisSizes
	rows    AxisSizes

	drag         DragState
	scroll       scrollState
	cellOrigin   CellIndex
	scrollTarget *CellIndex

	pressOnHandle bool // The primary press began on a resize handle this frame

	loaded bool // State store consulted
	dirty  bool // Sizes changed since the last store write
}

// NewTable creates a table whose identity, used for persistence, is
// derived from label.
func NewTable(label string, opts ...Option) *Table {
	return NewTableWithID(HashID(label), opts...)
}

// NewTableWithID creates a table with an explicit identity.
func NewTableWithID(id ID, opts ...Option) *Table {
	return &Table{id: id, opts: applyOptions(opts)}
}

// ID returns the table identity.
func (t *Table) ID() ID { return t.id }

// CellOrigin returns the visible position of the top-left value cell as of
// the last frame.
func (t *Table) CellOrigin() CellIndex { return t.cellOrigin }

// Drag returns the drag in flight, if any.
func (t *Table) Drag() DragState { return t.drag }

// ColumnWidths returns a copy of the inner column widths by data index.
func (t *Table) ColumnWidths() []float32 { return t.columns.Clone() }

// RowHeights returns a copy of the inner row heights by data index.
func (t *Table) RowHeights() []float32 { return t.rows.Clone() }

// State returns the persistable part of the table.
func (t *Table) State() PersistentState {
	return PersistentState{ColumnWidths: t.columns.Clone(), RowHeights: t.rows.Clone()}
}

// Restore replaces the sizing state, e.g. with one loaded from disk.
func (t *Table) Restore(s PersistentState) {
	t.columns = NewAxisSizes(append([]float32(nil), s.ColumnWidths...))
	t.rows = NewAxisSizes(append([]float32(nil), s.RowHeights...))
	t.loaded = true
}

// ScrollOffset returns the body scroll offset in pixels.
func (t *Table) ScrollOffset() Vec2 { return t.scroll.Offset }

// SetScrollOffset scrolls the body. The offset is clamped on the next frame.
func (t *Table) SetScrollOffset(v Vec2) { t.scroll.Offset = v }

// ScrollToCell scrolls so the cell with the given data indices becomes the
// cell origin on the next frame, as far as the content allows.
func (t *Table) ScrollToCell(cell CellIndex) { t.scrollTarget = &cell }

func (t *Table) flags() TableFlags { return GetOpt(t.opts, OptFlags) }

func (t *Table) parameters(a Axis) []AxisParameters {
	if a == AxisRows {
		return GetOpt(t.opts, OptRowParameters)
	}
	return GetOpt(t.opts, OptColumnParameters)
}

func (t *Table) sizes(a Axis) *AxisSizes {
	if a == AxisRows {
		return &t.rows
	}
	return &t.columns
}

// defaultCellSize is the inner size of cells without parameters.
func (t *Table) defaultCellSize(style Style) Vec2 {
	if s := GetOpt(t.opts, OptDefaultCellSize); s.X > 0 && s.Y > 0 {
		return s
	}
	return Vec2{style.InteractSize.X * 1.5, style.InteractSize.Y}
}

// area places the table at the layout cursor.
func (t *Table) area(ctx *Context) Rect {
	size := GetOpt(t.opts, OptSize)
	if size.X <= 0 || size.Y <= 0 {
		size = ctx.AvailableSize()
	}
	size = size.Max(GetOpt(t.opts, OptMinSize))
	pos := ctx.GetCursorPos()
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

func (t *Table) load() {
	if t.loaded {
		return
	}
	t.loaded = true
	store := GetOpt(t.opts, OptStateStore)
	if store == nil {
		return
	}
	if s, ok := store.Get(t.id); ok {
		t.columns = NewAxisSizes(append([]float32(nil), s.ColumnWidths...))
		t.rows = NewAxisSizes(append([]float32(nil), s.RowHeights...))
		logger.Debug("table state loaded", "table", t.id, "columns", len(s.ColumnWidths), "rows", len(s.RowHeights))
	}
}

func (t *Table) persist() {
	store := GetOpt(t.opts, OptStateStore)
	if store == nil || !t.dirty {
		return
	}
	store.Set(t.id, t.State())
	t.dirty = false
}

// Show lays out and draws one frame of the table and reports what the user
// did. Call it once per frame between GUI.Begin and GUI.End.
//
// The data source's dimensions are read exactly once. If either is zero
// nothing is drawn and an empty Response is returned. Prepare and Finalize
// are called around the frame when the source implements them.
func (t *Table) Show(ctx *Context, source DataSource, renderer CellRenderer) (Response, []Action) {
	if p, ok := source.(Preparer); ok {
		p.Prepare()
	}
	if f, ok := source.(Finalizer); ok {
		defer f.Finalize()
	}

	dims := source.Dimensions()
	if dims.IsEmpty() {
		logger.Debug("table is empty", "table", t.id, "rows", dims.RowCount, "columns", dims.ColumnCount)
		return Response{}, nil
	}

	t.load()
	style := ctx.style
	inner := t.defaultCellSize(style)
	padding := style.ItemSpacing
	line := style.GridLineWidth
	spacing := padding.Add(Vec2{line, line})

	before := t.columns.Len() + t.rows.Len()
	t.columns.EnsureCapacity(dims.ColumnCount, inner.X, t.parameters(AxisColumns))
	t.rows.EnsureCapacity(dims.RowCount, inner.Y, t.parameters(AxisRows))
	if t.columns.Len()+t.rows.Len() != before {
		t.dirty = true
	}

	rows := rowView(source, dims.RowCount)
	cols := columnView(source, dims.ColumnCount)

	outerRect := t.area(ctx)
	view := Rect{X: outerRect.X, Y: outerRect.Y, W: outerRect.W - style.ScrollbarSize, H: outerRect.H - style.ScrollbarSize}
	headerBand := inner.Add(padding).Add(Vec2{line, line})
	content := Vec2{
		X: t.columns.Extent(cols.count, cols.ordering, cols.filter, spacing.X) + headerBand.X,
		Y: t.rows.Extent(rows.count, rows.ordering, rows.filter, spacing.Y) + headerBand.Y,
	}

	if target := t.scrollTarget; target != nil {
		t.scrollTarget = nil
		if pos := cols.position(target.Column); pos >= 0 {
			t.scroll.Offset.X = t.columns.Offset(cols.count, cols.ordering, cols.filter, spacing.X, pos)
		}
		if pos := rows.position(target.Row); pos >= 0 {
			t.scroll.Offset.Y = t.rows.Offset(rows.count, rows.ordering, rows.filter, spacing.Y, pos)
		}
	}

	ctx.DrawList.AddRect(view, t.gridColor(style))
	t.scroll.update(ctx, outerRect, view, content)
	scroll := t.scroll.Offset

	colSizes := t.columns.Values()[:dims.ColumnCount]
	rowSizes := t.rows.Values()[:dims.RowCount]
	var first, last [2]ViewportWindow
	var err error
	for _, w := range []struct {
		dst    *ViewportWindow
		offset float32
		sizes  []float32
		v      axisView
		gap    float32
	}{
		{&first[AxisColumns], scroll.X, colSizes, cols, spacing.X},
		{&first[AxisRows], scroll.Y, rowSizes, rows, spacing.Y},
		{&last[AxisColumns], scroll.X + view.W, colSizes, cols, spacing.X},
		{&last[AxisRows], scroll.Y + view.H, rowSizes, rows, spacing.Y},
	} {
		if *w.dst, err = WindowedRange(w.offset, w.sizes, w.v.ordering, w.v.filter, w.gap); err != nil {
			logger.Debug("nothing to lay out", "table", t.id, "err", err)
			return Response{}, nil
		}
	}

	f := newGridFrame(dims, rows, cols, first, last, inner, padding, line, view, scroll, ctx.ClipRect())
	t.cellOrigin = f.origin

	resp := Response{
		Rect:           outerRect,
		Hovered:        ctx.IsHovered(outerRect),
		CellOrigin:     f.origin,
		VisibleRows:    f.visibleRows,
		VisibleColumns: f.visibleColumns,
		ContentSize:    content,
	}
	if resp.Hovered {
		ctx.WantCaptureMouse = true
	}

	actions := t.walkHeaders(ctx, f, nil)
	actions = t.walkValues(ctx, f, source, renderer, &resp, actions)
	paintSeparators(ctx, f)

	if a, index, size, ok := t.stageResize(ctx, padding); ok {
		t.sizes(a).Set(index, size)
		t.dirty = true
		resp.RepaintRequested = true
		ctx.RequestRepaint()
		logger.Debug("resize committed", "table", t.id, "axis", a, "index", index, "size", size)
	}
	if t.drag.Active() && (ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft)) {
		t.drag.Reset()
	}

	t.persist()
	ctx.AdvanceCursor(outerRect.Size())
	return resp, actions
}

func (t *Table) gridColor(style Style) uint32 {
	if t.flags()&TableFlagsNoGridLines != 0 {
		return style.BackgroundColor
	}
	return style.GridLineColor
}
