package gridview

import (
	"fmt"
	"strconv"
)

// CellKind classifies a grid position.
type CellKind int

const (
	CellCorner CellKind = iota
	CellColumnHeader
	CellRowHeader
	CellValue
)

func (k CellKind) String() string {
	switch k {
	case CellCorner:
		return "corner"
	case CellColumnHeader:
		return "column-header"
	case CellRowHeader:
		return "row-header"
	default:
		return "value"
	}
}

// cellKindAt classifies a grid-relative position. Row 0 and column 0 are
// the header bands.
func cellKindAt(gridRow, gridColumn int) CellKind {
	switch {
	case gridRow == 0 && gridColumn == 0:
		return CellCorner
	case gridRow == 0:
		return CellColumnHeader
	case gridColumn == 0:
		return CellRowHeader
	default:
		return CellValue
	}
}

// gridFrame is the geometry shared by both layout passes of one frame.
type gridFrame struct {
	dims   TableDimensions
	rows   axisView
	cols   axisView
	origin CellIndex // Visible position of the first value row/column

	visibleRows    int
	visibleColumns int
	firstFiltered  int // Filtered rows walked before the origin row

	inner   Vec2 // Inner size of the header row and column
	outer   Vec2
	padding Vec2 // outer - inner
	line    float32

	view       Rect // Screen area showing cells, headers included
	bodyMin    Vec2 // Screen position of the origin cell minus the header band
	headerEnd  Vec2 // Screen position where the value area starts
	parentClip Rect
	cellsClip  Rect // Value area
	colBand    Rect // Visible column header strip
	rowBand    Rect // Visible row header strip

	// Extents of the header bands actually drawn, for the separator lines
	headerWidth  float32
	headerHeight float32
}

func newGridFrame(dims TableDimensions, rows, cols axisView, first, last [2]ViewportWindow, inner, padding Vec2, line float32, view Rect, scroll Vec2, parentClip Rect) *gridFrame {
	f := &gridFrame{
		dims:          dims,
		rows:          rows,
		cols:          cols,
		origin:        CellIndex{Row: first[AxisRows].Position, Column: first[AxisColumns].Position},
		firstFiltered: first[AxisRows].Filtered,
		inner:         inner,
		outer:         inner.Add(padding),
		padding:       padding,
		line:          line,
		view:          view,
		parentClip:    parentClip,
	}
	f.visibleRows = last[AxisRows].Position - first[AxisRows].Position + 1 + last[AxisRows].Filtered
	f.visibleColumns = last[AxisColumns].Position - first[AxisColumns].Position + 1 + last[AxisColumns].Filtered
	f.visibleRows = max(min(f.visibleRows, dims.RowCount-f.origin.Row), 0)
	f.visibleColumns = max(min(f.visibleColumns, dims.ColumnCount-f.origin.Column), 0)

	tableMin := view.Min()
	f.bodyMin = tableMin.Sub(scroll).Add(Vec2{first[AxisColumns].Range.Min, first[AxisRows].Range.Min})
	f.headerEnd = tableMin.Add(f.outer).Add(Vec2{line, line})
	f.cellsClip = RectFromMinMax(f.headerEnd, view.Max()).Intersect(parentClip)
	f.colBand = RectFromMinMax(Vec2{f.headerEnd.X, tableMin.Y}, Vec2{view.Max().X, tableMin.Y + f.outer.Y}).Intersect(parentClip)
	f.rowBand = RectFromMinMax(Vec2{tableMin.X, f.headerEnd.Y}, Vec2{tableMin.X + f.outer.X, view.Max().Y}).Intersect(parentClip)
	return f
}

// rowBackground returns the fill for a row given its running counter.
func (t *Table) rowBackground(style Style, counter int, base uint32) uint32 {
	if t.flags()&TableFlagsStriped != 0 && counter%2 == 1 {
		return style.RowBgAltColor
	}
	return base
}

// headerLabel returns the text of a row or column header.
func (t *Table) headerLabel(a Axis, index int) string {
	if p, ok := parametersAt(t.parameters(a), index); ok && p.Name != "" {
		return p.Name
	}
	if t.flags()&TableFlagsZeroBasedHeaders != 0 {
		return strconv.Itoa(index)
	}
	return strconv.Itoa(index + 1)
}

// cornerLabel shows the dimensions and the scroll origin.
func cornerLabel(dims TableDimensions, origin CellIndex) string {
	return fmt.Sprintf("%d*%d (%d,%d)", dims.ColumnCount, dims.RowCount, origin.Column, origin.Row)
}

// walkHeaders lays out the corner and the pinned header cells. Column
// headers stay at the top edge and row headers at the left edge while the
// body scrolls underneath.
func (t *Table) walkHeaders(ctx *Context, f *gridFrame, actions []Action) []Action {
	style := ctx.style
	rowCounter := f.origin.Row - f.firstFiltered
	tableMin := f.view.Min()
	t.pressOnHandle = false

	var accRows float32
	for gr := 0; gr <= f.visibleRows; gr++ {
		if gr+f.origin.Row > f.dims.RowCount {
			break
		}
		visibleRow := f.origin.Row + max(gr-1, 0)
		row := f.rows.mapIndex(visibleRow)
		if gr > 0 && f.rows.filtered(row) {
			continue
		}
		rowCounter++

		innerH := f.inner.Y
		if gr > 0 {
			innerH = t.rows.Get(row)
		}
		outerH := innerH + f.padding.Y

		var accCols float32
		for gc := 0; gc <= f.visibleColumns; gc++ {
			if gc+f.origin.Column > f.dims.ColumnCount {
				break
			}
			kind := cellKindAt(gr, gc)
			if kind == CellValue {
				break
			}
			visibleCol := f.origin.Column + max(gc-1, 0)
			col := f.cols.mapIndex(visibleCol)
			if kind == CellColumnHeader && f.cols.filtered(col) {
				continue
			}

			innerW := f.inner.X
			if kind == CellColumnHeader {
				innerW = t.columns.Get(col)
			}
			outerW := innerW + f.padding.X

			pos := f.bodyMin.Add(Vec2{accCols, accRows})
			accCols += outerW + f.line
			if kind != CellRowHeader {
				pos.Y = tableMin.Y
			}
			if kind != CellColumnHeader {
				pos.X = tableMin.X
			}

			cell := Rect{X: pos.X, Y: pos.Y, W: outerW, H: outerH}
			clip := cell.Intersect(f.view)
			if gr == 1 {
				clip = RectFromMinMax(Vec2{clip.X, maxf(clip.Y, f.headerEnd.Y)}, clip.Max())
			}
			if gc == 1 {
				clip = RectFromMinMax(Vec2{maxf(clip.X, f.headerEnd.X), clip.Y}, clip.Max())
			}
			clip = clip.Intersect(f.parentClip)
			if clip.Degenerate() {
				continue
			}

			bg := style.HeaderBgColor
			if gr > 0 {
				bg = t.rowBackground(style, rowCounter, style.HeaderBgColor)
			}
			ctx.DrawList.PushClipRect(clip)
			ctx.DrawList.AddRect(cell, bg)
			ctx.DrawList.PopClipRect()

			var label string
			var target dragPayload
			monospace := false
			switch kind {
			case CellCorner:
				label = cornerLabel(f.dims, f.origin)
			case CellColumnHeader:
				label = t.headerLabel(AxisColumns, col)
				params, _ := parametersAt(t.parameters(AxisColumns), col)
				monospace = params.Monospace
				target = dragPayload{Kind: kind, Index: col}
				state := t.interactResizeHandle(ctx, AxisColumns, col, cell, f.colBand, outerW, params)
				t.paintHandle(ctx, AxisColumns, cell, f.colBand, state)
			case CellRowHeader:
				label = t.headerLabel(AxisRows, row)
				params, _ := parametersAt(t.parameters(AxisRows), row)
				monospace = params.Monospace
				target = dragPayload{Kind: kind, Index: row}
				state := t.interactResizeHandle(ctx, AxisRows, row, cell, f.rowBand, outerH, params)
				t.paintHandle(ctx, AxisRows, cell, f.rowBand, state)
			}

			innerRect := cell.Shrink2(f.padding.Mul(0.5))
			surface := newCellSurface(ctx, innerRect, innerRect.Intersect(clip), monospace)
			surface.TextColored(style.TruncateText(label, innerRect.W), style.headerTextColor())

			if kind != CellCorner {
				if action, ok := t.interactReorder(ctx, target, clip, label); ok {
					actions = append(actions, action)
				}
			}

			if gr == 0 {
				f.headerWidth += clip.W + f.line
			}
			if gc == 0 {
				f.headerHeight += clip.H + f.line
			}
		}
		accRows += outerH + f.line
	}
	return actions
}

func (t *Table) paintHandle(ctx *Context, a Axis, cell, band Rect, state HandleState) {
	ctx.DrawList.PushClipRect(band)
	paintResizeHandle(ctx, a, cell, state)
	ctx.DrawList.PopClipRect()
}

// walkValues lays out the value cells in scroll-body coordinates and hands
// each visible one to the renderer.
func (t *Table) walkValues(ctx *Context, f *gridFrame, source DataSource, renderer CellRenderer, resp *Response, actions []Action) []Action {
	style := ctx.style
	highlight := t.flags()&TableFlagsHighlightHoveredCell != 0
	released := ctx.Input != nil && ctx.Input.MouseReleased(MouseButtonLeft)
	rowCounter := f.origin.Row + 1 - f.firstFiltered
	half := f.padding.Mul(0.5)

	accRows := f.outer.Y + f.line
	for gr := 1; gr <= f.visibleRows; gr++ {
		if gr+f.origin.Row > f.dims.RowCount {
			break
		}
		row := f.rows.mapIndex(f.origin.Row + gr - 1)
		if f.rows.filtered(row) {
			continue
		}
		rowCounter++

		outerH := t.rows.Get(row) + f.padding.Y
		rowBg := t.rowBackground(style, rowCounter, style.BackgroundColor)
		y := f.bodyMin.Y + accRows

		accCols := f.outer.X + f.line
		for gc := 1; gc <= f.visibleColumns; gc++ {
			if gc+f.origin.Column > f.dims.ColumnCount {
				break
			}
			col := f.cols.mapIndex(f.origin.Column + gc - 1)
			if f.cols.filtered(col) {
				continue
			}

			outerW := t.columns.Get(col) + f.padding.X
			x := f.bodyMin.X + accCols
			accCols += outerW + f.line

			cell := Rect{X: x, Y: y, W: outerW, H: outerH}
			clip := cell.Intersect(f.cellsClip)
			if clip.Degenerate() {
				continue
			}

			index := CellIndex{Row: row, Column: col}
			hovered := ctx.IsHovered(clip)
			bg := rowBg
			if hovered {
				resp.HoveredCell = index
				resp.CellHovered = true
				if highlight {
					bg = style.HoveredBgColor
				}
			}
			ctx.DrawList.PushClipRect(clip)
			ctx.DrawList.AddRect(cell, bg)
			ctx.DrawList.PopClipRect()

			// Release, not press: the press may have started elsewhere.
			if hovered && released {
				actions = append(actions, CellClicked(row, col))
			}

			innerRect := cell.Shrink2(half)
			innerClip := innerRect.Intersect(clip)
			if innerClip.Degenerate() {
				continue
			}
			monospace := t.monospace(row, col)
			renderer.RenderCell(newCellSurface(ctx, innerRect, innerClip, monospace), index, source)
		}
		accRows += outerH + f.line
	}
	return actions
}

// monospace reports whether either axis of a cell asks for fixed-width text.
func (t *Table) monospace(row, col int) bool {
	rp, _ := parametersAt(t.parameters(AxisRows), row)
	cp, _ := parametersAt(t.parameters(AxisColumns), col)
	return rp.Monospace || cp.Monospace
}

// paintSeparators draws the lines under the column headers and right of
// the row headers.
func paintSeparators(ctx *Context, f *gridFrame) {
	tableMin := f.view.Min()
	color := ctx.style.GridLineColor
	dl := ctx.DrawList
	dl.PushClipRect(f.view.Intersect(f.parentClip))
	y := tableMin.Y + f.outer.Y + f.line/2
	dl.AddLine(Vec2{tableMin.X, y}, Vec2{tableMin.X + f.headerWidth, y}, color, maxf(f.line, 1))
	x := tableMin.X + f.outer.X + f.line/2
	dl.AddLine(Vec2{x, tableMin.Y}, Vec2{x, tableMin.Y + f.headerHeight}, color, maxf(f.line, 1))
	dl.PopClipRect()
}
