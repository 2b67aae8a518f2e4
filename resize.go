package gridview

import "strconv"

// HandleState is the visual state of a resize handle.
type HandleState int

const (
	HandleInactive HandleState = iota
	HandleHovered
	HandleDragged
	HandleDisabled // Hovered, but the axis is not resizable
)

// minimumGrabbable is the smallest size that keeps a handle reachable:
// both hit regions of a cell must fit inside it.
func minimumGrabbable(grabRadius float32) float32 {
	return 2*grabRadius + 2
}

// resizedSize computes the inner size for a drag that started at
// initialOuter and has moved delta along the axis. padding is the
// difference between outer and inner size. The result respects the axis
// range and never drops below minGrab.
func resizedSize(initialOuter, delta, padding float32, p AxisParameters, minGrab float32) float32 {
	inner := initialOuter + delta - padding
	return maxf(p.clamp(inner), minGrab)
}

// handleRect returns the hit region on the far edge of a header cell: the
// right edge of a column header, the bottom edge of a row header.
func handleRect(a Axis, cell Rect, radius float32) Rect {
	if a == AxisRows {
		return Rect{X: cell.X, Y: cell.Y + cell.H - radius, W: cell.W, H: 2 * radius}
	}
	return Rect{X: cell.X + cell.W - radius, Y: cell.Y, W: 2 * radius, H: cell.H}
}

// resizeCursor is the pointer shape while hovering or dragging a handle.
func resizeCursor(a Axis) CursorIcon {
	if a == AxisRows {
		return CursorResizeRow
	}
	return CursorResizeColumn
}

// interactResizeHandle runs the idle side of the resize state machine for
// one header: hover feedback and the Idle -> Dragging transition. band is
// the visible header strip; handles never reach outside it.
func (t *Table) interactResizeHandle(ctx *Context, a Axis, index int, cell, band Rect, outer float32, params AxisParameters) HandleState {
	style := ctx.style
	handle := handleRect(a, cell, style.ResizeGrabRadius).Intersect(band)
	if in := ctx.Input; in != nil && in.MouseDown(MouseButtonLeft) && !handle.Degenerate() && handle.Contains(in.PressOrigin(MouseButtonLeft)) {
		// Presses on a handle never start a reorder, resizable or not
		t.pressOnHandle = true
	}

	if t.drag.isResize(a) && t.drag.Index == index {
		return HandleDragged
	}
	if t.drag.Active() || ctx.Input == nil || handle.Degenerate() {
		return HandleInactive
	}

	in := ctx.Input
	if !ctx.IsHovered(handle) && !handle.Contains(in.PressOrigin(MouseButtonLeft)) {
		return HandleInactive
	}
	if !params.Resizable {
		if ctx.IsHovered(handle) {
			ctx.SetCursorIcon(CursorNotAllowed)
			return HandleDisabled
		}
		return HandleInactive
	}

	if handle.Contains(in.PressOrigin(MouseButtonLeft)) && in.DragStarted(MouseButtonLeft, style.DragThreshold) {
		t.drag = DragState{
			Kind:        resizeKind(a),
			Index:       index,
			Start:       in.PressOrigin(MouseButtonLeft),
			InitialSize: outer,
		}
		logger.Debug("resize started", "table", t.id, "axis", a, "index", index, "size", outer)
		ctx.SetCursorIcon(resizeCursor(a))
		return HandleDragged
	}

	if ctx.IsHovered(handle) {
		ctx.SetCursorIcon(resizeCursor(a))
		return HandleHovered
	}
	return HandleInactive
}

// stageResize evaluates an active resize drag for this frame and returns
// the size to commit. ok is false when nothing changes.
func (t *Table) stageResize(ctx *Context, padding Vec2) (a Axis, index int, size float32, ok bool) {
	switch t.drag.Kind {
	case DragResizeColumn:
		a = AxisColumns
	case DragResizeRow:
		a = AxisRows
	default:
		return 0, 0, 0, false
	}

	style := ctx.style
	index = t.drag.Index
	delta := a.Of(ctx.MousePos().Sub(t.drag.Start))
	params, _ := parametersAt(t.parameters(a), index)
	size = resizedSize(t.drag.InitialSize, delta, a.Of(padding), params, minimumGrabbable(style.ResizeGrabRadius))

	ctx.SetCursorIcon(resizeCursor(a))
	ctx.tooltip(strconv.FormatFloat(float64(size), 'f', -1, 32))

	sizes := t.sizes(a)
	return a, index, size, size != sizes.Get(index)
}

// paintResizeHandle draws the handle line on the far edge of a header.
func paintResizeHandle(ctx *Context, a Axis, cell Rect, state HandleState) {
	style := ctx.style
	color := style.HandleColor
	thickness := float32(1)
	switch state {
	case HandleDisabled:
		color = style.HandleDisabledColor
	case HandleHovered:
		color = style.HandleHoveredColor
		thickness = 2
	case HandleDragged:
		color = style.HandleActiveColor
		thickness = 2
	}

	br := cell.Max()
	if a == AxisRows {
		ctx.DrawList.AddLine(Vec2{cell.X, br.Y}, br, color, thickness)
	} else {
		ctx.DrawList.AddLine(Vec2{br.X, cell.Y}, br, color, thickness)
	}
}
