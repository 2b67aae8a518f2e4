package gridview

// dragPayload is what a header carries while it is dragged.
type dragPayload struct {
	Kind  CellKind
	Index int // Data index
}

// dropAction resolves a header dropped onto another header. Only like
// kinds combine, and dropping a header onto itself does nothing.
func dropAction(source, target dragPayload) (Action, bool) {
	if source.Kind != target.Kind || source.Index == target.Index {
		return Action{}, false
	}
	switch source.Kind {
	case CellColumnHeader:
		return ColumnReorder(source.Index, target.Index), true
	case CellRowHeader:
		return RowReorder(source.Index, target.Index), true
	default:
		return Action{}, false
	}
}

// payload returns what the active reorder drag carries.
func (d DragState) payload() (dragPayload, bool) {
	switch d.Kind {
	case DragReorderColumn:
		return dragPayload{Kind: CellColumnHeader, Index: d.Index}, true
	case DragReorderRow:
		return dragPayload{Kind: CellRowHeader, Index: d.Index}, true
	default:
		return dragPayload{}, false
	}
}

// interactReorder runs the reorder state machine for one header cell: it
// starts a drag from this header, shows drag feedback and handles a drop
// onto it. clip is the visible part of the header.
func (t *Table) interactReorder(ctx *Context, target dragPayload, clip Rect, label string) (Action, bool) {
	in := ctx.Input
	if in == nil {
		return Action{}, false
	}
	style := ctx.style
	a := AxisColumns
	if target.Kind == CellRowHeader {
		a = AxisRows
	}

	if !t.drag.Active() && !t.pressOnHandle && clip.Contains(in.PressOrigin(MouseButtonLeft)) && in.DragStarted(MouseButtonLeft, style.DragThreshold) {
		t.drag = DragState{
			Kind:  reorderKind(a),
			Index: target.Index,
			Start: in.PressOrigin(MouseButtonLeft),
		}
		logger.Debug("reorder started", "table", t.id, "axis", a, "index", target.Index)
	}

	source, dragging := t.drag.payload()
	if !dragging {
		return Action{}, false
	}
	if source == target {
		ctx.SetCursorIcon(CursorGrabbing)
		ctx.tooltip(label)
	}
	if !ctx.IsHovered(clip) {
		return Action{}, false
	}

	ctx.DrawList.AddRect(clip, style.DropTargetColor&0x40FFFFFF)
	if !in.MouseReleased(MouseButtonLeft) {
		return Action{}, false
	}

	action, ok := dropAction(source, target)
	if ok {
		logger.Info("header dropped", "table", t.id, "action", action)
	}
	return action, ok
}
