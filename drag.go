package gridview

// DragKind identifies what an active pointer drag is doing.
type DragKind int

const (
	DragNone DragKind = iota
	DragResizeColumn
	DragResizeRow
	DragReorderColumn
	DragReorderRow
)

func (k DragKind) String() string {
	switch k {
	case DragResizeColumn:
		return "resize-column"
	case DragResizeRow:
		return "resize-row"
	case DragReorderColumn:
		return "reorder-column"
	case DragReorderRow:
		return "reorder-row"
	default:
		return "none"
	}
}

// DragState tracks the single drag a table can have in flight.
// It lives across frames until the primary button is released.
type DragState struct {
	Kind        DragKind
	Index       int     // Data index of the row or column being dragged
	Start       Vec2    // Pointer position when the button went down
	InitialSize float32 // Outer size at drag start (resizes only)
}

// Active reports whether a drag is in flight.
func (d DragState) Active() bool {
	return d.Kind != DragNone
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	*d = DragState{}
}

// isResize reports whether the drag resizes the given axis.
func (d DragState) isResize(a Axis) bool {
	return d.Kind == resizeKind(a)
}

func resizeKind(a Axis) DragKind {
	if a == AxisRows {
		return DragResizeRow
	}
	return DragResizeColumn
}

func reorderKind(a Axis) DragKind {
	if a == AxisRows {
		return DragReorderRow
	}
	return DragReorderColumn
}
