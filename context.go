package gridview

// CursorIcon is the pointer shape a widget asks the host to show.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorResizeColumn
	CursorResizeRow
	CursorNotAllowed
	CursorGrabbing
)

func (c CursorIcon) String() string {
	switch c {
	case CursorResizeColumn:
		return "resize-column"
	case CursorResizeRow:
		return "resize-row"
	case CursorNotAllowed:
		return "not-allowed"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Tooltips and drag feedback (drawn on top)

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor Vec2

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer) for the built-in bitmap font
	FontTextureID uint32

	// Output from widgets to the application, reset every frame.
	WantCaptureMouse bool // True if the pointer is over a table
	cursorIcon       CursorIcon
	repaint          bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:      DefaultStyle(),
		styleStack: make([]Style, 0, 8),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	ctx.cursor = Vec2{0, 0}
	ctx.styleStack = ctx.styleStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	ctx.cursorIcon = CursorDefault
	ctx.repaint = false
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{x, y}
}

// GetCursorPos returns the layout cursor, where the next widget is placed.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// AdvanceCursor moves the cursor below an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing.Y
}

// AvailableSize returns the space between the cursor and the display edge.
func (ctx *Context) AvailableSize() Vec2 {
	return ctx.DisplaySize.Sub(ctx.cursor).Max(Vec2{})
}

// ClipRect returns the clip rectangle widgets must stay inside.
func (ctx *Context) ClipRect() Rect {
	display := Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	if ctx.DrawList == nil {
		return display
	}
	return display.Intersect(ctx.DrawList.ClipRect())
}

// MousePos returns the pointer position, or a far-away point without input.
func (ctx *Context) MousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{-1e9, -1e9}
	}
	return ctx.Input.MousePos()
}

// IsHovered returns true if the rectangle is under the mouse cursor.
func (ctx *Context) IsHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}

// SetCursorIcon requests a pointer shape for this frame.
func (ctx *Context) SetCursorIcon(icon CursorIcon) {
	ctx.cursorIcon = icon
}

// CursorIcon returns the pointer shape requested during this frame.
func (ctx *Context) CursorIcon() CursorIcon {
	return ctx.cursorIcon
}

// RequestRepaint asks the host to draw another frame even without new input.
func (ctx *Context) RequestRepaint() {
	ctx.repaint = true
}

// RepaintRequested reports whether a widget asked for another frame.
func (ctx *Context) RepaintRequested() bool {
	return ctx.repaint
}

// AddTextTo draws text with the current style into dl.
func (ctx *Context) AddTextTo(dl *DrawList, pos Vec2, text string, color uint32) {
	dl.AddText(pos, text, color, ctx.FontTextureID, ctx.style.charSize())
}

// AddText draws text with the current style into the main draw list.
func (ctx *Context) AddText(pos Vec2, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, pos, text, color)
}

// tooltip draws a label box near the pointer on the foreground list.
func (ctx *Context) tooltip(text string) {
	if ctx.ForegroundDrawList == nil || text == "" {
		return
	}
	pad := Vec2{4, 3}
	size := ctx.style.MeasureText(text).Add(pad.Mul(2))
	pos := ctx.MousePos().Add(Vec2{ctx.style.TooltipOffset, ctx.style.TooltipOffset})
	box := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ForegroundDrawList.AddRect(box, ctx.style.TooltipBgColor)
	ctx.ForegroundDrawList.AddRectOutline(box, ctx.style.GridLineColor, 1)
	ctx.AddTextTo(ctx.ForegroundDrawList, pos.Add(pad), text, ctx.style.TextColor)
}
