package gridview

// CellSurface is where a CellRenderer draws one cell. Everything drawn
// through it is clipped to the visible part of the cell.
type CellSurface struct {
	ctx       *Context
	rect      Rect // Inner cell rectangle, unclipped
	clip      Rect
	cursor    Vec2
	monospace bool
}

func newCellSurface(ctx *Context, rect, clip Rect, monospace bool) *CellSurface {
	return &CellSurface{ctx: ctx, rect: rect, clip: clip, cursor: rect.Min(), monospace: monospace}
}

// Rect returns the inner rectangle of the cell. Parts of it may be
// scrolled out of view; see ClipRect.
func (s *CellSurface) Rect() Rect { return s.rect }

// ClipRect returns the visible part of the cell.
func (s *CellSurface) ClipRect() Rect { return s.clip }

// Monospace reports whether the row or column asked for fixed-width text.
func (s *CellSurface) Monospace() bool { return s.monospace }

// Style returns the style the table is drawn with.
func (s *CellSurface) Style() Style { return s.ctx.style }

// Hovered reports whether the pointer is over the visible part of the cell.
func (s *CellSurface) Hovered() bool { return s.ctx.IsHovered(s.clip) }

// Fill paints the whole cell.
func (s *CellSurface) Fill(color uint32) {
	s.FillRect(s.rect, color)
}

// FillRect paints a rectangle, clipped to the cell.
func (s *CellSurface) FillRect(r Rect, color uint32) {
	dl := s.ctx.DrawList
	dl.PushClipRect(s.clip)
	dl.AddRect(r, color)
	dl.PopClipRect()
}

// Text draws a label at the cell's text cursor in the default text color.
// Text does not wrap; whatever overflows the cell is clipped.
func (s *CellSurface) Text(text string) {
	s.TextColored(text, s.ctx.style.TextColor)
}

// TextColored draws a label at the text cursor and moves the cursor to the
// next line.
func (s *CellSurface) TextColored(text string, color uint32) {
	dl := s.ctx.DrawList
	dl.PushClipRect(s.clip)
	s.ctx.AddText(s.cursor, text, color)
	dl.PopClipRect()
	s.cursor.Y += s.ctx.style.MeasureText(text).Y
}

// DrawList exposes the underlying draw list for custom painting. Callers
// should push ClipRect themselves.
func (s *CellSurface) DrawList() *DrawList { return s.ctx.DrawList }
