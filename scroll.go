package gridview

// scrollState is the table's scroll position and scrollbar drag state.
type scrollState struct {
	Offset Vec2 // Body scroll offset, in content pixels

	dragAxis        Axis
	dragging        bool
	dragStart       float32 // Pointer coordinate when the thumb was grabbed
	dragStartOffset float32
}

// minThumbLength keeps scrollbar thumbs grabbable on huge tables.
const minThumbLength float32 = 20

// maxOffset returns the largest scroll offset that still fills the view.
func maxOffset(view, content Vec2) Vec2 {
	return content.Sub(view).Max(Vec2{})
}

func (s *scrollState) clamp(view, content Vec2) {
	m := maxOffset(view, content)
	s.Offset.X = clampf(s.Offset.X, 0, m.X)
	s.Offset.Y = clampf(s.Offset.Y, 0, m.Y)
}

func (s *scrollState) add(a Axis, delta float32) {
	if a == AxisRows {
		s.Offset.Y += delta
	} else {
		s.Offset.X += delta
	}
}

func (s *scrollState) set(a Axis, v float32) {
	if a == AxisRows {
		s.Offset.Y = v
	} else {
		s.Offset.X = v
	}
}

// scrollbarRect returns the track for one axis. Bars sit outside view, on
// its right (rows) and bottom (columns) edges.
func scrollbarRect(a Axis, view Rect, size float32) Rect {
	if a == AxisRows {
		return Rect{X: view.X + view.W, Y: view.Y, W: size, H: view.H}
	}
	return Rect{X: view.X, Y: view.Y + view.H, W: view.W, H: size}
}

// thumb returns the thumb rect within a track and the scroll range it maps.
func (s *scrollState) thumb(a Axis, track Rect, view, content Vec2) (Rect, float32) {
	length := a.Of(track.Size())
	extent := a.Of(content)
	maxScroll := a.Of(maxOffset(view, content))

	thumbLen := length
	if extent > 0 {
		thumbLen = clampf(length*a.Of(view)/extent, minf(minThumbLength, length), length)
	}
	pos := float32(0)
	if maxScroll > 0 {
		pos = a.Of(s.Offset) / maxScroll * (length - thumbLen)
	}
	if a == AxisRows {
		return Rect{X: track.X, Y: track.Y + pos, W: track.W, H: thumbLen}, maxScroll
	}
	return Rect{X: track.X + pos, Y: track.Y, W: thumbLen, H: track.H}, maxScroll
}

// update applies wheel, keyboard and scrollbar input, then draws both bars.
// outer is the whole table area; view is the part showing cells.
func (s *scrollState) update(ctx *Context, outer, view Rect, content Vec2) {
	style := ctx.style
	in := ctx.Input
	viewSize := view.Size()

	if in != nil && ctx.IsHovered(outer) {
		if in.MouseWheelY != 0 {
			if in.ModShift {
				s.add(AxisColumns, -in.MouseWheelY*style.ScrollWheelSpeed)
			} else {
				s.add(AxisRows, -in.MouseWheelY*style.ScrollWheelSpeed)
			}
		}
		if in.MouseWheelX != 0 {
			s.add(AxisColumns, -in.MouseWheelX*style.ScrollWheelSpeed)
		}

		page := viewSize.Y * 0.8 // Page up/down scrolls 80% of viewport
		switch {
		case in.KeyPressed(KeyPageDown):
			s.add(AxisRows, page)
		case in.KeyPressed(KeyPageUp):
			s.add(AxisRows, -page)
		case in.KeyPressed(KeyHome):
			s.Offset.Y = 0
		case in.KeyPressed(KeyEnd):
			s.Offset.Y = content.Y
		case in.KeyPressed(KeyDown):
			s.add(AxisRows, style.ScrollWheelSpeed)
		case in.KeyPressed(KeyUp):
			s.add(AxisRows, -style.ScrollWheelSpeed)
		case in.KeyPressed(KeyRight):
			s.add(AxisColumns, style.ScrollWheelSpeed)
		case in.KeyPressed(KeyLeft):
			s.add(AxisColumns, -style.ScrollWheelSpeed)
		}
	}
	s.clamp(viewSize, content)

	for _, a := range [...]Axis{AxisRows, AxisColumns} {
		s.updateBar(ctx, a, view, content)
	}
}

func (s *scrollState) updateBar(ctx *Context, a Axis, view Rect, content Vec2) {
	style := ctx.style
	in := ctx.Input
	track := scrollbarRect(a, view, style.ScrollbarSize)
	viewSize := view.Size()
	thumb, maxScroll := s.thumb(a, track, viewSize, content)
	thumbHovered := ctx.IsHovered(thumb)

	if in != nil {
		pointer := a.Of(in.MousePos())
		if thumbHovered && in.MouseClicked(MouseButtonLeft) {
			s.dragging = true
			s.dragAxis = a
			s.dragStart = pointer
			s.dragStartOffset = a.Of(s.Offset)
		}

		if s.dragging && s.dragAxis == a {
			if in.MouseDown(MouseButtonLeft) {
				travel := a.Of(track.Size()) - a.Of(thumb.Size())
				if travel > 0 {
					s.set(a, clampf(s.dragStartOffset+(pointer-s.dragStart)*(maxScroll/travel), 0, maxScroll))
				}
			} else {
				s.dragging = false
			}
		}

		// Click on the track pages towards the pointer
		if !thumbHovered && ctx.IsHovered(track) && in.MouseClicked(MouseButtonLeft) {
			page := a.Of(viewSize)
			if pointer < a.Of(thumb.Min()) {
				s.set(a, clampf(a.Of(s.Offset)-page, 0, maxScroll))
			} else if pointer > a.Of(thumb.Max()) {
				s.set(a, clampf(a.Of(s.Offset)+page, 0, maxScroll))
			}
		}
	}

	// Redo the thumb after input so the bar matches the offset used this frame
	thumb, _ = s.thumb(a, track, viewSize, content)
	ctx.DrawList.AddRect(track, style.ScrollbarBgColor)
	thumbColor := style.ScrollbarGrabColor
	if (s.dragging && s.dragAxis == a) || thumbHovered {
		thumbColor = style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(thumb, thumbColor)
}
