package gridview

import (
	"math"
	"sync"
)

// drawListPool reuses DrawList buffers between frames. The table rebuilds
// every visible cell each frame, so per-frame allocation would dominate.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 8192),
			CmdBuffer: make([]DrawCmd, 0, 64),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a clip rectangle. Subsequent primitives are clipped
// to it by the renderer's scissor test.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the active clip rectangle.
func (dl *DrawList) ClipRect() Rect {
	c := dl.currentClip
	return RectFromMinMax(Vec2{c[0], c[1]}, Vec2{c[2], c[3]})
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command. A command is split before its 16-bit index space runs out.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(x0, y0, x1, y1 float32, uv [4]float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{uv[0], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{uv[2], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{uv[2], uv[3]}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{uv[0], uv[3]}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.Degenerate() {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(r.X, r.Y, r.X+r.W, r.Y+r.H, [4]float32{}, color)
}

// AddRectOutline draws a rectangle outline inside r.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(Rect{r.X, r.Y, r.W, thickness}, color)
	dl.AddRect(Rect{r.X, r.Y + r.H - thickness, r.W, thickness}, color)
	dl.AddRect(Rect{r.X, r.Y + thickness, thickness, r.H - 2*thickness}, color)
	dl.AddRect(Rect{r.X + r.W - thickness, r.Y + thickness, thickness, r.H - 2*thickness}, color)
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(a, b Vec2, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)

	dx := b.X - a.X
	dy := b.Y - a.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{a.X + nx, a.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X + nx, b.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X - nx, b.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{a.X - nx, a.Y - ny}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddText draws text with the built-in bitmap font bound to fontTexture.
// charSize is the advance and line height of one glyph.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, fontTexture uint32, charSize Vec2) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	dl.SetTexture(fontTexture)

	i := 0
	for _, r := range text {
		// 16x6 grid of 8x8 glyphs for ASCII 32-127 in a 128x48 texture
		if r < 32 || r > 127 {
			r = '?'
		}
		idx := int(r - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)
		uv := [4]float32{col * 8 / 128, row * 8 / 48, (col + 1) * 8 / 128, (row + 1) * 8 / 48}

		px := pos.X + float32(i)*charSize.X
		dl.addQuad(px, pos.Y, px+charSize.X, pos.Y+charSize.Y, uv, color)
		i++
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
