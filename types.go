package gridview

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: maxf(v.X, other.X), Y: maxf(v.Y, other.Y)}
}

// Axis selects one dimension of the grid. Sizing, ordering and filtering
// treat both axes the same way.
type Axis int

const (
	AxisColumns Axis = iota // horizontal: widths, X coordinates
	AxisRows                // vertical: heights, Y coordinates
)

func (a Axis) String() string {
	if a == AxisRows {
		return "rows"
	}
	return "columns"
}

// Of returns the component of v along the axis.
func (a Axis) Of(v Vec2) float32 {
	if a == AxisRows {
		return v.Y
	}
	return v.X
}

// Span is a half-open pixel range [Min, Max) along one axis.
type Span struct {
	Min, Max float32
}

// Contains reports whether v lies in [Min, Max).
func (s Span) Contains(v float32) bool {
	return v >= s.Min && v < s.Max
}

// Len returns the extent of the span.
func (s Span) Len() float32 {
	return s.Max - s.Min
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromMinMax builds a rectangle from two corners. The result may have a
// negative size when max lies before min.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlap of two rectangles. Disjoint rectangles
// produce a degenerate result; check it with Degenerate.
func (r Rect) Intersect(other Rect) Rect {
	rmin, rmax := r.Min(), r.Max()
	omin, omax := other.Min(), other.Max()
	return RectFromMinMax(rmin.Max(omin), Vec2{minf(rmax.X, omax.X), minf(rmax.Y, omax.Y)})
}

// Degenerate reports whether the rectangle has no area.
func (r Rect) Degenerate() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Shrink2 insets the rectangle by d on each side.
func (r Rect) Shrink2(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W - 2*d.X, H: r.H - 2*d.Y}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// inf32 is positive infinity as float32.
var inf32 = float32(math.Inf(1))
