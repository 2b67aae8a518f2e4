package gridview

// Style defines the visual appearance of a table.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Table body
	BackgroundColor uint32 // Behind all cells
	GridLineColor   uint32 // Lines between cells and around header bands
	RowBgAltColor   uint32 // Striped (odd) rows
	HoveredBgColor  uint32 // Hovered value cell
	DropTargetColor uint32 // Header under a reorder drag

	// Headers
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 = use TextColor

	// Resize handles
	HandleColor         uint32
	HandleHoveredColor  uint32
	HandleActiveColor   uint32
	HandleDisabledColor uint32

	// Tooltip
	TooltipBgColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// ItemSpacing is the gap between a cell's inner content and its outer
	// bounds, per axis. Outer size = inner size + ItemSpacing.
	ItemSpacing Vec2
	// GridLineWidth is the pixel gap reserved for the line between cells.
	GridLineWidth float32
	// InteractSize is the nominal size of an interactive element. The default
	// cell size is derived from it.
	InteractSize Vec2
	// ResizeGrabRadius is half the width of the resize hit region.
	ResizeGrabRadius float32
	// DragThreshold is how far the pointer must travel before a press turns
	// into a drag.
	DragThreshold float32
	// TooltipOffset places tooltips away from the pointer.
	TooltipOffset float32

	// Scrollbar
	ScrollbarSize    float32
	ScrollWheelSpeed float32 // Pixels per wheel notch
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		BackgroundColor: RGBA(20, 20, 20, 255),
		GridLineColor:   RGBA(60, 60, 60, 255),
		RowBgAltColor:   RGBA(32, 32, 32, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),
		DropTargetColor: RGBA(50, 100, 150, 255),

		HeaderBgColor:   RGBA(40, 40, 40, 255),
		HeaderTextColor: 0, // Use TextColor

		HandleColor:         RGBA(90, 90, 90, 255),
		HandleHoveredColor:  RGBA(140, 140, 140, 255),
		HandleActiveColor:   ColorWhite,
		HandleDisabledColor: RGBA(120, 40, 40, 255),

		TooltipBgColor: RGBA(10, 10, 10, 230),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		ItemSpacing:      Vec2{8, 4},
		GridLineWidth:    1,
		InteractSize:     Vec2{40, 18},
		ResizeGrabRadius: 5,
		DragThreshold:    3,
		TooltipOffset:    12,

		ScrollbarSize:    12,
		ScrollWheelSpeed: 30,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.BackgroundColor = RGBA(250, 250, 250, 255)
	s.GridLineColor = RGBA(200, 200, 200, 255)
	s.RowBgAltColor = RGBA(240, 240, 240, 255)
	s.HoveredBgColor = RGBA(225, 225, 230, 255)
	s.DropTargetColor = RGBA(0, 120, 215, 255)
	s.HeaderBgColor = RGBA(220, 220, 225, 255)
	s.HandleColor = RGBA(170, 170, 170, 255)
	s.HandleHoveredColor = RGBA(110, 110, 110, 255)
	s.HandleActiveColor = RGBA(20, 20, 20, 255)
	s.TooltipBgColor = RGBA(255, 255, 225, 240)
	s.ScrollbarBgColor = RGBA(230, 230, 230, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(150, 150, 150, 255)
	return s
}

// headerTextColor resolves the header text color fallback.
func (s Style) headerTextColor() uint32 {
	if s.HeaderTextColor != 0 {
		return s.HeaderTextColor
	}
	return s.TextColor
}

// charSize is the advance and height of one bitmap glyph.
func (s Style) charSize() Vec2 {
	return Vec2{s.CharWidth * s.FontScale, s.CharHeight * s.FontScale}
}

// MeasureText returns the size of text drawn with the built-in font.
func (s Style) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	cs := s.charSize()
	return Vec2{float32(n) * cs.X, cs.Y}
}
