package gridview

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the per-frame lifecycle around one or more tables.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before showing any table.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	g.ctx.DrawList.Finalize()
	err := g.renderer.Render(g.ctx.DrawList)

	// Foreground list (tooltips, drag feedback) goes on top
	if err == nil && g.ctx.ForegroundDrawList != nil {
		g.ctx.ForegroundDrawList.Finalize()
		if len(g.ctx.ForegroundDrawList.CmdBuffer) > 0 {
			err = g.renderer.Render(g.ctx.ForegroundDrawList)
		}
	}

	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil
	ReleaseDrawList(g.ctx.ForegroundDrawList)
	g.ctx.ForegroundDrawList = nil

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
