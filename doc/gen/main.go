// Command gen renders tables in a few configurations, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridview"
	"github.com/go-theft-auto/gridview/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single table screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	style  gridview.Style
	table  *gridview.Table
	source gridview.DataSource
	frames int // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gridview renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection follows the shot size. The hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gridview.New(renderer, gridview.WithStyle(s.style))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gridview.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(&gridview.InputState{}, displaySize, 1.0/60.0)
		ctx.SetCursorPos(8, 8)
		s.table.Show(ctx, s.source, gridview.FieldRenderer)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// multiplication is an n*n times table with optional ordering and filters.
type multiplication struct {
	n           int
	rowOrder    []int
	columnOrder []int
	hiddenRows  []int
}

func (m *multiplication) Dimensions() gridview.TableDimensions {
	return gridview.TableDimensions{RowCount: m.n, ColumnCount: m.n}
}

func (m *multiplication) Value(row, col int) (any, bool) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return nil, false
	}
	return (row + 1) * (col + 1), true
}

func (m *multiplication) RowOrdering() []int    { return m.rowOrder }
func (m *multiplication) ColumnOrdering() []int { return m.columnOrder }
func (m *multiplication) RowsToFilter() []int   { return m.hiddenRows }

func buildScreenshots() []screenshot {
	size := gridview.WithSize(gridview.Vec2{X: 384, Y: 224})

	scrolled := gridview.NewTable("scrolled", size)
	scrolled.SetScrollOffset(gridview.Vec2{X: 300, Y: 400})

	return []screenshot{
		{
			name: "table", width: 400, height: 240,
			style:  gridview.DefaultStyle(),
			table:  gridview.NewTable("table", size),
			source: &multiplication{n: 1000},
		},
		{
			name: "table_light", width: 400, height: 240,
			style:  gridview.LightStyle(),
			table:  gridview.NewTable("light", size, gridview.WithFlags(gridview.TableFlagsStriped|gridview.TableFlagsZeroBasedHeaders)),
			source: &multiplication{n: 1000},
		},
		{
			name: "table_scrolled", width: 400, height: 240,
			style:  gridview.DefaultStyle(),
			table:  scrolled,
			source: &multiplication{n: 1000},
		},
		{
			name: "table_parameters", width: 400, height: 240,
			style: gridview.DefaultStyle(),
			table: gridview.NewTable("parameters", size,
				gridview.WithColumnParameters(
					gridview.NewAxisParameters().WithName("Narrow").WithDefaultDimension(40),
					gridview.NewAxisParameters().WithName("Wide").WithDefaultDimension(120).WithMonospace(true),
				),
				gridview.WithRowParameters(
					gridview.NewAxisParameters().WithDefaultDimension(40),
				),
			),
			source: &multiplication{n: 50},
		},
		{
			name: "table_ordered", width: 400, height: 240,
			style: gridview.DefaultStyle(),
			table: gridview.NewTable("ordered", size),
			source: &multiplication{
				n:           50,
				rowOrder:    []int{4, 3, 2, 1, 0},
				columnOrder: []int{2, 0, 1},
				hiddenRows:  []int{1, 6, 7},
			},
		},
	}
}
