// Example demonstrates a spreadsheet-like grid of 100,000 rows.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag header edges to resize, drag headers onto each other to reorder,
// click a cell to select it. Every tenth row is filtered out. Column
// widths and row heights are saved to the user config directory on exit.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridview"
	"github.com/go-theft-auto/gridview/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "gridview example"

	rowCount = 100_000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type order struct {
	ID       int
	Customer string
	Item     string
	Quantity int
	Price    float64
}

var (
	customers = []string{"Ada", "Grace", "Linus", "Barbara", "Ken", "Margaret"}
	items     = []string{"Widget", "Gadget", "Sprocket", "Gizmo"}
)

func makeOrders(n int) []order {
	orders := make([]order, n)
	for i := range orders {
		orders[i] = order{
			ID:       i + 1,
			Customer: customers[i%len(customers)],
			Item:     items[(i/3)%len(items)],
			Quantity: 1 + i%17,
			Price:    float64(100+i%900) / 10,
		}
	}
	return orders
}

// sheet is the host side of the table: it owns the data and the display
// order, and applies the table's reorder actions.
type sheet struct {
	*gridview.Records[order]

	rowOrder    []int
	columnOrder []int
	hidden      []int
	selected    *gridview.CellIndex
}

func newSheet(orders []order) *sheet {
	s := &sheet{
		Records: &gridview.Records[order]{
			Rows:    orders,
			Columns: 6,
			Field: func(o order, col int) any {
				switch col {
				case 0:
					return o.ID
				case 1:
					return o.Customer
				case 2:
					return o.Item
				case 3:
					return o.Quantity
				case 4:
					return fmt.Sprintf("%.2f", o.Price)
				default:
					return fmt.Sprintf("%.2f", o.Price*float64(o.Quantity))
				}
			},
		},
	}
	for i := 9; i < len(orders); i += 10 {
		s.hidden = append(s.hidden, i)
	}
	return s
}

func (s *sheet) RowOrdering() []int    { return s.rowOrder }
func (s *sheet) ColumnOrdering() []int { return s.columnOrder }
func (s *sheet) RowsToFilter() []int   { return s.hidden }

func (s *sheet) apply(actions []gridview.Action) {
	for _, a := range actions {
		switch a.Kind {
		case gridview.ActionCellClicked:
			cell := a.Cell
			s.selected = &cell
		case gridview.ActionColumnReorder:
			gridview.ApplyReordering(&s.columnOrder, a.From, a.To)
		case gridview.ActionRowReorder:
			gridview.ApplyReordering(&s.rowOrder, a.From, a.To)
		}
	}
}

// RenderCell draws the value and marks the selected cell.
func (s *sheet) RenderCell(surface *gridview.CellSurface, cell gridview.CellIndex, source gridview.DataSource) {
	if s.selected != nil && *s.selected == cell {
		surface.Fill(gridview.RGBA(50, 90, 140, 255))
	}
	gridview.FieldRenderer.RenderCell(surface, cell, source)
}

func statePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gridview-example", "tables.toml")
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gridview renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	defer inputAdapter.Destroy()

	path := statePath()
	store, err := gridview.LoadStateFile(path)
	if err != nil {
		return err
	}

	gridview.SetVerbose(os.Getenv("GRIDVIEW_VERBOSE") != "")

	ui := gridview.New(renderer)
	data := newSheet(makeOrders(rowCount))
	table := gridview.NewTable("orders",
		gridview.WithFlags(gridview.TableFlagsStriped|gridview.TableFlagsHighlightHoveredCell),
		gridview.WithStateStore(store),
		gridview.WithColumnParameters(
			gridview.NewAxisParameters().WithName("ID").WithDefaultDimension(60).WithMonospace(true),
			gridview.NewAxisParameters().WithName("Customer").WithDefaultDimension(100),
			gridview.NewAxisParameters().WithName("Item").WithDefaultDimension(90),
			gridview.NewAxisParameters().WithName("Qty").WithDefaultDimension(40).WithMonospace(true),
			gridview.NewAxisParameters().WithName("Price").WithMonospace(true),
			gridview.NewAxisParameters().WithName("Total").WithMonospace(true).WithMaximumDimension(200),
		),
	)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		renderer.Resize(w, h)
		renderer.SetFramebufferScale(float32(fw)/float32(max(w, 1)), float32(fh)/float32(max(h, 1)))
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gridview.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)

		ctx.SetCursorPos(8, 8)
		_, actions := table.Show(ctx, data, data)
		data.apply(actions)

		if err := ui.End(); err != nil {
			return fmt.Errorf("gridview render: %w", err)
		}
		inputAdapter.EndFrame(ctx)

		window.SwapBuffers()
	}

	return store.SaveStateFile(path)
}
