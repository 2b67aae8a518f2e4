/*
Package gridview provides a virtualized, immediate-mode table for the
gridview immediate-mode drawing layer.

# Overview

A Table lays out only the rows and columns that intersect the viewport, so
a grid of millions of cells costs the same per frame as a grid of fifty.
The table never owns the data: each frame it asks a DataSource for its
dimensions, and hands every visible cell to a CellRenderer together with a
CellSurface to draw on. Column headers stay pinned to the top edge and row
headers to the left edge while the body scrolls.

What the user does is reported back as Actions: cell clicks and header
drags that ask for a column or row to move. The table does not apply them;
the host owns ordering and filtering and exposes them through optional
capability interfaces on its data source.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gridview.New(renderer)
	table := gridview.NewTable("people",
	    gridview.WithFlags(gridview.TableFlagsStriped|gridview.TableFlagsHighlightHoveredCell),
	    gridview.WithColumnParameters(
	        gridview.NewAxisParameters().WithName("Name"),
	        gridview.NewAxisParameters().WithName("Age").WithMonospace(true),
	    ),
	)
	source := &gridview.Records[Person]{
	    Rows:    people,
	    Columns: 2,
	    Field: func(p Person, col int) any {
	        if col == 0 {
	            return p.Name
	        }
	        return p.Age
	    },
	}

	// Frame loop
	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gridview.Vec2{1280, 720}, deltaTime)

	    _, actions := table.Show(ctx, source, gridview.FieldRenderer)
	    for _, a := range actions {
	        switch a.Kind {
	        case gridview.ActionColumnReorder:
	            gridview.ApplyReordering(&columnOrder, a.From, a.To)
	        case gridview.ActionCellClicked:
	            selected = a.Cell
	        }
	    }

	    ui.End()
	    window.SwapBuffers()
	}

# Indices

Three index spaces appear throughout the package.

A data index identifies a row or column in the data source. Sizes,
parameters, filters and reported cells all use data indices.

A visible position is a slot in display order. Ordering maps positions to
data indices: position i shows data index ordering[i], and positions past
the end of the ordering show themselves. Filtered data indices keep their
position but take no space.

A grid position counts from the header band: grid row 0 is the column
header row, grid column 0 is the row header column. Grid row g shows the
visible row CellOrigin.Row+g-1.

# Data Sources

The only required method is Dimensions. The rest are optional and detected
with type assertions:

	Preparer        Prepare() before the frame, even for empty tables
	Finalizer       Finalize() after the frame, even for empty tables
	RowFilterer     RowsToFilter() []int
	ColumnFilterer  ColumnsToFilter() []int
	RowOrderer      RowOrdering() []int
	ColumnOrderer   ColumnOrdering() []int

Orderings and filters may be stale. Entries naming data indices that no
longer exist are ignored.

# Sizing

Column widths and row heights are inner sizes, excluding Style.ItemSpacing,
indexed by data index. They are created when the data source first grows
to cover them, seeded from AxisParameters.DefaultDimension or the default
cell size, and are never shrunk, so a column keeps its width while it is
filtered out or moved.

Dragging the handle on the far edge of a header resizes it. The new size is
clamped to the parameter range and never goes below what keeps the handle
grabbable. A committed resize sets Response.RepaintRequested.

# Persistence

With WithStateStore the table reads its sizes from the store on the first
Show and writes them back whenever they change. MapStateStore serializes to
TOML:

	store, err := gridview.LoadStateFile(path)
	...
	table := gridview.NewTable("people", gridview.WithStateStore(store))
	...
	err = store.SaveStateFile(path)

# Keyboard Shortcuts Reference

While the pointer is over a table:

	Mouse Wheel      Scroll vertically
	Shift+Wheel      Scroll horizontally
	Page Up/Down     Scroll by 80% of the visible height
	Home/End         Jump to the first/last row
	Arrow keys       Scroll by one wheel step

# Logging

The package logs through log/slog with a charmbracelet/log handler on
stderr. Info and above are shown by default; SetVerbose(true) adds debug
records for drags, drops and persistence. SetLogger replaces the logger.

# Debug Builds

Building with the gridview_debug tag turns sanitization warnings, such as
a negative configured dimension, into panics.
*/
package gridview
