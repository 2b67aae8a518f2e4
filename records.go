package gridview

import "fmt"

// Records adapts a slice of rows to a DataSource. Field extracts column
// col of a row; Columns is the fixed number of columns every row has.
type Records[T any] struct {
	Rows    []T
	Columns int
	Field   func(row T, col int) any
}

// Dimensions implements DataSource.
func (r *Records[T]) Dimensions() TableDimensions {
	return TableDimensions{RowCount: len(r.Rows), ColumnCount: r.Columns}
}

// Value returns the field at (row, col). ok is false when row is out of
// range. Asking for a column outside the row's arity is a programming error
// and panics.
func (r *Records[T]) Value(row, col int) (any, bool) {
	if col < 0 || col >= r.Columns {
		panic(fmt.Sprintf("gridview: column %d out of range for %d-column records", col, r.Columns))
	}
	if row < 0 || row >= len(r.Rows) {
		return nil, false
	}
	return r.Field(r.Rows[row], col), true
}

// FieldSource is a DataSource that can produce a value for a cell.
type FieldSource interface {
	DataSource
	Value(row, col int) (any, bool)
}

// FieldRenderer draws the value of a FieldSource cell with fmt.Sprint.
// Sources that are not FieldSources render nothing.
var FieldRenderer CellRenderer = CellRendererFunc(func(s *CellSurface, cell CellIndex, source DataSource) {
	fs, ok := source.(FieldSource)
	if !ok {
		return
	}
	if v, ok := fs.Value(cell.Row, cell.Column); ok && v != nil {
		s.TextTruncated(fmt.Sprint(v))
	}
})
