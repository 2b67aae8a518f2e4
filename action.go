package gridview

import "fmt"

// ActionKind identifies what the user did.
type ActionKind int

const (
	// ActionCellClicked: the primary button was released over a value cell.
	// Cell holds the data row and column.
	ActionCellClicked ActionKind = iota
	// ActionColumnReorder: a column header was dropped onto another.
	// From and To are data column indices.
	ActionColumnReorder
	// ActionRowReorder: a row header was dropped onto another.
	// From and To are data row indices.
	ActionRowReorder
)

func (k ActionKind) String() string {
	switch k {
	case ActionCellClicked:
		return "cell-clicked"
	case ActionColumnReorder:
		return "column-reorder"
	case ActionRowReorder:
		return "row-reorder"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is an interaction reported by Table.Show, in the order it happened.
//
// The table never reorders anything itself. A host handles a reorder by
// applying it to the ordering its source reports (see ApplyReordering), by
// moving the underlying data, or by ignoring it.
type Action struct {
	Kind ActionKind
	Cell CellIndex // ActionCellClicked
	From int       // Reorders
	To   int       // Reorders
}

// CellClicked builds an ActionCellClicked.
func CellClicked(row, column int) Action {
	return Action{Kind: ActionCellClicked, Cell: CellIndex{Row: row, Column: column}}
}

// ColumnReorder builds an ActionColumnReorder.
func ColumnReorder(from, to int) Action {
	return Action{Kind: ActionColumnReorder, From: from, To: to}
}

// RowReorder builds an ActionRowReorder.
func RowReorder(from, to int) Action {
	return Action{Kind: ActionRowReorder, From: from, To: to}
}

func (a Action) String() string {
	if a.Kind == ActionCellClicked {
		return fmt.Sprintf("%s(row=%d, column=%d)", a.Kind, a.Cell.Row, a.Cell.Column)
	}
	return fmt.Sprintf("%s(from=%d, to=%d)", a.Kind, a.From, a.To)
}
