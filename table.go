package latex

import (
	"fmt"
	"io"
	"strings"
)

// Row is a table row, any component can be used as a cell.
type Row struct {
	content
}

func NewRow(cells ...Component) *Row {
	return &Row{content: content{children: cells}}
}

// TextRow creates a row of normal text cells.
func TextRow(cells ...string) *Row {
	row := NewRow()
	for _, cell := range cells {
		row.Add(NewText(cell, Normal))
	}

	return row
}

func (r *Row) Kind() Kind { return RowKind }

func (r *Row) render(w io.Writer) error {
	var cells []string
	for _, child := range r.children {
		cell, err := renderToString(child)
		if err != nil {
			return err
		}

		cells = append(cells, cell)
	}

	_, err := fmt.Fprint(w, strings.Join(cells, " & "), " \\\\ \n")
	return err
}

// Table is a tabular environment with a header row. Rows are rendered as given, the number of cells is
// not checked against the number of columns, use Validate for that.
type Table struct {
	content
	Columns []ColumnSpec
	Head    *Row
}

// NewTable creates a table with n centered bordered columns.
func NewTable(n int, head *Row, rows ...Component) *Table {
	return &Table{Columns: BorderedColumns(n), Head: head, content: content{children: rows}}
}

// NewTableSpec creates a table with columns defined by tabular column spec, for example "|l|r|".
func NewTableSpec(spec string, head *Row, rows ...Component) *Table {
	return &Table{Columns: ColumnSpecs(spec), Head: head, content: content{children: rows}}
}

func (t *Table) Kind() Kind { return TableKind }

// Validate checks every row has as many cells as there are columns.
func (t *Table) Validate() error {
	if t.Head != nil && len(t.Head.children) != len(t.Columns) {
		return &ColumnError{Row: -1, Cells: len(t.Head.children), Columns: len(t.Columns)}
	}

	for index, child := range t.children {
		row, ok := child.(*Row)
		if !ok {
			continue
		}

		if len(row.children) != len(t.Columns) {
			return &ColumnError{Row: index, Cells: len(row.children), Columns: len(t.Columns)}
		}
	}

	return nil
}

func (t *Table) render(w io.Writer) error {
	if _, err := fmt.Fprint(w, "\\begin{tabular}{", FormatColumnSpecs(t.Columns), "} \n \\hline \n "); err != nil {
		return err
	}

	if t.Head != nil {
		if err := t.Head.render(w); err != nil {
			return err
		}
	}

	return renderChildrenAndWrap(w, t.children, " \n \\hline \n ", " \\hline \\end{tabular} ")
}
