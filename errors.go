package latex

import (
	"errors"
	"fmt"
)

var (
	ErrArgumentCount    = errors.New("incorrect number of arguments")
	ErrVariantUndefined = errors.New("literal does not correspond to a variant")
	ErrLabelUndefined   = errors.New("label is not defined")
	ErrUndefined        = errors.New("object is not defined")
	ErrNoGraphicsPath   = errors.New("graphics path is not set, enable graphics first")
)

// RankError is returned when a component is attached to a parent which is structurally below it,
// for example a section attached to a paragraph.
type RankError struct {
	Child  int // rank of the component being attached
	Parent int // rank of the receiving component
}

func (e *RankError) Error() string {
	return fmt.Sprintf("rank mismatch: %d < %d", e.Child, e.Parent)
}

// CapabilityError is returned when a component is attached to a leaf which can not hold children.
type CapabilityError struct {
	Kind Kind
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s can not contain other components", e.Kind)
}

// ColumnError describes a table row which does not match the declared number of columns.
type ColumnError struct {
	Row     int // index of the row, -1 for the header
	Cells   int
	Columns int
}

func (e *ColumnError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("table header has %d cells, expected %d", e.Cells, e.Columns)
	}

	return fmt.Sprintf("table row %d has %d cells, expected %d", e.Row, e.Cells, e.Columns)
}
