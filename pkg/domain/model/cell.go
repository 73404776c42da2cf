package model

// CellKind is the value type of a spreadsheet cell
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellString:
		return "string"
	case CellNumber:
		return "number"
	case CellBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Cell is a typed spreadsheet value. Text holds the raw value for every
// non-empty kind, Number is set only for CellNumber.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// StringCell returns a textual cell
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Text: s}
}

// NumberCell returns a numeric cell
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}
