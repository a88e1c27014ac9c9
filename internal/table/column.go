package table

// columnKind discriminates the ColumnSpec variants.
type columnKind int

const (
	fixedCol columnKind = iota
	percentCol
	wildcardCol
)

// ColumnSpec describes how one table column is sized. Construct values with
// Fixed, Percent, or Wildcard.
type ColumnSpec struct {
	kind   columnKind
	amount int
}

// Fixed returns a column with an exact width in terminal columns.
func Fixed(width int) ColumnSpec {
	return ColumnSpec{kind: fixedCol, amount: width}
}

// Percent returns a column sized to p percent of the budget left after the
// fixed columns are taken out.
func Percent(p int) ColumnSpec {
	return ColumnSpec{kind: percentCol, amount: p}
}

// Wildcard returns a column that splits whatever the fixed and percentage
// columns leave over.
func Wildcard() ColumnSpec {
	return ColumnSpec{kind: wildcardCol}
}
