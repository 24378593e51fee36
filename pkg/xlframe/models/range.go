package models

// CellRange represents 1-based, inclusive cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the cell (row, col) lies inside the range.
func (r CellRange) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// Cells returns the number of cells covered by the range.
func (r CellRange) Cells() int {
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}
