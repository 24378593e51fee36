package models

// WorkbookInfo describes the layout of a workbook without materializing its frames.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the worksheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}

// SheetInfo summarizes a single worksheet.
type SheetInfo struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows is the number of rows holding at least one cell.
	Rows int `json:"rows"`
	// Cols is the width of the widest row.
	Cols int `json:"cols"`
	// Header is the inferred header (row 1).
	Header []string `json:"header,omitempty"`
	// DataRange is the populated region in A1 notation, when dense enough to be a table.
	DataRange string `json:"data_range,omitempty"`
	// Tables lists table objects registered on the sheet.
	Tables []TableInfo `json:"tables,omitempty"`
	// PrintAreas lists user-defined print areas.
	PrintAreas []CellRange `json:"print_areas,omitempty"`
}

// TableInfo describes a styled table region.
type TableInfo struct {
	// Name is the workbook-unique table name.
	Name string `json:"name"`
	// Range is the table region in A1 notation.
	Range string `json:"range"`
	// Style is the table style name.
	Style string `json:"style,omitempty"`
}
