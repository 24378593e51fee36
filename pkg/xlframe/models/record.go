// Package models defines data structures exchanged between workbooks and frames.
package models

// RowRecord maps a column name to a scalar cell value.
// Values are nil, string, int64, int, float64 or bool.
type RowRecord map[string]any

// Sheet is the row-record form of a single worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Header is the ordered list of column names.
	Header []string `json:"header"`
	// Records holds one record per data row. Every record has every header key.
	Records []RowRecord `json:"records"`
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Row returns the values of record i in header order.
func (s *Sheet) Row(i int) []any {
	row := make([]any, len(s.Header))
	for c, name := range s.Header {
		row[c] = s.Records[i][name]
	}
	return row
}

// Column returns the values of the named column in row order.
func (s *Sheet) Column(name string) []any {
	col := make([]any, len(s.Records))
	for i, rec := range s.Records {
		col[i] = rec[name]
	}
	return col
}
