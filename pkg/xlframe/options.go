// Package xlframe reads worksheets into data frames and writes data frames to
// XLSX workbooks.
package xlframe

import (
	"github.com/go-gota/gota/series"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/writer"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultInferSchemaLength is the number of records sampled for type inference.
const DefaultInferSchemaLength = 100

// ReadOptions configures ReadExcel.
type ReadOptions struct {
	// SheetName selects the worksheet by name.
	SheetName string
	// SheetID selects the worksheet by 1-based position. Zero means unset.
	SheetID int
	// InferSchemaLength is the number of records sampled to infer column types.
	// If nil, defaults to DefaultInferSchemaLength. Zero samples every record.
	InferSchemaLength *int
	// HasHeader specifies whether row 1 holds column names.
	// If nil, defaults to true.
	HasHeader *bool
	// Columns projects the result onto the named columns, in that order.
	Columns []string
	// SchemaOverrides fixes the type of the named columns instead of inferring it.
	SchemaOverrides map[string]series.Type
	// DropEmptyRows removes rows whose cells are all blank.
	DropEmptyRows bool
	// DropEmptyCols removes columns whose cells are all blank.
	DropEmptyCols bool
	// RaiseIfEmpty fails with ErrNoData when the sheet has no data rows.
	RaiseIfEmpty bool
	// Logger receives diagnostics. If nil, zap.L() is used.
	Logger *zap.Logger
}

// ShouldIncludeHeader returns whether row 1 is treated as the header.
func (o ReadOptions) ShouldIncludeHeader() bool {
	if o.HasHeader != nil {
		return *o.HasHeader
	}
	return true
}

// SchemaLength returns the inference sample size.
func (o ReadOptions) SchemaLength() int {
	if o.InferSchemaLength != nil {
		return *o.InferSchemaLength
	}
	return DefaultInferSchemaLength
}

func (o ReadOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.L()
}

// WriteOptions configures WriteExcel.
type WriteOptions struct {
	// SheetNames names the target sheets positionally. If nil, sheets are named
	// Sheet1..SheetN. Blank entries fall back to Sheet<N>.
	SheetNames []string
	// IncludeHeader specifies whether to write the column names as row 1.
	// If nil, defaults to true.
	IncludeHeader *bool
	// AutofitColumns specifies whether to size columns to their content.
	// If nil, defaults to true.
	AutofitColumns *bool
	// Table specifies whether to register a styled table over each sheet.
	// If nil, defaults to true.
	Table *bool
	// TableStyle is the table style name, e.g. "TableStyleMedium4".
	// Empty uses writer.DefaultTableStyle.
	TableStyle string
	// Header is the page header text applied to odd and even pages.
	Header string
	// Footer is the page footer text applied to odd and even pages.
	Footer string
	// PrintArea defines each written region as the sheet's print area.
	PrintArea bool
	// WithWorkbook is called after all sheets are populated and before the
	// workbook is saved. An error aborts the write.
	WithWorkbook func(f *excelize.File) error
	// Logger receives diagnostics. If nil, zap.L() is used.
	Logger *zap.Logger
}

// ShouldIncludeHeader returns whether the header row is written.
func (o WriteOptions) ShouldIncludeHeader() bool {
	if o.IncludeHeader != nil {
		return *o.IncludeHeader
	}
	return true
}

// ShouldAutofitColumns returns whether column widths are fitted.
func (o WriteOptions) ShouldAutofitColumns() bool {
	if o.AutofitColumns != nil {
		return *o.AutofitColumns
	}
	return true
}

// ShouldAddTable returns whether a styled table is registered.
func (o WriteOptions) ShouldAddTable() bool {
	if o.Table != nil {
		return *o.Table
	}
	return true
}

func (o WriteOptions) sheetOptions() writer.Options {
	return writer.Options{
		IncludeHeader: o.ShouldIncludeHeader(),
		Autofit:       o.ShouldAutofitColumns(),
		Table:         o.ShouldAddTable(),
		TableStyle:    o.TableStyle,
		Header:        o.Header,
		Footer:        o.Footer,
		PrintArea:     o.PrintArea,
	}
}

func (o WriteOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.L()
}

// Bool returns a pointer to b, for the tri-state option fields.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for the tri-state option fields.
func Int(n int) *int {
	return &n
}
