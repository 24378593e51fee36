package writer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultTableStyle is applied when a table is requested without a style.
const DefaultTableStyle = "TableStyleLight1"

// Autofit constants, in character widths.
const (
	DefaultColumnWidth = 10
	BooleanWidth       = 8
	ColumnPadding      = 2
	MaxColumnWidth     = 255
)

// Options controls how a single sheet is rendered.
type Options struct {
	IncludeHeader bool
	Autofit       bool
	Table         bool
	TableStyle    string
	Header        string
	Footer        string
	PrintArea     bool
}

// WriteSheet appends a worksheet holding sheet's records. An empty sheet is
// skipped with a warning and reported as not written.
func (wb *Workbook) WriteSheet(name string, sheet *models.Sheet, opts Options) (bool, error) {
	if sheet.Len() == 0 {
		wb.logger.Warn("Frame is empty, skipping worksheet", zap.String("sheet", name))
		return false, nil
	}

	if err := wb.addSheet(name); err != nil {
		return false, err
	}
	f := wb.file

	rowNum := 1
	if opts.IncludeHeader {
		header := make([]interface{}, len(sheet.Header))
		for i, h := range sheet.Header {
			header[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return false, fmt.Errorf("write header of %q: %w", name, err)
		}
		rowNum++
	}

	for i := range sheet.Records {
		row := sheet.Row(i)
		for c, v := range row {
			row[c] = parser.NormalizeOutput(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return false, err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return false, fmt.Errorf("write row %d of %q: %w", rowNum, name, err)
		}
		rowNum++
	}

	region := models.CellRange{R1: 1, C1: 1, R2: rowNum - 1, C2: len(sheet.Header)}

	if opts.Table {
		if err := addTable(f, name, wb.tableName(name), region, opts); err != nil {
			return false, err
		}
	}

	if opts.Autofit {
		if err := autofitColumns(f, name, sheet, opts.IncludeHeader); err != nil {
			return false, err
		}
	}

	if opts.Header != "" || opts.Footer != "" {
		if err := f.SetHeaderFooter(name, &excelize.HeaderFooterOptions{
			OddHeader:  opts.Header,
			EvenHeader: opts.Header,
			OddFooter:  opts.Footer,
			EvenFooter: opts.Footer,
		}); err != nil {
			return false, fmt.Errorf("set header/footer of %q: %w", name, err)
		}
	}

	if opts.PrintArea {
		ref, err := parser.AreaReference(name, region)
		if err != nil {
			return false, err
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     parser.PrintAreaName,
			RefersTo: ref,
			Scope:    name,
		}); err != nil {
			return false, fmt.Errorf("set print area of %q: %w", name, err)
		}
	}

	wb.logger.Debug("Worksheet written",
		zap.String("sheet", name),
		zap.Int("rows", sheet.Len()),
		zap.Int("cols", len(sheet.Header)))
	return true, nil
}

// TableName derives a table name from a sheet name by replacing every rune
// other than letters, digits, '_' and '.' with '_'. Distinct sheet names can
// map to the same table name; the workbook adds a suffix on a clash.
func TableName(sheetName string) string {
	var b strings.Builder
	b.WriteString("Table_")
	for _, r := range sheetName {
		if r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// addTable registers a styled table over the header and data rows. Tables
// need a header row, so nothing is added when the header is omitted.
func addTable(f *excelize.File, sheetName, tableName string, region models.CellRange, opts Options) error {
	if !opts.IncludeHeader {
		return nil
	}

	ref, err := parser.RangeRef(region)
	if err != nil {
		return err
	}

	style := opts.TableStyle
	stripes := true
	if style == "" {
		style = DefaultTableStyle
		stripes = false
	}

	if err := f.AddTable(sheetName, &excelize.Table{
		Range:          ref,
		Name:           tableName,
		StyleName:      style,
		ShowRowStripes: &stripes,
	}); err != nil {
		return fmt.Errorf("add table to %q: %w", sheetName, err)
	}
	return nil
}

// autofitColumns sizes each column to its longest rendered value plus padding.
func autofitColumns(f *excelize.File, sheetName string, sheet *models.Sheet, includeHeader bool) error {
	for c, name := range sheet.Header {
		width := 0
		if includeHeader {
			width = utf8.RuneCountInString(name)
		}
		for _, v := range sheet.Column(name) {
			if w := valueWidth(parser.NormalizeOutput(v)); w > width {
				width = w
			}
		}

		colWidth := float64(DefaultColumnWidth)
		if width > 0 {
			colWidth = float64(min(width+ColumnPadding, MaxColumnWidth))
		}

		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, colWidth); err != nil {
			return fmt.Errorf("set width of column %s in %q: %w", col, sheetName, err)
		}
	}
	return nil
}

func valueWidth(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case bool:
		return BooleanWidth
	case string:
		return utf8.RuneCountInString(val)
	case float64:
		return len(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return utf8.RuneCountInString(fmt.Sprint(val))
	}
}
