package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")

// ReadOptions controls how a worksheet is turned into records.
type ReadOptions struct {
	// Headerless treats row 1 as data and names columns Column1..N.
	Headerless bool
	// DropEmptyRows removes records whose values are all nil.
	DropEmptyRows bool
	// DropEmptyCols removes columns whose values are all nil.
	DropEmptyCols bool
}

// ReadSheet reads a worksheet into a header and one record per data row.
// Row 1 is the header; every record carries every header key, with nil for
// cells that are blank or missing. Header text is kept as written, except
// that a name repeated later in the row gets the suffix "_<column number>",
// so a second "Name" in column 2 becomes "Name_2".
func ReadSheet(f *excelize.File, sheetName string, opts ReadOptions) (*models.Sheet, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{Name: sheetName}
	if len(rows) == 0 {
		return sheet, nil
	}

	start := 1
	if opts.Headerless {
		start = 0
		sheet.Header = placeholderHeader(widestRow(rows))
	} else {
		sheet.Header = readHeader(f, sheetName, rows[0])
	}

	for rowIdx := start; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 {
			continue
		}
		rowNum := rowIdx + 1 // 1-based row index

		rec := make(models.RowRecord, len(sheet.Header))
		for colIdx, name := range sheet.Header {
			var raw any
			if colIdx < len(row) && row[colIdx] != "" {
				raw = cellValue(f, sheetName, row[colIdx], colIdx+1, rowNum)
			}
			rec[name] = NormalizeIngest(raw)
		}
		sheet.Records = append(sheet.Records, rec)
	}

	if opts.DropEmptyRows {
		dropEmptyRows(sheet)
	}
	if opts.DropEmptyCols {
		dropEmptyCols(sheet)
	}
	return sheet, nil
}

// readHeader names each column from row 1, substituting Column<N> for blank cells.
func readHeader(f *excelize.File, sheetName string, row []string) []string {
	header := make([]string, len(row))
	seen := make(map[string]bool, len(row))
	for colIdx, raw := range row {
		name := ""
		if raw != "" {
			if v := NormalizeIngest(cellValue(f, sheetName, raw, colIdx+1, 1)); v != nil {
				name = cellText(v)
			}
		}
		if name == "" {
			name = placeholder(colIdx + 1)
		}
		for seen[name] {
			name = name + "_" + strconv.Itoa(colIdx+1)
		}
		seen[name] = true
		header[colIdx] = name
	}
	return header
}

// cellValue resolves the scalar of a single cell from its raw text and type.
func cellValue(f *excelize.File, sheetName, raw string, col, row int) any {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		typ = excelize.CellTypeUnset
	}
	return TypedValue(raw, typ)
}

func placeholder(col int) string {
	return "Column" + strconv.Itoa(col)
}

func placeholderHeader(width int) []string {
	header := make([]string, width)
	for i := range header {
		header[i] = placeholder(i + 1)
	}
	return header
}

func widestRow(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func dropEmptyRows(sheet *models.Sheet) {
	kept := sheet.Records[:0]
	for _, rec := range sheet.Records {
		for _, v := range rec {
			if v != nil {
				kept = append(kept, rec)
				break
			}
		}
	}
	sheet.Records = kept
}

func dropEmptyCols(sheet *models.Sheet) {
	if len(sheet.Records) == 0 {
		return
	}
	var header []string
	for _, name := range sheet.Header {
		empty := true
		for _, rec := range sheet.Records {
			if rec[name] != nil {
				empty = false
				break
			}
		}
		if !empty {
			header = append(header, name)
			continue
		}
		for _, rec := range sheet.Records {
			delete(rec, name)
		}
	}
	sheet.Header = header
}
