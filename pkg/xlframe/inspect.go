package xlframe

import (
	"path/filepath"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect describes every worksheet of the workbook at path: dimensions,
// inferred header, detected data range, tables and print areas.
func Inspect(path string) (*models.WorkbookInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := parser.ExtractPrintAreas(f)
	info := &models.WorkbookInfo{BookName: filepath.Base(path)}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, NewSheetError(sheetName, "inspect", err)
		}

		sheet, err := parser.ReadSheet(f, sheetName, parser.ReadOptions{})
		if err != nil {
			return nil, NewSheetError(sheetName, "inspect", err)
		}

		tables, err := parser.ExtractTables(f, sheetName)
		if err != nil {
			return nil, NewSheetError(sheetName, "inspect", err)
		}

		nonEmpty := 0
		for _, row := range rows {
			if len(row) > 0 {
				nonEmpty++
			}
		}

		info.Sheets = append(info.Sheets, models.SheetInfo{
			Name:       sheetName,
			Rows:       nonEmpty,
			Cols:       widest(rows),
			Header:     sheet.Header,
			DataRange:  parser.DetectDataRange(rows, parser.DefaultDetectionParams()),
			Tables:     tables,
			PrintAreas: printAreas[sheetName],
		})
	}

	return info, nil
}

func widest(rows [][]string) int {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	return width
}
