package xlframe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// NamedFrame pairs a frame with the worksheet it was read from.
type NamedFrame struct {
	SheetName string
	Frame     DataFrame
}

// ReadExcel reads one worksheet of the workbook at path into a decorated frame.
// The first worksheet is read unless opts selects another by name or id.
func ReadExcel(path string, opts ReadOptions) (DataFrame, error) {
	if opts.SheetName != "" && opts.SheetID != 0 {
		return DataFrame{}, ErrConflictingSheetSelector
	}

	f, err := openWorkbook(path)
	if err != nil {
		return DataFrame{}, err
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts)
	if err != nil {
		return DataFrame{}, err
	}
	opts.logger().Debug("Reading worksheet", zap.String("path", path), zap.String("sheet", sheetName))

	return readFrame(f, sheetName, opts)
}

// ReadSheets reads every worksheet of the workbook at path, in workbook order.
// Sheet selectors in opts are ignored.
func ReadSheets(path string, opts ReadOptions) ([]NamedFrame, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frames []NamedFrame
	for _, sheetName := range f.GetSheetList() {
		df, err := readFrame(f, sheetName, opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, NamedFrame{SheetName: sheetName, Frame: df})
	}
	return frames, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if !workbookExts[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func resolveSheet(f *excelize.File, opts ReadOptions) (string, error) {
	sheets := f.GetSheetList()

	switch {
	case opts.SheetName != "":
		if idx, err := f.GetSheetIndex(opts.SheetName); err != nil || idx < 0 {
			return "", NewSheetError(opts.SheetName, "read", ErrSheetNotFound)
		}
		return opts.SheetName, nil
	case opts.SheetID != 0:
		if opts.SheetID < 1 || opts.SheetID > len(sheets) {
			return "", NewSheetError(fmt.Sprintf("#%d", opts.SheetID), "read", ErrSheetNotFound)
		}
		return sheets[opts.SheetID-1], nil
	case len(sheets) == 0:
		return "", ErrSheetNotFound
	default:
		return sheets[0], nil
	}
}

func readFrame(f *excelize.File, sheetName string, opts ReadOptions) (DataFrame, error) {
	sheet, err := parser.ReadSheet(f, sheetName, parser.ReadOptions{
		Headerless:    !opts.ShouldIncludeHeader(),
		DropEmptyRows: opts.DropEmptyRows,
		DropEmptyCols: opts.DropEmptyCols,
	})
	if err != nil {
		return DataFrame{}, NewSheetError(sheetName, "read", err)
	}

	if len(opts.Columns) > 0 {
		if err := project(sheet, opts.Columns); err != nil {
			return DataFrame{}, NewSheetError(sheetName, "read", err)
		}
	}

	if opts.RaiseIfEmpty && sheet.Len() == 0 {
		return DataFrame{}, NewSheetError(sheetName, "read", ErrNoData)
	}

	opts.logger().Debug("Worksheet parsed",
		zap.String("sheet", sheetName),
		zap.Int("rows", sheet.Len()),
		zap.Strings("header", sheet.Header))

	df, err := FromRecords(sheet, SchemaOptions{
		Length:    opts.SchemaLength(),
		Overrides: opts.SchemaOverrides,
	})
	if err != nil {
		return DataFrame{}, NewSheetError(sheetName, "read", err)
	}
	return df, nil
}

// project restricts the sheet to columns, in the given order.
func project(sheet *models.Sheet, columns []string) error {
	present := make(map[string]bool, len(sheet.Header))
	for _, name := range sheet.Header {
		present[name] = true
	}
	for _, name := range columns {
		if !present[name] {
			return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
	}

	keep := make(map[string]bool, len(columns))
	for _, name := range columns {
		keep[name] = true
	}
	for _, rec := range sheet.Records {
		for name := range rec {
			if !keep[name] {
				delete(rec, name)
			}
		}
	}
	sheet.Header = append([]string(nil), columns...)
	return nil
}
