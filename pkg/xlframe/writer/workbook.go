// Package writer renders row records into excelize worksheets.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Workbook is an in-memory workbook that sheets are appended to in order.
// Nothing touches the file system until Save.
type Workbook struct {
	file   *excelize.File
	sheets []string
	tables map[string]bool
	logger *zap.Logger
}

// NewWorkbook creates an empty workbook. A nil logger disables logging.
func NewWorkbook(logger *zap.Logger) *Workbook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workbook{
		file:   excelize.NewFile(),
		tables: make(map[string]bool),
		logger: logger,
	}
}

// File exposes the underlying excelize workbook for customization.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}

// Sheets returns the names of the sheets written so far, in order.
func (wb *Workbook) Sheets() []string {
	return append([]string(nil), wb.sheets...)
}

// addSheet creates the named sheet. The first sheet takes over the default
// sheet that excelize.NewFile creates so no stray "Sheet1" is left behind.
func (wb *Workbook) addSheet(name string) error {
	if len(wb.sheets) == 0 {
		if err := wb.file.SetSheetName(wb.file.GetSheetName(0), name); err != nil {
			return fmt.Errorf("rename default sheet to %q: %w", name, err)
		}
	} else if _, err := wb.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	wb.sheets = append(wb.sheets, name)
	return nil
}

// tableName reserves a table name for sheetName. Table names are compared
// case-insensitively across the workbook, so a name that is already taken
// gets a numeric suffix.
func (wb *Workbook) tableName(sheetName string) string {
	base := TableName(sheetName)
	name := base
	for n := 2; wb.tables[strings.ToLower(name)]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	wb.tables[strings.ToLower(name)] = true
	return name
}

// Save serializes the workbook to path. The workbook is written to a
// temporary file beside the target and renamed into place, so path is only
// created once serialization has fully succeeded.
func (wb *Workbook) Save(path string) error {
	if len(wb.sheets) > 0 {
		wb.file.SetActiveSheet(0)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".xlframe-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := wb.file.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("serialize workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	wb.logger.Debug("Workbook saved", zap.String("path", path), zap.Strings("sheets", wb.sheets))
	return nil
}

// Close releases resources held by the workbook.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}
