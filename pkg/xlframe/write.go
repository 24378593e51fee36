package xlframe

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/writer"
	"go.uber.org/zap"
)

// WriteExcel writes each frame to its own worksheet of a new workbook at path.
//
// Frames are matched to opts.SheetNames positionally. Every check that can
// fail (sheet names, frame errors, emptiness) runs before any I/O. When every
// frame is empty the call fails; otherwise empty frames are skipped with a
// warning. The file is created only after the whole workbook has been built.
func WriteExcel(path string, opts WriteOptions, frames ...Frame) error {
	logger := opts.logger()

	if len(frames) == 0 {
		return ErrFrameEmpty
	}
	if !workbookExts[strings.ToLower(filepath.Ext(path))] {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}

	names, err := sheetNames(opts.SheetNames, len(frames))
	if err != nil {
		return err
	}

	allEmpty := true
	for i, frame := range frames {
		if err := frame.Error(); err != nil {
			return NewSheetError(names[i], "write", err)
		}
		if frame.Nrow() > 0 {
			allEmpty = false
		}
	}
	if allEmpty {
		if len(frames) == 1 {
			return ErrFrameEmpty
		}
		return ErrAllFramesEmpty
	}

	wb := writer.NewWorkbook(logger)
	defer wb.Close()

	sheetOpts := opts.sheetOptions()
	for i, frame := range frames {
		if _, err := wb.WriteSheet(names[i], toSheet(names[i], frame), sheetOpts); err != nil {
			return NewSheetError(names[i], "write", err)
		}
	}

	if opts.WithWorkbook != nil {
		if err := opts.WithWorkbook(wb.File()); err != nil {
			return fmt.Errorf("customize workbook: %w", err)
		}
	}

	if err := wb.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logger.Info("Workbook written", zap.String("path", path), zap.Strings("sheets", wb.Sheets()))
	return nil
}

// sheetNames resolves the target sheet of each frame.
func sheetNames(given []string, count int) ([]string, error) {
	if given != nil && len(given) < count {
		return nil, fmt.Errorf("%w: %d names for %d frames", ErrInsufficientSheetNames, len(given), count)
	}

	names := make([]string, count)
	seen := make(map[string]bool, count)
	for i := range names {
		name := ""
		if given != nil {
			name = strings.TrimSpace(given[i])
		}
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheetName, name)
		}
		seen[key] = true
		names[i] = name
	}
	return names, nil
}

// toSheet exports a frame's rows as records in column order.
func toSheet(name string, frame Frame) *models.Sheet {
	maps := frame.Maps()
	records := make([]models.RowRecord, len(maps))
	for i, m := range maps {
		records[i] = models.RowRecord(m)
	}
	return &models.Sheet{
		Name:    name,
		Header:  frame.Names(),
		Records: records,
	}
}
