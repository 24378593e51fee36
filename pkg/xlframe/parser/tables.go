package parser

import (
	"fmt"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

// DetectionParams holds thresholds for recognizing a populated region as tabular.
type DetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultDetectionParams returns default detection thresholds.
func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DataBounds returns the bounding box of non-empty cells, or false when
// every cell is empty.
func DataBounds(rows [][]string) (models.CellRange, bool) {
	bounds := models.CellRange{}
	found := false

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			r, c := rowIdx+1, colIdx+1
			if !found {
				bounds = models.CellRange{R1: r, C1: c, R2: r, C2: c}
				found = true
				continue
			}
			bounds.R1 = min(bounds.R1, r)
			bounds.R2 = max(bounds.R2, r)
			bounds.C1 = min(bounds.C1, c)
			bounds.C2 = max(bounds.C2, c)
		}
	}
	return bounds, found
}

// DetectDataRange returns the populated region in A1 notation when it is
// dense enough to be read as a table, or "" otherwise.
func DetectDataRange(rows [][]string, params DetectionParams) string {
	bounds, ok := DataBounds(rows)
	if !ok {
		return ""
	}

	nonEmpty := countNonEmptyCells(rows, bounds)
	if nonEmpty < params.MinNonemptyCells {
		return ""
	}
	if float64(nonEmpty)/float64(bounds.Cells()) < params.DensityMin {
		return ""
	}

	ref, err := RangeRef(bounds)
	if err != nil {
		return ""
	}
	return ref
}

// RangeRef converts a CellRange to A1 notation, e.g. "A1:D10".
func RangeRef(r models.CellRange) (string, error) {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// ExtractTables lists the table objects registered on a sheet.
func ExtractTables(f *excelize.File, sheetName string) ([]models.TableInfo, error) {
	tables, err := f.GetTables(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.TableInfo, 0, len(tables))
	for _, t := range tables {
		result = append(result, models.TableInfo{
			Name:  t.Name,
			Range: t.Range,
			Style: t.StyleName,
		})
	}
	return result, nil
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, bounds models.CellRange) int {
	count := 0
	for rowIdx := bounds.R1 - 1; rowIdx < bounds.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := bounds.C1 - 1; colIdx < bounds.C2 && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
