package parser

import (
	"strings"

	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the built-in defined name holding a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parseAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// AreaReference formats a sheet-qualified absolute reference, e.g. 'My Sheet'!$A$1:$D$10.
func AreaReference(sheetName string, r models.CellRange) (string, error) {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2, true)
	if err != nil {
		return "", err
	}
	return quoteSheetName(sheetName) + "!" + start + ":" + end, nil
}

// parseAreaReference parses 'SheetName'!$A$1:$D$10 (comma separated for several areas).
func parseAreaReference(ref string) (string, []models.CellRange) {
	var areas []models.CellRange
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (models.CellRange, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.CellRange{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, false
	}

	return models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}

func quoteSheetName(name string) string {
	for _, r := range name {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}
