package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

func TestParseAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.CellRange
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.CellRange{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []models.CellRange{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"'O''Brien'!$A$1:$A$2", "O'Brien", []models.CellRange{{R1: 1, C1: 1, R2: 2, C2: 1}}},
		{"Data!$A$1:$B$2,Data!$D$1:$E$2", "Data", []models.CellRange{
			{R1: 1, C1: 1, R2: 2, C2: 2},
			{R1: 1, C1: 4, R2: 2, C2: 5},
		}},
		{"$A$1:$B$2", "", nil},
	}

	for _, tt := range tests {
		sheet, areas := parseAreaReference(tt.ref)
		assert.Equal(t, tt.wantSheet, sheet, tt.ref)
		assert.Equal(t, tt.wantAreas, areas, tt.ref)
	}
}

func TestAreaReference(t *testing.T) {
	area := models.CellRange{R1: 1, C1: 1, R2: 3, C2: 2}

	ref, err := AreaReference("Sheet1", area)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!$A$1:$B$3", ref)

	ref, err = AreaReference("Q1 Report", area)
	require.NoError(t, err)
	assert.Equal(t, "'Q1 Report'!$A$1:$B$3", ref)

	sheet, areas := parseAreaReference(ref)
	assert.Equal(t, "Q1 Report", sheet)
	assert.Equal(t, []models.CellRange{area}, areas)
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     PrintAreaName,
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	}))

	areas := ExtractPrintAreas(f)
	assert.Equal(t, []models.CellRange{{R1: 1, C1: 1, R2: 5, C2: 3}}, areas["Sheet1"])
}
