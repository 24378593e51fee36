package xlframe

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func sampleFrame() DataFrame {
	return New(
		series.New([]string{"Alice", "Bob", "Carol"}, series.String, "Name"),
		series.New([]int{30, 25, 41}, series.Int, "Age"),
		series.New([]float64{55.5, 72.25, 60.75}, series.Float, "Score"),
		series.New([]bool{true, false, true}, series.Bool, "Member"),
	)
}

func quietWrite() WriteOptions {
	return WriteOptions{Logger: zap.NewNop()}
}

func quietRead() ReadOptions {
	return ReadOptions{Logger: zap.NewNop()}
}

// writeRows creates a workbook whose sheets hold the given rows, starting at A1.
func writeRows(t *testing.T, sheets map[string][][]interface{}, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadExcel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.xlsx")
	df := sampleFrame()
	require.NoError(t, df.WriteExcel(path, quietWrite()))

	got, err := ReadExcel(path, quietRead())
	require.NoError(t, err)

	assert.Equal(t, df.Names(), got.Names())
	assert.Equal(t, df.Types(), got.Types())
	assert.Equal(t, df.Maps(), got.Maps())
}

func TestReadExcel_SheetSelection(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{
		"First":  {{"A"}, {1}},
		"Second": {{"B"}, {"two"}},
	}, "First", "Second")

	byName, err := ReadExcel(path, ReadOptions{SheetName: "Second", Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, byName.Names())

	byID, err := ReadExcel(path, ReadOptions{SheetID: 2, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, byName.Maps(), byID.Maps())

	first, err := ReadExcel(path, quietRead())
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, first.Names())
}

func TestReadExcel_Errors(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{"Data": {{"A"}, {1}}}, "Data")

	tests := []struct {
		name string
		path string
		opts ReadOptions
		want error
	}{
		{"missing sheet name", path, ReadOptions{SheetName: "Missing"}, ErrSheetNotFound},
		{"sheet id out of range", path, ReadOptions{SheetID: 5}, ErrSheetNotFound},
		{"conflicting selectors", path, ReadOptions{SheetName: "Data", SheetID: 1}, ErrConflictingSheetSelector},
		{"missing file", filepath.Join(t.TempDir(), "nope.xlsx"), ReadOptions{}, ErrFileNotFound},
		{"not a workbook", "data.csv", ReadOptions{}, ErrInvalidFormat},
		{"unknown column", path, ReadOptions{Columns: []string{"Z"}}, ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = zap.NewNop()
			_, err := ReadExcel(tt.path, tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadExcel_SheetErrorNamesSheet(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{"Data": {{"A"}, {1}}}, "Data")

	_, err := ReadExcel(path, ReadOptions{SheetName: "Missing", Logger: zap.NewNop()})

	var sheetErr *SheetError
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, "Missing", sheetErr.SheetName)
	assert.Equal(t, "read", sheetErr.Op)
}

func TestReadExcel_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	df, err := ReadExcel(path, quietRead())
	require.NoError(t, err)
	nrow, ncol := df.Dims()
	assert.Equal(t, 0, nrow)
	assert.Equal(t, 0, ncol)
	assert.NoError(t, df.Error())

	_, err = ReadExcel(path, ReadOptions{RaiseIfEmpty: true, Logger: zap.NewNop()})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestReadExcel_Columns(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{
		"Data": {{"Name", "Age", "City"}, {"Alice", 30, "Paris"}},
	}, "Data")

	df, err := ReadExcel(path, ReadOptions{Columns: []string{"City", "Name"}, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"City", "Name"}, df.Names())
	assert.Equal(t, []map[string]interface{}{{"City": "Paris", "Name": "Alice"}}, df.Maps())
}

func TestReadExcel_NoHeader(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{
		"Data": {{"Alice", 30}, {"Bob", 25}},
	}, "Data")

	df, err := ReadExcel(path, ReadOptions{HasHeader: Bool(false), Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Column1", "Column2"}, df.Names())
	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, []series.Type{series.String, series.Int}, df.Types())
}

func TestReadExcel_InferSchemaLength(t *testing.T) {
	path := writeRows(t, map[string][][]interface{}{
		"Data": {{"Code"}, {1}, {2}, {3}, {"A7"}},
	}, "Data")

	_, err := ReadExcel(path, ReadOptions{InferSchemaLength: Int(3), Logger: zap.NewNop()})
	require.ErrorIs(t, err, ErrSchemaMismatch)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Code", schemaErr.Column)
	assert.Equal(t, 3, schemaErr.Row)
	assert.Equal(t, series.Int, schemaErr.Type)

	df, err := ReadExcel(path, ReadOptions{InferSchemaLength: Int(0), Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, []series.Type{series.String}, df.Types())
	assert.Equal(t, []string{"1", "2", "3", "A7"}, df.Col("Code").Records())

	df, err = ReadExcel(path, ReadOptions{
		InferSchemaLength: Int(3),
		SchemaOverrides:   map[string]series.Type{"Code": series.String},
		Logger:            zap.NewNop(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, df.Nrow())
}

func TestReadSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.xlsx")
	opts := quietWrite()
	opts.SheetNames = []string{"People", "Copy"}
	require.NoError(t, WriteExcel(path, opts, sampleFrame(), sampleFrame().Head(1)))

	frames, err := ReadSheets(path, quietRead())
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "People", frames[0].SheetName)
	assert.Equal(t, 3, frames[0].Frame.Nrow())
	assert.Equal(t, "Copy", frames[1].SheetName)
	assert.Equal(t, 1, frames[1].Frame.Nrow())
}
