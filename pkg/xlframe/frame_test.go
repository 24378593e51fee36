package xlframe

import (
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(df DataFrame) []string {
	return df.Col("Name").Records()
}

func TestDataFrame_ChainKeepsWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.xlsx")

	result := sampleFrame().
		Filter(dataframe.F{Colname: "Age", Comparator: series.Greater, Comparando: 26}).
		Arrange(dataframe.RevSort("Age")).
		Select([]string{"Name", "Age"}).
		Rename("Years", "Age").
		Head(5)
	require.NoError(t, result.Error())
	require.NoError(t, result.WriteExcel(path, quietWrite()))

	got, err := ReadExcel(path, quietRead())
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Years"}, got.Names())
	assert.Equal(t, []map[string]interface{}{
		{"Name": "Carol", "Years": 41},
		{"Name": "Alice", "Years": 30},
	}, got.Maps())
}

func TestDataFrame_ColumnOperations(t *testing.T) {
	df := sampleFrame()

	dropped := df.Drop([]string{"Score", "Member"})
	assert.Equal(t, []string{"Name", "Age"}, dropped.Names())

	mutated := dropped.WithColumns(
		series.New([]int{31, 26, 42}, series.Int, "Age"),
		series.New([]string{"FR", "US", "DE"}, series.String, "Country"),
	)
	assert.Equal(t, []string{"Name", "Age", "Country"}, mutated.Names())
	assert.Equal(t, []string{"31", "26", "42"}, mutated.Col("Age").Records())

	doubled := dropped.Select("Age").Capply(func(s series.Series) series.Series {
		values := s.Float()
		for i := range values {
			values[i] *= 2
		}
		return series.Floats(values)
	})
	assert.Equal(t, []float64{60, 50, 82}, doubled.Col("Age").Float())

	described := df.Describe()
	assert.Equal(t, 8, described.Nrow())
}

func TestDataFrame_Joins(t *testing.T) {
	teams := New(
		series.New([]string{"Alice", "Bob", "Dave"}, series.String, "Name"),
		series.New([]string{"Red", "Blue", "Green"}, series.String, "Team"),
	)
	people := sampleFrame().Select([]string{"Name", "Age"})

	assert.Equal(t, 2, people.InnerJoin(teams, "Name").Nrow())
	assert.Equal(t, 3, people.LeftJoin(teams, "Name").Nrow())
	assert.Equal(t, 3, people.RightJoin(teams, "Name").Nrow())
	assert.Equal(t, 4, people.OuterJoin(teams, "Name").Nrow())
	assert.Equal(t, 9, people.CrossJoin(teams.Select("Team")).Nrow())
	assert.Contains(t, people.InnerJoin(teams, "Name").Names(), "Team")
}

func TestDataFrame_Slicing(t *testing.T) {
	df := sampleFrame()

	tests := []struct {
		name string
		got  DataFrame
		want []string
	}{
		{"head", df.Head(2), []string{"Alice", "Bob"}},
		{"head beyond length", df.Head(10), []string{"Alice", "Bob", "Carol"}},
		{"head zero", df.Head(0), []string{}},
		{"tail", df.Tail(1), []string{"Carol"}},
		{"slice", df.Slice(1, 10), []string{"Bob", "Carol"}},
		{"slice from end", df.Slice(-2, 1), []string{"Bob"}},
		{"slice past end", df.Slice(5, 1), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.got.Error())
			assert.Equal(t, tt.want, names(tt.got))
		})
	}
}

func TestDataFrame_Shift(t *testing.T) {
	df := sampleFrame().Select([]string{"Name", "Age"})

	down := df.Shift(1)
	require.NoError(t, down.Error())
	assert.True(t, down.Col("Age").Elem(0).IsNA())
	assert.Equal(t, 30, down.Col("Age").Val(1))
	assert.Equal(t, "Bob", down.Col("Name").Val(2))

	up := df.Shift(-1)
	assert.Equal(t, 25, up.Col("Age").Val(0))
	assert.True(t, up.Col("Age").Elem(2).IsNA())
	assert.Equal(t, []series.Type{series.String, series.Int}, up.Types())
}

func nullableFrame() DataFrame {
	return New(
		series.New([]interface{}{"Alice", "Bob", nil, "Alice"}, series.String, "Name"),
		series.New([]interface{}{1.5, nil, 3.0, 1.5}, series.Float, "Score"),
	)
}

func TestDataFrame_Nulls(t *testing.T) {
	df := nullableFrame()

	assert.Equal(t, 2, df.DropNulls().Nrow())
	assert.Equal(t, 3, df.DropNulls("Name").Nrow())
	assert.Equal(t, 3, df.DropNulls("Score").Nrow())

	filled := df.FillNull(0)
	assert.Equal(t, []float64{1.5, 0, 3, 1.5}, filled.Col("Score").Float())
	assert.Equal(t, map[string]interface{}{"Name": 0, "Score": 0}, filled.NullCount().Maps()[0])

	assert.Equal(t, map[string]interface{}{"Name": 1, "Score": 1}, df.NullCount().Maps()[0])

	assert.Error(t, df.DropNulls("Missing").Error())
	assert.Error(t, New(series.New([]int{1, 2}, series.Int, "a")).DropNulls("nope").Error())

	assert.Error(t, df.FillNull("x").Error(), "x is not a float")
	assert.Error(t, New(series.New([]interface{}{1, nil}, series.Int, "a")).FillNull("x").Error())
	assert.NoError(t, sampleFrame().FillNull("x").Error(), "columns without nulls take no fill")
	assert.Equal(t, df.Maps(), df.FillNull(nil).Maps())
}

func TestDataFrame_Unique(t *testing.T) {
	unique := nullableFrame().Unique()
	require.NoError(t, unique.Error())
	assert.Equal(t, 3, unique.Nrow())
	assert.Equal(t, []float64{1.5, 0, 3}, unique.FillNull(0).Col("Score").Float())
}

func TestDataFrame_WithRowCount(t *testing.T) {
	df := sampleFrame().WithRowCount("idx")
	require.NoError(t, df.Error())
	assert.Equal(t, []string{"idx", "Name", "Age", "Score", "Member"}, df.Names())
	assert.Equal(t, []string{"0", "1", "2"}, df.Col("idx").Records())
}

func TestDataFrame_EmptyFrameOperations(t *testing.T) {
	var df DataFrame

	for _, got := range []DataFrame{df.Head(3), df.Tail(3), df.Shift(1), df.Unique(), df.Copy(), df.FillNull(0)} {
		assert.NoError(t, got.Error())
		assert.Equal(t, 0, got.Ncol())
	}
}
