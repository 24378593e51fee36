package xlframe

import (
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFrame_Aggregations(t *testing.T) {
	df := sampleFrame()

	tests := []struct {
		name  string
		got   DataFrame
		age   float64
		score float64
	}{
		{"max", df.Max(), 41, 72.25},
		{"min", df.Min(), 25, 55.5},
		{"sum", df.Sum(), 96, 188.5},
		{"mean", df.Mean(), 32, 188.5 / 3},
		{"median", df.Median(), 30, 60.75},
		{"var", df.Var(), 67, 73.39583333333333},
		{"quantile", df.Quantile(0.5), 30, 60.75},
		{"quantile max", df.Quantile(1), 41, 72.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.got.Error())
			require.Equal(t, 1, tt.got.Nrow())
			assert.Equal(t, df.Names(), tt.got.Names())

			row := tt.got.Maps()[0]
			assert.InDelta(t, tt.age, row["Age"], 1e-9)
			assert.InDelta(t, tt.score, row["Score"], 1e-9)
			assert.Nil(t, row["Name"])
			assert.Nil(t, row["Member"])
		})
	}
}

func TestDataFrame_AggregationTypes(t *testing.T) {
	got := sampleFrame().Sum()
	assert.Equal(t, []series.Type{series.String, series.Float, series.Float, series.Bool}, got.Types())
}

func TestDataFrame_StdSkipsNulls(t *testing.T) {
	df := New(series.New([]interface{}{2.0, nil, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}, series.Float, "X"))

	std := df.Std().Maps()[0]["X"]
	assert.InDelta(t, 2.138089935, std, 1e-6)
	assert.Equal(t, 9.0, df.Max().Maps()[0]["X"])
}

func TestDataFrame_AggregationAllNull(t *testing.T) {
	df := New(series.New([]interface{}{nil, nil}, series.Int, "X"))

	assert.Nil(t, df.Mean().Maps()[0]["X"])
	assert.Nil(t, df.Std().Maps()[0]["X"])
	assert.Equal(t, 2, df.NullCount().Maps()[0]["X"])
}

func TestDataFrame_QuantileOutOfRange(t *testing.T) {
	assert.Error(t, sampleFrame().Quantile(1.5).Error())
}
