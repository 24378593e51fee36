package xlframe

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// reducer folds the non-null values of a numeric column into one value.
// It is never called with an empty slice.
type reducer func(values []float64) float64

// Max returns a one-row frame with the maximum of each numeric column.
func (d DataFrame) Max() DataFrame { return d.aggregate(floats.Max) }

// Min returns a one-row frame with the minimum of each numeric column.
func (d DataFrame) Min() DataFrame { return d.aggregate(floats.Min) }

// Sum returns a one-row frame with the sum of each numeric column.
func (d DataFrame) Sum() DataFrame { return d.aggregate(floats.Sum) }

// Mean returns a one-row frame with the mean of each numeric column.
func (d DataFrame) Mean() DataFrame {
	return d.aggregate(func(v []float64) float64 { return stat.Mean(v, nil) })
}

// Median returns a one-row frame with the median of each numeric column.
// Even-length columns take the midpoint of the two middle values.
func (d DataFrame) Median() DataFrame {
	return d.aggregate(func(v []float64) float64 {
		sorted := sortedCopy(v)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2
	})
}

// Std returns a one-row frame with the sample standard deviation of each
// numeric column.
func (d DataFrame) Std() DataFrame {
	return d.aggregate(func(v []float64) float64 { return stat.StdDev(v, nil) })
}

// Var returns a one-row frame with the sample variance of each numeric column.
func (d DataFrame) Var() DataFrame {
	return d.aggregate(func(v []float64) float64 { return stat.Variance(v, nil) })
}

// Quantile returns a one-row frame with the empirical q-quantile (0 <= q <= 1)
// of each numeric column.
func (d DataFrame) Quantile(q float64) DataFrame {
	if !(q >= 0 && q <= 1) {
		return Decorate(dataframe.DataFrame{Err: fmt.Errorf("quantile: %v is outside [0, 1]", q)})
	}
	return d.aggregate(func(v []float64) float64 {
		return stat.Quantile(q, stat.Empirical, sortedCopy(v), nil)
	})
}

// NullCount returns a one-row frame with the number of nulls in each column.
func (d DataFrame) NullCount() DataFrame {
	names := d.Names()
	if len(names) == 0 {
		return d
	}
	columns := make([]series.Series, len(names))
	for c, name := range names {
		col := d.df.Col(name)
		count := 0
		for i := 0; i < col.Len(); i++ {
			if col.Elem(i).IsNA() {
				count++
			}
		}
		columns[c] = series.New([]int{count}, series.Int, name)
	}
	return Decorate(dataframe.New(columns...))
}

// aggregate reduces every Int or Float column with fn. Other columns, and
// numeric columns without values, yield a null of the column's type.
func (d DataFrame) aggregate(fn reducer) DataFrame {
	names := d.Names()
	if len(names) == 0 {
		return d
	}
	columns := make([]series.Series, len(names))
	for c, name := range names {
		col := d.df.Col(name)
		switch col.Type() {
		case series.Int, series.Float:
			var result interface{}
			if values := nonNull(col); len(values) > 0 {
				if r := fn(values); !math.IsNaN(r) {
					result = r
				}
			}
			columns[c] = series.New([]interface{}{result}, series.Float, name)
		default:
			columns[c] = series.New([]interface{}{nil}, col.Type(), name)
		}
	}
	return Decorate(dataframe.New(columns...))
}

func nonNull(col series.Series) []float64 {
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if e := col.Elem(i); !e.IsNA() {
			values = append(values, e.Float())
		}
	}
	return values
}

func sortedCopy(v []float64) []float64 {
	sorted := append([]float64(nil), v...)
	sort.Float64s(sorted)
	return sorted
}
