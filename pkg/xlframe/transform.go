package xlframe

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Head returns the first n rows.
func (d DataFrame) Head(n int) DataFrame {
	return d.Slice(0, n)
}

// Tail returns the last n rows.
func (d DataFrame) Tail(n int) DataFrame {
	n = min(max(n, 0), d.Nrow())
	return d.Slice(d.Nrow()-n, n)
}

// Slice returns length rows starting at offset. A negative offset counts
// from the end. The window is clipped to the frame.
func (d DataFrame) Slice(offset, length int) DataFrame {
	nrow := d.Nrow()
	if offset < 0 {
		offset = max(nrow+offset, 0)
	}
	start := min(offset, nrow)
	end := min(start+max(length, 0), nrow)

	indexes := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indexes = append(indexes, i)
	}
	return d.Subset(indexes)
}

// Shift moves every column down by n rows (up when n is negative), filling
// the vacated positions with nulls.
func (d DataFrame) Shift(n int) DataFrame {
	return d.Capply(func(s series.Series) series.Series {
		values := make([]interface{}, s.Len())
		for i := range values {
			src := i - n
			if src >= 0 && src < s.Len() {
				values[i] = s.Elem(src).Val()
			}
		}
		return series.New(values, s.Type(), s.Name)
	})
}

// DropNulls removes rows with a null in any of the named columns, or in any
// column when none are named. An unknown column name yields a frame whose
// Error reports it.
func (d DataFrame) DropNulls(colnames ...string) DataFrame {
	if len(colnames) == 0 {
		colnames = d.Names()
	}
	cols := make([]series.Series, 0, len(colnames))
	for _, name := range colnames {
		col := d.df.Col(name)
		if col.Err != nil {
			return Decorate(dataframe.DataFrame{Err: fmt.Errorf("drop nulls: %w", col.Err)})
		}
		cols = append(cols, col)
	}

	indexes := []int{}
	for i := 0; i < d.Nrow(); i++ {
		keep := true
		for _, col := range cols {
			if col.Elem(i).IsNA() {
				keep = false
				break
			}
		}
		if keep {
			indexes = append(indexes, i)
		}
	}
	return d.Subset(indexes)
}

// FillNull replaces nulls in every column with value, converted to the
// column's type. When value does not convert to the type of a column that
// holds nulls, the result carries an error instead. A nil value leaves the
// frame unchanged.
func (d DataFrame) FillNull(value interface{}) DataFrame {
	if d.df.Err != nil || d.empty() || value == nil {
		return d
	}

	cols := make([]series.Series, 0, d.Ncol())
	for _, name := range d.Names() {
		s := d.df.Col(name)
		values := make([]interface{}, s.Len())
		nulls := []int{}
		for i := range values {
			if e := s.Elem(i); e.IsNA() {
				values[i] = value
				nulls = append(nulls, i)
			} else {
				values[i] = e.Val()
			}
		}
		filled := series.New(values, s.Type(), s.Name)
		for _, i := range nulls {
			if filled.Elem(i).IsNA() {
				return Decorate(dataframe.DataFrame{
					Err: fmt.Errorf("fill null: %v does not convert to %s column %q", value, s.Type(), name),
				})
			}
		}
		cols = append(cols, filled)
	}
	return Decorate(dataframe.New(cols...))
}

// Unique removes duplicate rows, keeping the first occurrence.
func (d DataFrame) Unique() DataFrame {
	nrow, ncol := d.Dims()
	seen := make(map[string]struct{}, nrow)
	indexes := []int{}

	var key strings.Builder
	for i := 0; i < nrow; i++ {
		key.Reset()
		for c := 0; c < ncol; c++ {
			e := d.df.Elem(i, c)
			if e.IsNA() {
				key.WriteString("\x00")
			} else {
				key.WriteString(e.String())
			}
			key.WriteString("\x1f")
		}
		if _, ok := seen[key.String()]; ok {
			continue
		}
		seen[key.String()] = struct{}{}
		indexes = append(indexes, i)
	}
	return d.Subset(indexes)
}

// WithRowCount prepends an Int column holding the 0-based row number.
func (d DataFrame) WithRowCount(name string) DataFrame {
	counts := make([]int, d.Nrow())
	for i := range counts {
		counts[i] = i
	}
	idx := dataframe.New(series.New(counts, series.Int, name))
	return Decorate(idx.CBind(d.df))
}
