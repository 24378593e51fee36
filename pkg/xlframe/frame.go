package xlframe

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame is the view of a data frame the codec needs to write it.
// Both *dataframe.DataFrame and DataFrame satisfy it.
type Frame interface {
	Nrow() int
	Names() []string
	Maps() []map[string]interface{}
	Error() error
}

// DataFrame is a data frame that can write itself to a workbook. Every
// transformation returns another DataFrame, so the capability survives
// arbitrary chains of calls.
//
// The transformations are Copy, Describe, Select, Drop, Subset, Filter,
// Arrange, Rename, Mutate, WithColumns, Capply, Rapply, CBind, RBind,
// Concat, InnerJoin, LeftJoin, RightJoin, OuterJoin, CrossJoin, Head, Tail,
// Slice, Shift, DropNulls, FillNull, Unique, WithRowCount, Max, Min, Sum,
// Mean, Median, Std, Var, Quantile and NullCount. Everything else passes the
// underlying result through unchanged.
type DataFrame struct {
	df dataframe.DataFrame
}

var (
	_ Frame = DataFrame{}
	_ Frame = (*dataframe.DataFrame)(nil)
)

// Decorate wraps a frame so that it and every frame derived from it can be
// written with WriteExcel.
func Decorate(df dataframe.DataFrame) DataFrame {
	return DataFrame{df: df}
}

// New builds a decorated frame from series.
func New(se ...series.Series) DataFrame {
	return Decorate(dataframe.New(se...))
}

// ReadCSV loads CSV data into a decorated frame.
func ReadCSV(r io.Reader, options ...dataframe.LoadOption) DataFrame {
	return Decorate(dataframe.ReadCSV(r, options...))
}

// WriteExcel writes the frame to a single-sheet workbook at path.
func (d DataFrame) WriteExcel(path string, opts WriteOptions) error {
	return WriteExcel(path, opts, d)
}

// Nrow returns the number of rows.
func (d DataFrame) Nrow() int { return d.df.Nrow() }

// Ncol returns the number of columns.
func (d DataFrame) Ncol() int { return d.df.Ncol() }

// Dims returns the number of rows and columns.
func (d DataFrame) Dims() (int, int) { return d.df.Dims() }

// Names returns the column names in order.
func (d DataFrame) Names() []string { return d.df.Names() }

// Types returns the column types in order.
func (d DataFrame) Types() []series.Type { return d.df.Types() }

// Col returns a copy of the named column.
func (d DataFrame) Col(colname string) series.Series { return d.df.Col(colname) }

// Elem returns the element at row r, column c.
func (d DataFrame) Elem(r, c int) series.Element { return d.df.Elem(r, c) }

// Records returns the frame as strings, header first.
func (d DataFrame) Records() [][]string { return d.df.Records() }

// Maps returns one map per row. Missing values are nil.
func (d DataFrame) Maps() []map[string]interface{} { return d.df.Maps() }

// Error returns the error carried by the frame, if any.
func (d DataFrame) Error() error { return d.df.Error() }

// String renders the frame as a table.
func (d DataFrame) String() string { return d.df.String() }

// WriteCSV writes the frame as CSV.
func (d DataFrame) WriteCSV(w io.Writer, options ...dataframe.WriteOption) error {
	return d.df.WriteCSV(w, options...)
}

// WriteJSON writes the frame as a JSON array of objects.
func (d DataFrame) WriteJSON(w io.Writer) error { return d.df.WriteJSON(w) }

// Copy returns a deep copy of the frame.
func (d DataFrame) Copy() DataFrame {
	if d.empty() {
		return d
	}
	return Decorate(d.df.Copy())
}

// Describe returns summary statistics for every column.
func (d DataFrame) Describe() DataFrame { return Decorate(d.df.Describe()) }

// Select returns the selected columns.
func (d DataFrame) Select(indexes dataframe.SelectIndexes) DataFrame {
	return Decorate(d.df.Select(indexes))
}

// Drop returns the frame without the selected columns.
func (d DataFrame) Drop(indexes dataframe.SelectIndexes) DataFrame {
	return Decorate(d.df.Drop(indexes))
}

// Subset returns the selected rows.
func (d DataFrame) Subset(indexes series.Indexes) DataFrame {
	if d.empty() {
		return d
	}
	return Decorate(d.df.Subset(indexes))
}

// Filter returns the rows matching any of the filters.
func (d DataFrame) Filter(filters ...dataframe.F) DataFrame {
	return Decorate(d.df.Filter(filters...))
}

// Arrange sorts the rows by the given orders.
func (d DataFrame) Arrange(order ...dataframe.Order) DataFrame {
	return Decorate(d.df.Arrange(order...))
}

// Rename renames column oldname to newname.
func (d DataFrame) Rename(newname, oldname string) DataFrame {
	return Decorate(d.df.Rename(newname, oldname))
}

// Mutate replaces or appends a column.
func (d DataFrame) Mutate(s series.Series) DataFrame {
	return Decorate(d.df.Mutate(s))
}

// WithColumns applies Mutate for each series in order.
func (d DataFrame) WithColumns(se ...series.Series) DataFrame {
	df := d.df
	for _, s := range se {
		df = df.Mutate(s)
	}
	return Decorate(df)
}

// Capply applies f to every column.
func (d DataFrame) Capply(f func(series.Series) series.Series) DataFrame {
	if d.empty() {
		return d
	}
	return Decorate(d.df.Capply(f))
}

// Rapply applies f to every row.
func (d DataFrame) Rapply(f func(series.Series) series.Series) DataFrame {
	if d.empty() {
		return d
	}
	return Decorate(d.df.Rapply(f))
}

// CBind appends the columns of other.
func (d DataFrame) CBind(other DataFrame) DataFrame {
	return Decorate(d.df.CBind(other.df))
}

// RBind appends the rows of other, which must have the same columns.
func (d DataFrame) RBind(other DataFrame) DataFrame {
	return Decorate(d.df.RBind(other.df))
}

// Concat appends the rows of other, filling unmatched columns with nulls.
func (d DataFrame) Concat(other DataFrame) DataFrame {
	return Decorate(d.df.Concat(other.df))
}

// InnerJoin joins on keys, keeping matching rows only.
func (d DataFrame) InnerJoin(other DataFrame, keys ...string) DataFrame {
	return Decorate(d.df.InnerJoin(other.df, keys...))
}

// LeftJoin joins on keys, keeping every row of d.
func (d DataFrame) LeftJoin(other DataFrame, keys ...string) DataFrame {
	return Decorate(d.df.LeftJoin(other.df, keys...))
}

// RightJoin joins on keys, keeping every row of other.
func (d DataFrame) RightJoin(other DataFrame, keys ...string) DataFrame {
	return Decorate(d.df.RightJoin(other.df, keys...))
}

// OuterJoin joins on keys, keeping every row of both frames.
func (d DataFrame) OuterJoin(other DataFrame, keys ...string) DataFrame {
	return Decorate(d.df.OuterJoin(other.df, keys...))
}

// CrossJoin returns the cartesian product of both frames.
func (d DataFrame) CrossJoin(other DataFrame) DataFrame {
	return Decorate(d.df.CrossJoin(other.df))
}

// empty reports whether the frame has no columns and no error. gota cannot
// rebuild a frame without columns, so row and column operations return it as is.
func (d DataFrame) empty() bool {
	return d.df.Ncol() == 0 && d.df.Err == nil
}
