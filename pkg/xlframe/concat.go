package xlframe

import (
	"fmt"

	"github.com/go-gota/gota/series"
)

// ConcatHow selects how Concat combines frames.
type ConcatHow string

const (
	// ConcatVertical stacks rows; every frame must have the same columns.
	ConcatVertical ConcatHow = "vertical"
	// ConcatDiagonal stacks rows, filling columns missing from a frame with nulls.
	ConcatDiagonal ConcatHow = "diagonal"
	// ConcatHorizontal places frames side by side; heights must match.
	ConcatHorizontal ConcatHow = "horizontal"
)

// Concat combines frames into one decorated frame. With no frames it
// returns an empty frame.
func Concat(how ConcatHow, frames ...DataFrame) DataFrame {
	if len(frames) == 0 {
		return DataFrame{}
	}

	result := frames[0]
	for _, next := range frames[1:] {
		switch how {
		case ConcatVertical, "":
			result = result.RBind(next)
		case ConcatDiagonal:
			result = result.Concat(next)
		case ConcatHorizontal:
			result = result.CBind(next)
		default:
			result.df.Err = fmt.Errorf("concat: unknown strategy %q", how)
			return result
		}
	}
	return result.Copy()
}

// ConcatSeries appends series end to end. The result is a plain column, not
// a frame, and is returned as is.
func ConcatSeries(items ...series.Series) series.Series {
	if len(items) == 0 {
		return series.Series{Err: fmt.Errorf("concat: no series given")}
	}
	result := items[0].Copy()
	for _, s := range items[1:] {
		result = result.Concat(s)
	}
	return result
}
