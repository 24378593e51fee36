package xlframe

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/series"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the file extension is not a supported workbook format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrConflictingSheetSelector indicates both a sheet name and a sheet id were given.
var ErrConflictingSheetSelector = errors.New("sheet name and sheet id are mutually exclusive")

// ErrColumnNotFound indicates a requested column is not in the sheet header.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoData indicates a sheet yielded no data rows.
var ErrNoData = errors.New("no data in worksheet")

// ErrFrameEmpty indicates the single frame to write has no rows.
var ErrFrameEmpty = errors.New("the frame is empty, nothing to write")

// ErrAllFramesEmpty indicates every frame to write has no rows.
var ErrAllFramesEmpty = errors.New("all provided frames are empty, nothing to write")

// ErrInsufficientSheetNames indicates fewer sheet names than frames were given.
var ErrInsufficientSheetNames = errors.New("not enough sheet names provided for the frames")

// ErrDuplicateSheetName indicates two frames target the same sheet.
var ErrDuplicateSheetName = errors.New("duplicate sheet name")

// SheetError represents an error while reading or writing one worksheet.
type SheetError struct {
	SheetName string
	Op        string // "read", "write"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}

// ErrSchemaMismatch is wrapped by SchemaError.
var ErrSchemaMismatch = errors.New("value does not match inferred column type")

// SchemaError reports a value that does not fit the type inferred for its column.
// Increasing InferSchemaLength widens the sample used for inference.
type SchemaError struct {
	Column string
	Row    int // 0-based record index
	Value  any
	Type   series.Type
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q row %d: %v (%T) is not %s; consider increasing InferSchemaLength",
		e.Column, e.Row, e.Value, e.Value, e.Type)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}
