package xlframe

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/models"
)

// SchemaOptions controls how record values are typed when building a frame.
type SchemaOptions struct {
	// Length is the number of records sampled per column. Zero samples all.
	Length int
	// Overrides fixes the type of the named columns.
	Overrides map[string]series.Type
}

// FromRecords builds a decorated frame from a sheet's records. Column types
// are inferred from the first opts.Length records: all-bool columns become
// Bool, all-integral Int, all-numeric Float, anything else String. A column
// with no values in the sample is String.
func FromRecords(sheet *models.Sheet, opts SchemaOptions) (DataFrame, error) {
	if sheet == nil || len(sheet.Header) == 0 {
		return DataFrame{}, nil
	}

	columns := make([]series.Series, len(sheet.Header))
	for c, name := range sheet.Header {
		values := sheet.Column(name)

		typ, ok := opts.Overrides[name]
		if !ok {
			typ = inferType(values, opts.Length)
		}

		converted := make([]interface{}, len(values))
		for i, v := range values {
			cv, err := convertValue(v, typ)
			if err != nil {
				return DataFrame{}, &SchemaError{Column: name, Row: i, Value: v, Type: typ}
			}
			converted[i] = cv
		}
		columns[c] = series.New(converted, typ, name)
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return DataFrame{}, fmt.Errorf("build frame: %w", df.Err)
	}
	return Decorate(df), nil
}

func inferType(values []any, length int) series.Type {
	if length > 0 && len(values) > length {
		values = values[:length]
	}

	var hasBools, hasInts, hasFloats, hasOther bool
	for _, v := range values {
		switch val := v.(type) {
		case nil:
		case bool:
			hasBools = true
		case int, int64:
			hasInts = true
		case float64:
			if isIntegral(val) {
				hasInts = true
			} else {
				hasFloats = true
			}
		default:
			hasOther = true
		}
	}

	switch {
	case hasOther:
		return series.String
	case hasBools && (hasInts || hasFloats):
		return series.String
	case hasBools:
		return series.Bool
	case hasFloats:
		return series.Float
	case hasInts:
		return series.Int
	default:
		return series.String
	}
}

// convertValue maps a record value onto the Go type gota stores for typ.
func convertValue(v any, typ series.Type) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch typ {
	case series.Int:
		switch val := v.(type) {
		case int:
			return val, nil
		case int64:
			return int(val), nil
		case float64:
			if isIntegral(val) {
				return int(val), nil
			}
		case bool:
			if val {
				return 1, nil
			}
			return 0, nil
		case string:
			if i, err := strconv.Atoi(val); err == nil {
				return i, nil
			}
		}
	case series.Float:
		switch val := v.(type) {
		case int:
			return float64(val), nil
		case int64:
			return float64(val), nil
		case float64:
			return val, nil
		case string:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return f, nil
			}
		}
	case series.Bool:
		switch val := v.(type) {
		case bool:
			return val, nil
		case string:
			if b, err := strconv.ParseBool(val); err == nil {
				return b, nil
			}
		}
	case series.String:
		switch val := v.(type) {
		case string:
			return val, nil
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), nil
		case int64:
			return strconv.FormatInt(val, 10), nil
		default:
			return fmt.Sprint(val), nil
		}
	}
	return nil, fmt.Errorf("cannot convert %T to %s", v, typ)
}

// isIntegral reports whether f is a whole number that an int holds exactly.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < 1<<53
}
