// Package parser converts excelize worksheets into row records.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// NormalizeIngest maps a raw cell value to the value stored in a row record.
// Blank strings and absent cells become nil; everything else passes through.
func NormalizeIngest(raw any) any {
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	return raw
}

// NormalizeOutput maps a frame value to something excelize can write.
// nil and non-finite floats become an empty cell.
func NormalizeOutput(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil
		}
		return val
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// TypedValue converts the raw text of a cell into a scalar according to its type.
func TypedValue(raw string, typ excelize.CellType) any {
	switch typ {
	case excelize.CellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return true
		case "0", "FALSE":
			return false
		}
		return raw
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// cellText renders a record value the way it appears in a worksheet cell.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
