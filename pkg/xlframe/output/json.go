// Package output renders frames and workbook descriptions for the CLI.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Table is a frame viewed as ordered columns and rows of values.
type Table interface {
	Names() []string
	Maps() []map[string]interface{}
}

// ToJSON serializes any value, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// RecordsToJSON serializes a frame as an array of objects whose keys follow
// the frame's column order.
func RecordsToJSON(t Table, pretty bool) ([]byte, error) {
	names := t.Names()
	keys := make([][]byte, len(names))
	for i, name := range names {
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for r, row := range t.Maps() {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				buf.WriteByte(',')
			}
			v, err := json.Marshal(row[name])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", r, name, err)
			}
			buf.Write(keys[i])
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	if !pretty {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteCSV writes a frame as CSV with a header row. Nulls become empty fields.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	names := t.Names()
	if err := cw.Write(names); err != nil {
		return err
	}

	record := make([]string, len(names))
	for _, row := range t.Maps() {
		for i, name := range names {
			record[i] = field(row[name])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func field(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
