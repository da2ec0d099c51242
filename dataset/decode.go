package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"
)

// DecodeJSON accepts a top-level array: of objects (tabular) or of
// scalars/lists (sequence). Mixing the two shapes is an error.
func DecodeJSON(data []byte) (*Collection, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, &ParseError{Format: "json", Reason: "input must be a top-level array"}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Format: "json", Reason: err.Error()}
	}
	if len(raw) == 0 {
		return NewValueCollection([]Value{}), nil
	}

	objects := 0
	for _, elem := range raw {
		if len(bytes.TrimSpace(elem)) > 0 && bytes.TrimSpace(elem)[0] == '{' {
			objects++
		}
	}
	switch objects {
	case len(raw):
		records := make([]Record, len(raw))
		for i, elem := range raw {
			var rec map[string]Value
			if err := json.Unmarshal(elem, &rec); err != nil {
				return nil, &ParseError{Format: "json", Reason: err.Error()}
			}
			records[i] = rec
		}
		return NewRecordCollection(records), nil
	case 0:
		values := make([]Value, len(raw))
		for i, elem := range raw {
			if err := values[i].UnmarshalJSON(elem); err != nil {
				return nil, err
			}
		}
		return NewValueCollection(values), nil
	default:
		return nil, &ParseError{Format: "json", Reason: "array mixes records and plain values"}
	}
}

func DecodeYAML(data []byte) (*Collection, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &ParseError{Format: "yaml", Reason: err.Error()}
	}
	return DecodeJSON(jsonData)
}

// DecodeCSV treats the first row as the header. Empty cells become the
// missing sentinel, everything else goes through SmartCast.
func DecodeCSV(data []byte) (*Collection, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Format: "csv", Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Format: "csv", Reason: "missing header row"}
	}
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = SmartCast(row[i])
			} else {
				rec[field] = NewMissing()
			}
		}
		records = append(records, rec)
	}
	return NewRecordCollection(records), nil
}

// ParseLiteral handles a non-file CLI argument: a JSON array, or a
// comma-separated list of smart-cast items.
func ParseLiteral(arg string) (*Collection, error) {
	trimmed := strings.TrimSpace(arg)
	if strings.HasPrefix(trimmed, "[") {
		return DecodeJSON([]byte(trimmed))
	}
	parts := strings.Split(arg, ",")
	values := make([]Value, len(parts))
	for i, part := range parts {
		values[i] = SmartCast(part)
	}
	return NewValueCollection(values), nil
}

// SmartCast maps raw cell text onto the value model. "none", "null",
// "nan" and the empty cell are the missing sentinel; a quoted empty
// string stays text.
func SmartCast(s string) Value {
	t := strings.TrimSpace(s)
	if t == `""` || t == "''" {
		return NewText("")
	}
	switch strings.ToLower(t) {
	case "", "none", "null", "nan":
		return NewMissing()
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return NewNumber(f)
	}
	return NewText(t)
}
