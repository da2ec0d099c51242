package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"

	"sigs.k8s.io/yaml"
)

func EncodeJSON(c *Collection) ([]byte, error) {
	if c.Tabular() {
		return json.Marshal(c.Records)
	}
	if c.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Values)
}

func EncodeYAML(c *Collection) ([]byte, error) {
	jsonData, err := EncodeJSON(c)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(jsonData)
}

// EncodeCSV writes the union of all field names, sorted, as the header.
// Missing values become empty cells; lists are JSON-encoded into their cell.
func EncodeCSV(c *Collection) ([]byte, error) {
	if !c.Tabular() {
		return nil, &ValidationError{Msg: "csv output requires a record collection"}
	}

	fieldSet := map[string]bool{}
	for _, rec := range c.Records {
		for field := range rec {
			fieldSet[field] = true
		}
	}
	header := make([]string, 0, len(fieldSet))
	for field := range fieldSet {
		header = append(header, field)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range c.Records {
		row := make([]string, len(header))
		for i, field := range header {
			v, ok := rec[field]
			if !ok {
				continue
			}
			cell, err := csvCell(v)
			if err != nil {
				return nil, err
			}
			row[i] = cell
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func csvCell(v Value) (string, error) {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'g', -1, 64), nil
	case Text:
		return v.Str, nil
	case List:
		data, err := v.MarshalJSON()
		return string(data), err
	default:
		return "", nil
	}
}
