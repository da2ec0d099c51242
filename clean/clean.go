package clean

import "preproc/dataset"

// RemoveMissing drops missing sentinels from a plain sequence.
func RemoveMissing(values []dataset.Value) []dataset.Value {
	out := make([]dataset.Value, 0, len(values))
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FillMissingValues replaces missing sentinels in a plain sequence.
func FillMissingValues(values []dataset.Value, fill dataset.Value) []dataset.Value {
	out := make([]dataset.Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}

// DropMissing keeps the records where none of the fields is missing,
// preserving order. A field held by no record at all is an error.
func DropMissing(records []dataset.Record, fields []string) ([]dataset.Record, error) {
	for _, field := range fields {
		if _, err := dataset.Column(records, field); err != nil {
			return nil, err
		}
	}
	out := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		keep := true
		for _, field := range fields {
			v, ok := rec[field]
			if !ok || v.IsMissing() {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FillMissing replaces missing values of one field across all records.
// Records lacking the field gain it with the fill value.
func FillMissing(records []dataset.Record, field string, fill dataset.Value) ([]dataset.Record, error) {
	column, err := dataset.Column(records, field)
	if err != nil {
		return nil, err
	}
	filled := FillMissingValues(column, fill)
	return dataset.ReplaceColumn(records, field, filled), nil
}
