package dataset

import "fmt"

// Record is one row: field name to value. Schemas may differ across the
// records of a collection.
type Record map[string]Value

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Collection is either tabular (Records set) or a plain sequence
// (Values set). Decoders pick the shape; operations never change it.
type Collection struct {
	Records []Record
	Values  []Value
}

func NewValueCollection(values []Value) *Collection {
	return &Collection{Values: values}
}

func NewRecordCollection(records []Record) *Collection {
	return &Collection{Records: records}
}

func (c *Collection) Tabular() bool {
	return c.Records != nil
}

func (c *Collection) Len() int {
	if c.Tabular() {
		return len(c.Records)
	}
	return len(c.Values)
}

// Column extracts a field across all records, substituting the missing
// sentinel where a record lacks the field. A field held by no record at
// all is an error.
func Column(records []Record, field string) ([]Value, error) {
	found := false
	vals := make([]Value, len(records))
	for i, rec := range records {
		v, ok := rec[field]
		if ok {
			found = true
			vals[i] = v
		} else {
			vals[i] = NewMissing()
		}
	}
	if !found {
		return nil, &MissingFieldError{Field: field}
	}
	return vals, nil
}

// ReplaceColumn returns new records with the field set from vals,
// positionally. len(vals) must equal len(records).
func ReplaceColumn(records []Record, field string, vals []Value) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		clone := rec.Clone()
		clone[field] = vals[i]
		out[i] = clone
	}
	return out
}

// Floats converts a value sequence for the numeric family. Missing values
// and non-numeric text are rejected; run a clean pass first.
func Floats(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v.IsMissing() {
			return nil, &ValidationError{
				Msg: fmt.Sprintf("missing value at position %d; drop or fill missing values first", i),
			}
		}
		f, ok := v.AsFloat()
		if !ok {
			return nil, &ValidationError{
				Msg: fmt.Sprintf("value %q at position %d is not numeric", v.String(), i),
			}
		}
		out[i] = f
	}
	return out, nil
}

// CastFloats is the lenient counterpart of Floats: values that cannot
// be read as numbers are skipped instead of rejected.
func CastFloats(values []Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.AsFloat(); ok {
			out = append(out, f)
		}
	}
	return out
}

func NumberValues(floats []float64) []Value {
	out := make([]Value, len(floats))
	for i, f := range floats {
		out[i] = NewNumber(f)
	}
	return out
}

func TextValues(strs []string) []Value {
	out := make([]Value, len(strs))
	for i, s := range strs {
		out[i] = NewText(s)
	}
	return out
}
