package seq

import (
	"math/rand"

	"preproc/dataset"
)

// Flatten expands list values depth-first into a single-level sequence.
// Non-list values pass through, so flat input comes back unchanged.
func Flatten(values []dataset.Value) []dataset.Value {
	out := make([]dataset.Value, 0, len(values))
	for _, v := range values {
		if v.Kind == dataset.List {
			out = append(out, Flatten(v.Items)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// Shuffle returns a seeded Fisher-Yates permutation. The same seed
// always yields the same order; the input is left untouched.
func Shuffle(values []dataset.Value, seed int64) []dataset.Value {
	out := make([]dataset.Value, len(values))
	copy(out, values)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func ShuffleRecords(records []dataset.Record, seed int64) []dataset.Record {
	out := make([]dataset.Record, len(records))
	copy(out, records)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Unique keeps the first occurrence of each value, preserving order.
func Unique(values []dataset.Value) []dataset.Value {
	seen := make(map[string]bool, len(values))
	out := make([]dataset.Value, 0, len(values))
	for _, v := range values {
		key := v.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// UniqueByField deduplicates records on one field's value; records
// lacking the field share the missing key. The field must exist in at
// least one record.
func UniqueByField(records []dataset.Record, field string) ([]dataset.Record, error) {
	if _, err := dataset.Column(records, field); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(records))
	out := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		v, ok := rec[field]
		if !ok {
			v = dataset.NewMissing()
		}
		key := v.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out, nil
}
