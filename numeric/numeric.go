package numeric

import (
	"fmt"
	"math"

	"preproc/dataset"
)

// DegenerateError marks zero-range or zero-variance input, for which a
// rescale is undefined.
type DegenerateError struct {
	Op     string
	Reason string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Normalize rescales into [0, 1]. A constant series is an error; an
// empty one maps to an empty result.
func Normalize(values []float64) ([]float64, error) {
	return NormalizeRange(values, 0, 1)
}

// NormalizeRange rescales into [lo, hi] with min-max scaling.
func NormalizeRange(values []float64, lo, hi float64) ([]float64, error) {
	if lo >= hi {
		return nil, &dataset.ValidationError{
			Msg: fmt.Sprintf("normalize: low bound %g must be below high bound %g", lo, hi),
		}
	}
	if len(values) == 0 {
		return []float64{}, nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if max == min {
		return nil, &DegenerateError{Op: "normalize", Reason: "input has zero range"}
	}

	out := make([]float64, len(values))
	scale := (hi - lo) / (max - min)
	for i, v := range values {
		out[i] = lo + (v-min)*scale
	}
	return out, nil
}

// Standardize maps to z-scores using the sample standard deviation.
func Standardize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}
	w := NewWelford()
	for _, v := range values {
		w.Update(v)
	}
	sd := w.SD()
	if sd == 0 {
		return nil, &DegenerateError{Op: "standardize", Reason: "input has zero variance"}
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - w.Mean()) / sd
	}
	return out, nil
}

// Clip clamps every value into [low, high].
func Clip(values []float64, low, high float64) ([]float64, error) {
	if low > high {
		return nil, &dataset.ValidationError{
			Msg: fmt.Sprintf("clip: low bound %g exceeds high bound %g", low, high),
		}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Min(math.Max(v, low), high)
	}
	return out, nil
}

// ToInt casts numeric values and numeric text to integers, truncating
// toward zero. Values that cannot be cast are skipped.
func ToInt(values []dataset.Value) []int64 {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		f, ok := v.AsFloat()
		if !ok {
			continue
		}
		out = append(out, int64(f))
	}
	return out
}

// ToIntColumn is the alignment-preserving form for record columns:
// uncastable cells become the missing sentinel instead of being dropped.
func ToIntColumn(values []dataset.Value) []dataset.Value {
	out := make([]dataset.Value, len(values))
	for i, v := range values {
		f, ok := v.AsFloat()
		if !ok {
			out[i] = dataset.NewMissing()
			continue
		}
		out[i] = dataset.NewNumber(float64(int64(f)))
	}
	return out
}

// LogScale takes the natural log of positive values; the rest are skipped.
func LogScale(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			continue
		}
		out = append(out, math.Log(v))
	}
	return out
}

// LogColumn is the alignment-preserving form: non-positive cells become
// the missing sentinel.
func LogColumn(values []dataset.Value) []dataset.Value {
	out := make([]dataset.Value, len(values))
	for i, v := range values {
		f, ok := v.AsFloat()
		if !ok || f <= 0 {
			out[i] = dataset.NewMissing()
			continue
		}
		out[i] = dataset.NewNumber(math.Log(f))
	}
	return out
}
