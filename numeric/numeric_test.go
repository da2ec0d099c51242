package numeric

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"preproc/dataset"
)

func TestNormalizeExample(t *testing.T) {
	result, err := Normalize([]float64{2, 4, 6, 8, 10})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, result)
}

func TestNormalizeBounds(t *testing.T) {
	values := []float64{3.2, -7.5, 0, 12.25, 5, -7.5, 12.25}
	result, err := Normalize(values)
	assert.NoError(t, err)

	min, max := result[0], result[0]
	for _, v := range result {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
}

func TestNormalizeRange(t *testing.T) {
	result, err := NormalizeRange([]float64{10, 20, 30, 40, 50}, -1, 1)
	assert.NoError(t, err)
	expected := []float64{-1, -0.5, 0, 0.5, 1}
	for i := range expected {
		assert.InDelta(t, expected[i], result[i], 1e-12)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := Normalize([]float64{5, 5, 5})
	var degenerate *DegenerateError
	assert.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "normalize", degenerate.Op)
}

func TestNormalizeEmpty(t *testing.T) {
	result, err := Normalize([]float64{})
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestNormalizeBadBounds(t *testing.T) {
	_, err := NormalizeRange([]float64{1, 2}, 1, 0)
	var validation *dataset.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestStandardizeExample(t *testing.T) {
	result, err := Standardize([]float64{10, 20, 30, 40, 50})
	assert.NoError(t, err)
	expected := []float64{-1.264911, -0.632455, 0, 0.632455, 1.264911}
	for i := range expected {
		assert.InDelta(t, expected[i], result[i], 1e-5)
	}
}

func TestStandardizeMoments(t *testing.T) {
	result, err := Standardize([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	assert.NoError(t, err)

	w := NewWelford()
	for _, v := range result {
		w.Update(v)
	}
	assert.InDelta(t, 0.0, w.Mean(), 1e-9)
	assert.InDelta(t, 1.0, w.SD(), 1e-9)
}

func TestStandardizeDegenerate(t *testing.T) {
	var degenerate *DegenerateError

	_, err := Standardize([]float64{7, 7, 7, 7})
	assert.ErrorAs(t, err, &degenerate)

	// a single value has no spread either
	_, err = Standardize([]float64{7})
	assert.ErrorAs(t, err, &degenerate)
}

func TestClip(t *testing.T) {
	result, err := Clip([]float64{1, 5, 10, 15, 20}, 5, 15)
	assert.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 10, 15, 15}, result)
	for _, v := range result {
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 15.0)
	}
}

func TestClipBadBounds(t *testing.T) {
	_, err := Clip([]float64{1, 2}, 10, 5)
	var validation *dataset.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestToInt(t *testing.T) {
	values := []dataset.Value{
		dataset.NewText("1"),
		dataset.NewText("2.5"),
		dataset.NewText("hello"),
		dataset.NewText("3.0"),
		dataset.NewText("4.9"),
		dataset.NewMissing(),
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ToInt(values))
}

func TestToIntColumn(t *testing.T) {
	values := []dataset.Value{
		dataset.NewNumber(2.7),
		dataset.NewText("nope"),
		dataset.NewText("4.2"),
	}
	result := ToIntColumn(values)
	expected := []dataset.Value{
		dataset.NewNumber(2),
		dataset.NewMissing(),
		dataset.NewNumber(4),
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("column mismatch (-want +got):\n%s", diff)
	}
}

func TestLogScale(t *testing.T) {
	result := LogScale([]float64{1, 10, 100, 0, -5, math.E})
	expected := []float64{0, math.Log(10), math.Log(100), 1}
	assert.Equal(t, len(expected), len(result))
	for i := range expected {
		assert.InDelta(t, expected[i], result[i], 1e-12)
	}
}

func TestLogColumnAlignment(t *testing.T) {
	values := []dataset.Value{
		dataset.NewNumber(math.E),
		dataset.NewNumber(-1),
		dataset.NewText("x"),
	}
	result := LogColumn(values)
	assert.Equal(t, 3, len(result))
	assert.InDelta(t, 1.0, result[0].Num, 1e-12)
	assert.True(t, result[1].IsMissing())
	assert.True(t, result[2].IsMissing())
}
