package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"preproc/dataset"
	"preproc/numeric"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	out = buf
	t.Cleanup(func() { out = os.Stdout })
	return buf
}

func TestLoadLiteral(t *testing.T) {
	col, err := load("1,2,none,hello")
	assert.NoError(t, err)
	assert.False(t, col.Tabular())
	assert.Equal(t, 4, col.Len())
	assert.True(t, col.Values[2].IsMissing())
}

func TestLoadRecordLiteral(t *testing.T) {
	col, err := load(`[{"a": 1}, {"a": 2}]`)
	assert.NoError(t, err)
	assert.True(t, col.Tabular())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	assert.NoError(t, os.WriteFile(path, []byte("a,b\n1,x\n2,\n"), 0644))
	col, err := load(path)
	assert.NoError(t, err)
	assert.True(t, col.Tabular())
	assert.Equal(t, 2, col.Len())
	assert.True(t, col.Records[1]["b"].IsMissing())
}

func TestNormalizeCommandList(t *testing.T) {
	buf := captureOutput(t)
	numericField = ""
	normLow, normHigh = 0, 1
	err := normalizeCmd.RunE(normalizeCmd, []string{"2,4,6,8,10"})
	assert.NoError(t, err)
	assert.Equal(t, "[0,0.25,0.5,0.75,1]\n", buf.String())
}

func TestNormalizeCommandRecords(t *testing.T) {
	buf := captureOutput(t)
	numericField = "x"
	normLow, normHigh = 0, 1
	err := normalizeCmd.RunE(normalizeCmd, []string{`[{"x": 2}, {"x": 4}]`})
	assert.NoError(t, err)
	assert.Equal(t, `[{"x":0},{"x":1}]`+"\n", buf.String())
}

func TestNormalizeCommandDegenerate(t *testing.T) {
	captureOutput(t)
	numericField = ""
	normLow, normHigh = 0, 1
	err := normalizeCmd.RunE(normalizeCmd, []string{"5,5,5"})
	var degenerate *numeric.DegenerateError
	assert.ErrorAs(t, err, &degenerate)
}

func TestFieldFlagOnListInput(t *testing.T) {
	captureOutput(t)
	numericField = "x"
	err := standardizeCmd.RunE(standardizeCmd, []string{"1,2,3"})
	var validation *dataset.ValidationError
	assert.ErrorAs(t, err, &validation)
	numericField = ""
}

func TestFillMissingCommandList(t *testing.T) {
	buf := captureOutput(t)
	fillField = ""
	fillValue = "NA"
	err := fillMissingCmd.RunE(fillMissingCmd, []string{"1,none,3"})
	assert.NoError(t, err)
	assert.Equal(t, `[1,"NA",3]`+"\n", buf.String())
}

func TestDropMissingCommand(t *testing.T) {
	buf := captureOutput(t)
	dropFields = "a"
	err := dropMissingCmd.RunE(dropMissingCmd, []string{`[{"a": 1}, {"a": null}, {"a": 3}]`})
	assert.NoError(t, err)
	assert.Equal(t, `[{"a":1},{"a":3}]`+"\n", buf.String())
}

func TestDropMissingUnknownField(t *testing.T) {
	captureOutput(t)
	dropFields = "zzz"
	err := dropMissingCmd.RunE(dropMissingCmd, []string{`[{"a": 1}]`})
	var missing *dataset.MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestUniqueCommand(t *testing.T) {
	buf := captureOutput(t)
	uniqueField = ""
	err := uniqueCmd.RunE(uniqueCmd, []string{"1,2,2,3,1"})
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", buf.String())
}

func TestFlattenCommand(t *testing.T) {
	buf := captureOutput(t)
	err := flattenCmd.RunE(flattenCmd, []string{`[[1,2],[3,4],[5]]`})
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5]\n", buf.String())
}

func TestShuffleCommandDeterministic(t *testing.T) {
	buf := captureOutput(t)
	shuffleSeed = 42
	err := shuffleCmd.RunE(shuffleCmd, []string{"1,2,3,4,5"})
	assert.NoError(t, err)
	first := buf.String()

	buf.Reset()
	err = shuffleCmd.RunE(shuffleCmd, []string{"1,2,3,4,5"})
	assert.NoError(t, err)
	assert.Equal(t, first, buf.String())
}

func TestTokenizeCommandField(t *testing.T) {
	buf := captureOutput(t)
	textField = "s"
	tokenDelim = ""
	err := tokenizeCmd.RunE(tokenizeCmd, []string{`[{"s": "a b"}]`})
	assert.NoError(t, err)
	assert.Equal(t, `[{"s":["a","b"]}]`+"\n", buf.String())
	textField = ""
}

func TestEmitToCSVFile(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	outputPath = path
	t.Cleanup(func() { outputPath = "" })

	fillField = "b"
	fillValue = "0"
	err := fillMissingCmd.RunE(fillMissingCmd, []string{`[{"a": "x", "b": null}]`})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "a,b\nx,0\n", string(data))
}
