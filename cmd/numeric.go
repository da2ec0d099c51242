package cmd

import (
	"github.com/spf13/cobra"

	"preproc/dataset"
	"preproc/numeric"
)

var (
	numericField string
	normLow      float64
	normHigh     float64
	clipLow      float64
	clipHigh     float64
)

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Numeric rescaling and casting",
}

// applyNumeric runs fn over the selected float series: a record column
// when --field is set, the whole sequence otherwise. Missing values are
// rejected by dataset.Floats; clean first.
func applyNumeric(arg string, fn func([]float64) ([]float64, error)) error {
	col, err := load(arg)
	if err != nil {
		return err
	}
	if col.Tabular() {
		if numericField == "" {
			return &dataset.ValidationError{Msg: "--field is required for record input"}
		}
		column, err := dataset.Column(col.Records, numericField)
		if err != nil {
			return err
		}
		floats, err := dataset.Floats(column)
		if err != nil {
			return err
		}
		result, err := fn(floats)
		if err != nil {
			return err
		}
		col.Records = dataset.ReplaceColumn(col.Records, numericField, dataset.NumberValues(result))
		return emit(col)
	}
	if numericField != "" {
		return &dataset.ValidationError{Msg: "--field requires record input"}
	}
	floats, err := dataset.Floats(col.Values)
	if err != nil {
		return err
	}
	result, err := fn(floats)
	if err != nil {
		return err
	}
	col.Values = dataset.NumberValues(result)
	return emit(col)
}

// applyColumn is for ops that keep column alignment by writing missing
// sentinels (to-int, log-transform on records). On plain lists listFn
// may shrink the sequence instead.
func applyColumn(arg string, columnFn func([]dataset.Value) []dataset.Value, listFn func([]dataset.Value) []dataset.Value) error {
	col, err := load(arg)
	if err != nil {
		return err
	}
	if col.Tabular() {
		if numericField == "" {
			return &dataset.ValidationError{Msg: "--field is required for record input"}
		}
		column, err := dataset.Column(col.Records, numericField)
		if err != nil {
			return err
		}
		col.Records = dataset.ReplaceColumn(col.Records, numericField, columnFn(column))
		return emit(col)
	}
	if numericField != "" {
		return &dataset.ValidationError{Msg: "--field requires record input"}
	}
	col.Values = listFn(col.Values)
	return emit(col)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [input]",
	Short: "Min-max rescale into [low, high]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyNumeric(args[0], func(values []float64) ([]float64, error) {
			return numeric.NormalizeRange(values, normLow, normHigh)
		})
	},
}

var standardizeCmd = &cobra.Command{
	Use:   "standardize [input]",
	Short: "Rescale to z-scores (mean 0, stddev 1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyNumeric(args[0], numeric.Standardize)
	},
}

var clipCmd = &cobra.Command{
	Use:   "clip [input]",
	Short: "Clamp values into [low, high]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyNumeric(args[0], func(values []float64) ([]float64, error) {
			return numeric.Clip(values, clipLow, clipHigh)
		})
	},
}

var toIntCmd = &cobra.Command{
	Use:   "to-int [input]",
	Short: "Cast values to integers, truncating toward zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyColumn(args[0], numeric.ToIntColumn, func(values []dataset.Value) []dataset.Value {
			ints := numeric.ToInt(values)
			out := make([]dataset.Value, len(ints))
			for i, n := range ints {
				out[i] = dataset.NewNumber(float64(n))
			}
			return out
		})
	},
}

var logTransformCmd = &cobra.Command{
	Use:   "log-transform [input]",
	Short: "Natural log of positive values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyColumn(args[0], numeric.LogColumn, func(values []dataset.Value) []dataset.Value {
			return dataset.NumberValues(numeric.LogScale(dataset.CastFloats(values)))
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{normalizeCmd, standardizeCmd, clipCmd, toIntCmd, logTransformCmd} {
		c.Flags().StringVar(&numericField, "field", "", "field holding the numeric series")
	}
	normalizeCmd.Flags().Float64Var(&normLow, "low", 0, "new minimum")
	normalizeCmd.Flags().Float64Var(&normHigh, "high", 1, "new maximum")
	clipCmd.Flags().Float64Var(&clipLow, "low", 0, "lower clip bound")
	clipCmd.Flags().Float64Var(&clipHigh, "high", 1, "upper clip bound")

	numericCmd.AddCommand(normalizeCmd)
	numericCmd.AddCommand(standardizeCmd)
	numericCmd.AddCommand(clipCmd)
	numericCmd.AddCommand(toIntCmd)
	numericCmd.AddCommand(logTransformCmd)
}
