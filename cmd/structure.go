package cmd

import (
	"github.com/spf13/cobra"

	"preproc/dataset"
	"preproc/seq"
)

var (
	uniqueField string
	shuffleSeed int64
)

var structCmd = &cobra.Command{
	Use:   "struct",
	Short: "Structural operations on collections",
}

var flattenCmd = &cobra.Command{
	Use:   "flatten [input]",
	Short: "Flatten nested lists depth-first into one level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		if col.Tabular() {
			return &dataset.ValidationError{Msg: "flatten requires list input"}
		}
		col.Values = seq.Flatten(col.Values)
		return emit(col)
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [input]",
	Short: "Deterministically shuffle with an explicit seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		if col.Tabular() {
			col.Records = seq.ShuffleRecords(col.Records, shuffleSeed)
		} else {
			col.Values = seq.Shuffle(col.Values, shuffleSeed)
		}
		return emit(col)
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique [input]",
	Short: "Keep first occurrences, preserving order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		if col.Tabular() {
			if uniqueField == "" {
				return &dataset.ValidationError{Msg: "--field is required for record input"}
			}
			records, err := seq.UniqueByField(col.Records, uniqueField)
			if err != nil {
				return err
			}
			col.Records = records
			return emit(col)
		}
		if uniqueField != "" {
			return &dataset.ValidationError{Msg: "--field requires record input"}
		}
		col.Values = seq.Unique(col.Values)
		return emit(col)
	},
}

func init() {
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "seed for the shuffle permutation")
	shuffleCmd.MarkFlagRequired("seed")
	uniqueCmd.Flags().StringVar(&uniqueField, "field", "", "field to deduplicate records on")

	structCmd.AddCommand(flattenCmd)
	structCmd.AddCommand(shuffleCmd)
	structCmd.AddCommand(uniqueCmd)
}
