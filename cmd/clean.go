package cmd

import (
	"github.com/spf13/cobra"

	"preproc/clean"
	"preproc/dataset"
)

var (
	dropFields string
	fillField  string
	fillValue  string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Missing-value cleaning",
}

var dropMissingCmd = &cobra.Command{
	Use:   "drop-missing [input]",
	Short: "Drop records holding a missing value in any of the given fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		if !col.Tabular() {
			return &dataset.ValidationError{Msg: "drop-missing requires record input; use remove-missing for plain lists"}
		}
		fields := splitFields(dropFields)
		if len(fields) == 0 {
			return &dataset.ValidationError{Msg: "--fields must name at least one field"}
		}
		records, err := clean.DropMissing(col.Records, fields)
		if err != nil {
			return err
		}
		col.Records = records
		return emit(col)
	},
}

var removeMissingCmd = &cobra.Command{
	Use:   "remove-missing [input]",
	Short: "Remove missing values from a plain list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		if col.Tabular() {
			return &dataset.ValidationError{Msg: "remove-missing works on plain lists; use drop-missing for records"}
		}
		col.Values = clean.RemoveMissing(col.Values)
		return emit(col)
	},
}

var fillMissingCmd = &cobra.Command{
	Use:   "fill-missing [input]",
	Short: "Replace missing values with a fill value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := load(args[0])
		if err != nil {
			return err
		}
		fill := dataset.SmartCast(fillValue)
		if col.Tabular() {
			if fillField == "" {
				return &dataset.ValidationError{Msg: "--field is required for record input"}
			}
			records, err := clean.FillMissing(col.Records, fillField, fill)
			if err != nil {
				return err
			}
			col.Records = records
			return emit(col)
		}
		if fillField != "" {
			return &dataset.ValidationError{Msg: "--field requires record input"}
		}
		col.Values = clean.FillMissingValues(col.Values, fill)
		return emit(col)
	},
}

func init() {
	dropMissingCmd.Flags().StringVar(&dropFields, "fields", "", "comma-separated fields that must all be present")
	fillMissingCmd.Flags().StringVar(&fillField, "field", "", "field to fill")
	fillMissingCmd.Flags().StringVar(&fillValue, "value", "0", "replacement for missing values")

	cleanCmd.AddCommand(dropMissingCmd)
	cleanCmd.AddCommand(removeMissingCmd)
	cleanCmd.AddCommand(fillMissingCmd)
}
