package cmd

import (
	"github.com/spf13/cobra"

	"preproc/dataset"
	"preproc/text"
)

var (
	textField     string
	tokenDelim    string
	stopwordsFlag string
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text tokenization and normalization",
}

// applyText maps fn over text values: a record column when --field is
// set, every text value of a plain sequence otherwise. Non-text values
// pass through unchanged.
func applyText(arg string, fn func(string) dataset.Value) error {
	col, err := load(arg)
	if err != nil {
		return err
	}
	mapValues := func(values []dataset.Value) []dataset.Value {
		out := make([]dataset.Value, len(values))
		for i, v := range values {
			if v.Kind == dataset.Text {
				out[i] = fn(v.Str)
			} else {
				out[i] = v
			}
		}
		return out
	}
	if col.Tabular() {
		if textField == "" {
			return &dataset.ValidationError{Msg: "--field is required for record input"}
		}
		column, err := dataset.Column(col.Records, textField)
		if err != nil {
			return err
		}
		col.Records = dataset.ReplaceColumn(col.Records, textField, mapValues(column))
		return emit(col)
	}
	if textField != "" {
		return &dataset.ValidationError{Msg: "--field requires record input"}
	}
	col.Values = mapValues(col.Values)
	return emit(col)
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [input]",
	Short: "Split text into tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyText(args[0], func(s string) dataset.Value {
			return dataset.NewList(dataset.TextValues(text.Tokenize(s, tokenDelim)))
		})
	},
}

var stripPunctuationCmd = &cobra.Command{
	Use:   "strip-punctuation [input]",
	Short: "Remove ASCII punctuation characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyText(args[0], func(s string) dataset.Value {
			return dataset.NewText(text.RemovePunctuation(s))
		})
	},
}

var lowercaseCmd = &cobra.Command{
	Use:   "lowercase [input]",
	Short: "Case-fold text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyText(args[0], func(s string) dataset.Value {
			return dataset.NewText(text.Lowercase(s))
		})
	},
}

var removeStopwordsCmd = &cobra.Command{
	Use:   "remove-stopwords [input]",
	Short: "Remove the given words from text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words := splitFields(stopwordsFlag)
		if len(words) == 0 {
			return &dataset.ValidationError{Msg: "--stopwords must name at least one word"}
		}
		return applyText(args[0], func(s string) dataset.Value {
			return dataset.NewText(text.RemoveStopWords(s, words))
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{tokenizeCmd, stripPunctuationCmd, lowercaseCmd, removeStopwordsCmd} {
		c.Flags().StringVar(&textField, "field", "", "field holding the text")
	}
	tokenizeCmd.Flags().StringVar(&tokenDelim, "delimiter", "", "token delimiter (default: whitespace)")
	removeStopwordsCmd.Flags().StringVar(&stopwordsFlag, "stopwords", "", "comma-separated words to remove")

	textCmd.AddCommand(tokenizeCmd)
	textCmd.AddCommand(stripPunctuationCmd)
	textCmd.AddCommand(lowercaseCmd)
	textCmd.AddCommand(removeStopwordsCmd)
}
