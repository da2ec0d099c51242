package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"preproc/dataset"
	"preproc/logger"
)

var out io.Writer = os.Stdout

// load resolves the input argument: "-" for stdin, an existing file
// path, or a literal value.
func load(arg string) (*dataset.Collection, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return decode("", data)
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		col, err := decode(filepath.Ext(arg), data)
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded %d entries from %s", col.Len(), arg)
		return col, nil
	}
	return dataset.ParseLiteral(arg)
}

func decode(ext string, data []byte) (*dataset.Collection, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return dataset.DecodeCSV(data)
	case ".yaml", ".yml":
		return dataset.DecodeYAML(data)
	default:
		return dataset.DecodeJSON(data)
	}
}

// emit prints the result as JSON, or writes it to --output with the
// encoder picked by the path extension.
func emit(col *dataset.Collection) error {
	if outputPath == "" {
		data, err := dataset.EncodeJSON(col)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".csv":
		data, err = dataset.EncodeCSV(col)
	case ".yaml", ".yml":
		data, err = dataset.EncodeYAML(col)
	default:
		data, err = dataset.EncodeJSON(col)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	logger.Debugf("wrote %d entries to %s", col.Len(), outputPath)
	return nil
}

func splitFields(spec string) []string {
	parts := strings.Split(spec, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
