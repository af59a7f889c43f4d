package render

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ngmap/internal/errors"
	"ngmap/internal/output"
)

// Format is a structured output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", errors.NewError(errors.UnsupportedFormat, fmt.Sprintf("unknown output format %q", name), nil)
	}
}

// Encode writes report to w in a structured format. Text is not a structured
// format and is rejected.
func Encode(w io.Writer, format Format, report *Report) error {
	switch format {
	case FormatJSON:
		data, err := output.DeterministicEncodeIndented(report, "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(report)
	default:
		return errors.NewError(errors.UnsupportedFormat, fmt.Sprintf("%q is not a structured format", format), nil)
	}
}
