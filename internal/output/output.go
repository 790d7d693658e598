package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jacoelho/lenient"
)

// Format determines how a value is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write prints v to w in the given format. Text output of an empty value is
// an empty line.
func Write(w io.Writer, format Format, v lenient.Value) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	case FormatText:
		fallthrough
	default:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}
}

func writeJSON(w io.Writer, v lenient.Value) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", payload)
	return err
}

func writeYAML(w io.Writer, v lenient.Value) error {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = w.Write(payload)
	return err
}
