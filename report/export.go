// Package report renders and exports simulation reports.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

// Format selects an output encoding.
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatFlatBuffer Format = "fbs"
)

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML, FormatFlatBuffer:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Options tune the text rendering.
type Options struct {
	// Sample is the number of rally logs listed in text output.
	Sample int
}

// DefaultSample is the number of rally logs shown by default.
const DefaultSample = 10

// Write encodes rep to w in the given format.
func Write(w io.Writer, rep *simulation.Report, format Format, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, rep, opts.Sample)
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatYAML:
		return WriteYAML(w, rep)
	case FormatFlatBuffer:
		_, err := w.Write(EncodeFlatBuffer(rep))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, rep *simulation.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes the full report as YAML.
func WriteYAML(w io.Writer, rep *simulation.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
