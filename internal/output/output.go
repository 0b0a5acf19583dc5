// Package output renders response envelopes as JSON, YAML or indented text.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command.
var OutputFormat Format = FormatJSON

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout receives everything Print writes.
var Stdout io.Writer = os.Stdout

// ParseFormat validates a format name. "" and "auto" pick text for a
// terminal and JSON otherwise.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "", "auto":
		if IsOutputPiped() {
			return FormatJSON, nil
		}
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected json, yaml, text or auto)", s)
	}
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return true
	}
	return stat.Mode()&os.ModeCharDevice == 0
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(Stdout, OutputFormat, PrettyOutput, v)
}

// Fprint serializes v to w in format f.
func Fprint(w io.Writer, f Format, pretty bool, v interface{}) error {
	switch f {
	case FormatJSON:
		return PrintJSON(w, v, pretty)
	case FormatYAML:
		return PrintYAML(w, v)
	case FormatText:
		return PrintText(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}
