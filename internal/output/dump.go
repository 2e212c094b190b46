// Package output serializes analysis results. One FileReport per analyzed
// file, emitted as JSON (default), YAML, TOML or CBOR, either to a writer or
// as one file per report under an output directory.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/corey/mehen/internal/domain/spaces"
)

// FileReport is the full analysis result for one source file. Unit is the
// root of the space tree; Degraded mirrors the unit's flag so consumers that
// only skim headers need not descend.
type FileReport struct {
	Path     string        `json:"path" yaml:"path" toml:"path" cbor:"path"`
	Language string        `json:"language" yaml:"language" toml:"language" cbor:"language"`
	Degraded bool          `json:"degraded" yaml:"degraded" toml:"degraded" cbor:"degraded"`
	Unit     *spaces.Space `json:"unit" yaml:"unit" toml:"unit" cbor:"unit"`
}

// Format selects the serialization codec.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTOML, FormatCBOR:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (json, yaml, toml, cbor)", s)
}

// Marshal encodes a report in the given format. pretty only affects JSON.
func Marshal(r *FileReport, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		if pretty {
			return json.MarshalIndent(r, "", "  ")
		}
		return json.Marshal(r)
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatTOML:
		return toml.Marshal(r)
	case FormatCBOR:
		return cbor.Marshal(r)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Write encodes a report to w, newline-terminated for the text formats.
func Write(w io.Writer, r *FileReport, format Format, pretty bool) error {
	data, err := Marshal(r, format, pretty)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if format != FormatCBOR {
		_, err = w.Write([]byte("\n"))
	}
	return err
}

// WriteFile writes a report as <basename>.<format> under dir, creating dir
// if needed.
func WriteFile(dir string, r *FileReport, format Format, pretty bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := Marshal(r, format, pretty)
	if err != nil {
		return "", err
	}
	name := filepath.Base(r.Path) + "." + string(format)
	out := filepath.Join(dir, name)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", err
	}
	return out, nil
}
