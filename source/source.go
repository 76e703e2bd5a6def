// Package source decodes raw documents (JSON or YAML) into the plain Go values
// schemas parse: map[string]any, []any, string, bool, nil, int64 and float64.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml", "yml", "auto" or "".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("source: unknown format %q", s)
}

// DefaultMaxBytes caps input size when Options.MaxBytes is zero.
const DefaultMaxBytes = 16 << 20

// ErrTooLarge is returned when the input exceeds the byte cap.
var ErrTooLarge = errors.New("source: input exceeds size limit")

// Options controls Read.
type Options struct {
	Format Format
	// Name is used for extension-based format detection ("x.yaml").
	Name string
	// MaxBytes caps the input size; zero means DefaultMaxBytes, negative
	// means unlimited.
	MaxBytes int64
}

// Read consumes r and decodes a single document.
func Read(r io.Reader, opt Options) (any, error) {
	limit := opt.MaxBytes
	if limit == 0 {
		limit = DefaultMaxBytes
	}
	var data []byte
	var err error
	if limit > 0 {
		data, err = io.ReadAll(io.LimitReader(r, limit+1))
		if err == nil && int64(len(data)) > limit {
			return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
		}
	} else {
		data, err = io.ReadAll(r)
	}
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	return Decode(data, Detect(opt.Format, opt.Name, data))
}

// Detect resolves FormatAuto by file extension, then by content: input whose
// first non-blank byte opens a JSON object or array is JSON, anything else
// is YAML (which also covers JSON scalars).
func Detect(f Format, name string, data []byte) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes data in the given format. FormatAuto is detected from
// content.
func Decode(data []byte, f Format) (any, error) {
	switch Detect(f, "", data) {
	case FormatJSON:
		return JSON(data)
	default:
		return YAML(data)
	}
}

// JSON decodes exactly one JSON value. Numbers are read as json.Number and
// then narrowed to int64 when integral, float64 otherwise.
func JSON(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("source: json: trailing data after value")
	}
	return normalize(v)
}

// YAML decodes the first YAML document. An empty document decodes to nil.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	return normalize(v)
}

// normalize converts decoder-specific shapes to plain values: map keys
// become strings and json.Number is narrowed.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			n, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			n, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			n, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = n
		}
		return arr, nil
	case j.Number:
		return narrow(string(t))
	case int:
		return int64(t), nil
	default:
		return v, nil
	}
}

func narrow(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("source: number %q: %w", s, err)
	}
	return f, nil
}
