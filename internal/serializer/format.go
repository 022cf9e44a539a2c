package serializer

import (
	"fmt"
	"strings"
)

// Format names an on-disk representation of an entity collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatTSV  Format = "tsv"
	FormatYAML Format = "yaml"
)

// SupportedFormats lists every format the factory can build, in help-text order.
var SupportedFormats = []Format{FormatJSON, FormatTSV, FormatYAML}

// ParseFormat maps a user-supplied name to a Format.
// "csv" is kept as an alias for the tab-separated writer and "yml" for yaml.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON, nil
	case "tsv", "csv":
		return FormatTSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported serializer %q", ErrInvalidConfiguration, raw)
	}
}

// Valid reports whether the factory knows how to build this format.
func (f Format) Valid() bool {
	for _, known := range SupportedFormats {
		if f == known {
			return true
		}
	}
	return false
}

// Extension is the file extension used for the format.
func (f Format) Extension() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}
