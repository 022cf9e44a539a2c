package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const outputIndent = "  "

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", outputIndent)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// writeNotFound prints the empty result.
func writeNotFound(w io.Writer) error {
	_, err := fmt.Fprintln(w, "{}")
	return err
}
