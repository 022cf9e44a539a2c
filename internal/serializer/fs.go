package serializer

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"football-client/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const jsonIndent = "    "

// entityPath builds <dataDir>/<stem>.<ext>.
func entityPath(dataDir, stem string, format Format) string {
	return filepath.Join(dataDir, fmt.Sprintf("%s.%s", stem, format.Extension()))
}

// writeFile replaces target through a sibling temp file. The directory must already exist.
func writeFile(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func writeProjections[T any](dataDir string, projections []Projection[T], c domain.Collection[T]) error {
	for _, p := range projections {
		data, err := json.MarshalIndent(p.Build(c), "", jsonIndent)
		if err != nil {
			return fmt.Errorf("encode projection %s: %w", p.Name, err)
		}
		if err := writeFile(entityPath(dataDir, p.Name, FormatJSON), data); err != nil {
			return fmt.Errorf("write projection %s: %w", p.Name, err)
		}
	}
	return nil
}
