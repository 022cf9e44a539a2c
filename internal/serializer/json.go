package serializer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"football-client/internal/domain"
)

// JSONSerializer writes the collection verbatim as an indented JSON document.
type JSONSerializer[T any] struct {
	dataDir     string
	path        string
	projections []Projection[T]
}

// NewJSON constructs a JSON serializer for <dataDir>/<entity>.json.
func NewJSON[T any](dataDir, entity string, opts Options[T]) *JSONSerializer[T] {
	return &JSONSerializer[T]{
		dataDir:     dataDir,
		path:        entityPath(dataDir, entity, FormatJSON),
		projections: opts.Projections,
	}
}

func (s *JSONSerializer[T]) Format() Format { return FormatJSON }

func (s *JSONSerializer[T]) Path() string { return s.path }

// Write stores the collection, then any configured projections.
func (s *JSONSerializer[T]) Write(c domain.Collection[T]) error {
	data, err := json.MarshalIndent(c.Wire(), "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return writeProjections(s.dataDir, s.projections, c)
}

// Read loads the primary document only. Missing or blank files are an empty collection.
func (s *JSONSerializer[T]) Read() (domain.Collection[T], error) {
	data, err := readIfExists(s.path)
	if err != nil || data == nil {
		return domain.Collection[T]{}, err
	}
	var c domain.Collection[T]
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Collection[T]{}, &ParseError{Path: s.path, Format: FormatJSON, Err: err}
	}
	return c, nil
}

// readIfExists returns nil data (and no error) for a missing or whitespace-only file.
func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}
