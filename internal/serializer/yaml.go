package serializer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"football-client/internal/domain"
)

const yamlIndent = 2

// YAMLSerializer is a structured alternative to JSON with the same read semantics.
type YAMLSerializer[T any] struct {
	dataDir     string
	path        string
	projections []Projection[T]
}

// NewYAML constructs a YAML serializer for <dataDir>/<entity>.yaml.
func NewYAML[T any](dataDir, entity string, opts Options[T]) *YAMLSerializer[T] {
	return &YAMLSerializer[T]{
		dataDir:     dataDir,
		path:        entityPath(dataDir, entity, FormatYAML),
		projections: opts.Projections,
	}
}

func (s *YAMLSerializer[T]) Format() Format { return FormatYAML }

func (s *YAMLSerializer[T]) Path() string { return s.path }

func (s *YAMLSerializer[T]) Write(c domain.Collection[T]) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := writeFile(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return writeProjections(s.dataDir, s.projections, c)
}

func (s *YAMLSerializer[T]) Read() (domain.Collection[T], error) {
	data, err := readIfExists(s.path)
	if err != nil || data == nil {
		return domain.Collection[T]{}, err
	}
	var c domain.Collection[T]
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.Collection[T]{}, &ParseError{Path: s.path, Format: FormatYAML, Err: err}
	}
	return c, nil
}
