package serializer

import "fmt"

// Profile carries the entity-specific options applied when the factory builds
// a serializer for that entity. Formats without an override use generic options.
type Profile[T any] struct {
	Entity    string
	Overrides map[Format]Options[T]
}

// Factory maps (format, entity) to a serializer rooted at one data directory.
type Factory[T any] struct {
	dataDir  string
	profiles map[string]Profile[T]
}

// NewFactory constructs a factory with the given entity profiles.
func NewFactory[T any](dataDir string, profiles ...Profile[T]) *Factory[T] {
	byEntity := make(map[string]Profile[T], len(profiles))
	for _, p := range profiles {
		byEntity[p.Entity] = p
	}
	return &Factory[T]{dataDir: dataDir, profiles: byEntity}
}

// DataDir exposes the factory root.
func (f *Factory[T]) DataDir() string {
	return f.dataDir
}

// Create builds the serializer for format and entity. Unknown entities get the
// generic serializer with the entity name as file stem; unknown formats fail.
func (f *Factory[T]) Create(format Format, entity string) (Serializer[T], error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported serializer %q for entity %q", ErrInvalidConfiguration, format, entity)
	}

	opts := f.options(format, entity)
	switch format {
	case FormatTSV:
		return NewTSV(f.dataDir, entity, opts), nil
	case FormatYAML:
		return NewYAML(f.dataDir, entity, opts), nil
	default:
		return NewJSON(f.dataDir, entity, opts), nil
	}
}

// CreateCache builds the structured JSON serializer used as the disk resolution tier.
func (f *Factory[T]) CreateCache(entity string) (Cache[T], error) {
	s, err := f.Create(FormatJSON, entity)
	if err != nil {
		return nil, err
	}
	cache, ok := s.(Cache[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s serializer for %q cannot be read back", ErrInvalidConfiguration, s.Format(), entity)
	}
	return cache, nil
}

func (f *Factory[T]) options(format Format, entity string) Options[T] {
	profile, ok := f.profiles[entity]
	if !ok {
		return Options[T]{}
	}
	return profile.Overrides[format]
}
