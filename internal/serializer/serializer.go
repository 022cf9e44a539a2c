package serializer

import "football-client/internal/domain"

// Serializer persists an entity collection in one format at a fixed path.
type Serializer[T any] interface {
	Format() Format
	Path() string
	Write(domain.Collection[T]) error
}

// CollectionReader is implemented by structured formats that can rebuild the full collection.
// A missing or blank file yields an empty collection and no error.
type CollectionReader[T any] interface {
	Read() (domain.Collection[T], error)
}

// Cache is a structured serializer usable as the on-disk resolution tier.
type Cache[T any] interface {
	Serializer[T]
	CollectionReader[T]
}

// Row is one delimited record keyed by header.
type Row map[string]string

// RowReader is implemented by the delimited format. Rows keep the written text,
// so multi-valued fields come back as the joined string.
type RowReader interface {
	ReadRows() ([]Row, error)
}

// Column renders one delimited field of a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Projection is a derived view written next to the primary file as <name>.json.
// Projections are recomputed on every write and never read back.
type Projection[T any] struct {
	Name  string
	Build func(domain.Collection[T]) any
}

// Options tunes a serializer for one entity. The zero value selects generic behavior.
type Options[T any] struct {
	Columns     []Column[T]
	Delimiter   rune
	Projections []Projection[T]
}

const defaultDelimiter = '\t'
