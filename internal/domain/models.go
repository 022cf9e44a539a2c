package domain

// Record is one addressable entry of an entity collection.
// Either the id or the name is enough to find a record inside its collection.
type Record interface {
	RecordID() string
	RecordName() string
}

// Paging mirrors the provider pagination block.
type Paging struct {
	Current int `json:"current" yaml:"current"`
	Total   int `json:"total" yaml:"total"`
}

// Collection is the provider response envelope for one entity kind (leagues, countries, ...).
// It is replaced wholesale on refetch and never mutated in place.
type Collection[T any] struct {
	Get        string     `json:"get" yaml:"get"`
	Parameters Parameters `json:"parameters" yaml:"parameters,omitempty"`
	Errors     APIErrors  `json:"errors" yaml:"errors,omitempty"`
	Results    int        `json:"results" yaml:"results"`
	Paging     Paging     `json:"paging" yaml:"paging"`
	Response   []T        `json:"response" yaml:"response"`
}

// NewCollection builds an envelope for the given entity with results/paging filled in.
func NewCollection[T any](entity string, records []T) Collection[T] {
	return Collection[T]{
		Get:      entity,
		Results:  len(records),
		Paging:   Paging{Current: 1, Total: 1},
		Response: records,
	}
}

// Empty reports whether the collection carries no records.
func (c Collection[T]) Empty() bool {
	return len(c.Response) == 0
}

// Records returns a copy of the records so callers cannot alter the cached slice.
func (c Collection[T]) Records() []T {
	out := make([]T, len(c.Response))
	copy(out, c.Response)
	return out
}

// Wire returns a copy whose empty parameters, errors and response encode as the
// provider's [] instead of null.
func (c Collection[T]) Wire() Collection[T] {
	if c.Parameters == nil {
		c.Parameters = Parameters{}
	}
	if c.Errors == nil {
		c.Errors = APIErrors{}
	}
	if c.Response == nil {
		c.Response = []T{}
	}
	return c
}
