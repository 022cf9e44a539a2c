package serializer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned for unsupported format/entity pairings.
var ErrInvalidConfiguration = errors.New("invalid serializer configuration")

// ParseError reports a cache file that exists but cannot be decoded.
// It is not a cache miss: resolution stops until the file is fixed or removed.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
