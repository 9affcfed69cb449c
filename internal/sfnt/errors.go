package sfnt

import (
	"errors"
	"fmt"
)

// Failure classes reported inside a ParseError.
var (
	// ErrTruncated indicates that a header, directory or table runs past the
	// end of the data.
	ErrTruncated = errors.New("truncated data")

	// ErrVersion indicates an unknown sfnt or collection version tag.
	ErrVersion = errors.New("unsupported sfnt version")

	// ErrFaceIndex indicates a face index outside the file's faces.
	ErrFaceIndex = errors.New("face index out of range")

	// ErrMissingTable indicates that a required table is absent.
	ErrMissingTable = errors.New("missing table")

	// ErrBadTable indicates a table whose contents are invalid.
	ErrBadTable = errors.New("bad table")
)

// ParseError reports why a face could not be parsed.
type ParseError struct {
	// Index is the face index that was requested.
	Index uint32

	// Table is the sfnt tag of the offending table, empty when the failure
	// is in the file header or table directory.
	Table string

	// Err is one of the failure classes above.
	Err error
}

func (e *ParseError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("face %d: %q table: %v", e.Index, e.Table, e.Err)
	}
	return fmt.Sprintf("face %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
