package genome

import (
	"errors"
	"fmt"

	"refgenome-core/fasta"
)

var (
	// ErrShortHeader: the header cannot hold an identifier.
	ErrShortHeader = fasta.ErrShortHeader
	// ErrInvalidUTF8: a header or sequence line is not valid UTF-8.
	ErrInvalidUTF8 = fasta.ErrInvalidUTF8
	// ErrDuplicateID: two records resolve to the same identifier.
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrNoHeader: the input does not open with a header line.
	ErrNoHeader = errors.New("first line is not a header")
	// ErrHeaderInFlat: a '>' line inside input read as the flattened layout.
	ErrHeaderInFlat = errors.New("header line in flattened input")
)

// ParseError locates a fatal parse failure. Line is 1-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
