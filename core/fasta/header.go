// core/fasta/header.go
package fasta

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// HeaderMarker starts every FASTA header line.
const HeaderMarker = '>'

// Fixed-width accession window: 15 bytes right after the marker.
const (
	AccessionOffset = 1
	AccessionWidth  = 15
)

var (
	// ErrShortHeader reports a header that cannot hold an identifier.
	ErrShortHeader = errors.New("header too short for identifier")
	// ErrInvalidUTF8 reports bytes that do not form valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// IsHeader reports whether line opens a new record.
func IsHeader(line []byte) bool {
	return len(line) > 0 && line[0] == HeaderMarker
}

// FixedWidthID returns bytes [1,16) of hdr. The result aliases hdr.
// Anything shorter than 16 bytes is ErrShortHeader; a window that cuts a
// multi-byte character is ErrInvalidUTF8.
func FixedWidthID(hdr []byte) ([]byte, error) {
	end := AccessionOffset + AccessionWidth
	if len(hdr) < end {
		return nil, ErrShortHeader
	}
	id := hdr[AccessionOffset:end]
	if !utf8.Valid(id) {
		return nil, ErrInvalidUTF8
	}
	return id, nil
}

// FirstTokenID returns the header token up to the first space or tab,
// marker excluded. The result aliases hdr.
func FirstTokenID(hdr []byte) ([]byte, error) {
	if IsHeader(hdr) {
		hdr = hdr[1:]
	}
	hdr = bytes.TrimLeft(hdr, " \t")
	if i := bytes.IndexAny(hdr, " \t\r"); i >= 0 {
		hdr = hdr[:i]
	}
	if len(hdr) == 0 {
		return nil, ErrShortHeader
	}
	return hdr, nil
}
