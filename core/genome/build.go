package genome

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"
	"unsafe"

	"refgenome-core/fasta"
)

// IDFunc extracts a record identifier from a full header line, marker
// included. The returned slice may alias the header.
type IDFunc func(header []byte) ([]byte, error)

// Format selects how Build interprets its input.
type Format int

const (
	// FormatAuto picks FASTA when any line opens with '>', flattened otherwise.
	FormatAuto Format = iota
	// FormatFASTA: '>' headers followed by sequence lines.
	FormatFASTA
	// FormatFlat: alternating identifier and sequence lines, as written by WriteTo.
	FormatFlat
)

// DuplicatePolicy decides what happens when two records resolve to the
// same identifier.
type DuplicatePolicy int

const (
	// DuplicateReject fails the build with ErrDuplicateID.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateReplace keeps the later record. The earlier sequence stays
	// in the condensed buffer but no identifier reaches it, and Range
	// reports offsets inside it as not found.
	DuplicateReplace
)

type config struct {
	idf    IDFunc
	format Format
	dups   DuplicatePolicy
}

// Option tunes Build, Read and Open.
type Option func(*config)

// WithIDFunc replaces the default fixed-width identifier window.
func WithIDFunc(f IDFunc) Option {
	return func(c *config) {
		if f != nil {
			c.idf = f
		}
	}
}

// WithDuplicates sets the duplicate identifier policy.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(c *config) { c.dups = p }
}

// WithFormat forces an input format instead of sniffing it.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// Open reads the file at path and builds a Genome from it.
func Open(path string, opts ...Option) (*Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Build(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read drains r and builds a Genome from its contents.
func Read(r io.Reader, opts ...Option) (*Genome, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Build(data, opts...)
}

// Build parses data in a single pass. Any failure aborts the whole build;
// no partial Genome is returned. data is not retained.
func Build(data []byte, opts ...Option) (*Genome, error) {
	cfg := config{idf: fasta.FixedWidthID}
	for _, o := range opts {
		o(&cfg)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	format := cfg.format
	if format == FormatAuto {
		format = sniff(data)
	}

	b := &builder{
		idf:       cfg.idf,
		replace:   cfg.dups == DuplicateReplace,
		condensed: make([]byte, 0, len(data)),
		spans:     make(map[string]Span),
	}
	var err error
	if format == FormatFlat {
		err = b.flat(data)
	} else {
		err = b.fasta(data)
	}
	if err != nil {
		return nil, err
	}
	return b.finish(), nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// sniff picks FASTA when any line opens with '>', so FASTA with a
// leading comment or blank line still fails as FASTA.
func sniff(data []byte) Format {
	if len(data) == 0 || data[0] == fasta.HeaderMarker || bytes.Contains(data, []byte{'\n', fasta.HeaderMarker}) {
		return FormatFASTA
	}
	return FormatFlat
}

type builder struct {
	idf       IDFunc
	replace   bool
	condensed []byte
	spans     map[string]Span
	order     []string
	positions []posKey
	stats     Stats
}

// fasta walks header and data lines. A header closes the record opened by
// the previously held header; the last held record is closed after the
// loop.
func (b *builder) fasta(data []byte) error {
	lines := fasta.NewLines(data, '\n')
	first, ok := lines.Next()
	if !ok {
		return nil
	}
	if !fasta.IsHeader(first) {
		return &ParseError{Line: 1, Err: ErrNoHeader}
	}
	held, err := b.headerID(first)
	if err != nil {
		return &ParseError{Line: 1, Err: err}
	}
	heldLine, lineNo, start := 1, 1, 0

	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		lineNo++
		if fasta.IsHeader(line) {
			id, err := b.headerID(line)
			if err != nil {
				return &ParseError{Line: lineNo, Err: err}
			}
			if err := b.insert(held, Span{Start: start, End: len(b.condensed)}); err != nil {
				return &ParseError{Line: heldLine, Err: err}
			}
			start = len(b.condensed)
			held, heldLine = id, lineNo
			continue
		}
		if err := b.data(line); err != nil {
			return &ParseError{Line: lineNo, Err: err}
		}
	}

	if err := b.insert(held, Span{Start: start, End: len(b.condensed)}); err != nil {
		return &ParseError{Line: heldLine, Err: err}
	}
	return nil
}

// flat reads the two-line-per-record layout. A trailing identifier with
// no sequence line is an empty record.
func (b *builder) flat(data []byte) error {
	lines := fasta.NewLines(data, '\n')
	lineNo := 0
	for {
		idLine, ok := lines.Next()
		if !ok {
			return nil
		}
		lineNo++
		if len(idLine) == 0 {
			return &ParseError{Line: lineNo, Err: ErrShortHeader}
		}
		if fasta.IsHeader(idLine) {
			return &ParseError{Line: lineNo, Err: ErrHeaderInFlat}
		}
		if !utf8.Valid(idLine) {
			return &ParseError{Line: lineNo, Err: ErrInvalidUTF8}
		}
		b.stats.HeaderLines++
		idAt := lineNo
		start := len(b.condensed)

		if seq, ok := lines.Next(); ok {
			lineNo++
			if fasta.IsHeader(seq) {
				return &ParseError{Line: lineNo, Err: ErrHeaderInFlat}
			}
			if err := b.data(seq); err != nil {
				return &ParseError{Line: lineNo, Err: err}
			}
		}
		if err := b.insert(string(idLine), Span{Start: start, End: len(b.condensed)}); err != nil {
			return &ParseError{Line: idAt, Err: err}
		}
	}
}

func (b *builder) headerID(line []byte) (string, error) {
	if !utf8.Valid(line) {
		return "", ErrInvalidUTF8
	}
	id, err := b.idf(line)
	if err != nil {
		return "", err
	}
	b.stats.HeaderLines++
	return string(id), nil
}

func (b *builder) data(line []byte) error {
	if !utf8.Valid(line) {
		return ErrInvalidUTF8
	}
	b.condensed = append(b.condensed, line...)
	b.stats.DataLines++
	return nil
}

// insert records sp under id in both indexes. Records sharing a start
// (empty sequences) leave the position index pointing at the last one.
func (b *builder) insert(id string, sp Span) error {
	if _, dup := b.spans[id]; dup {
		if !b.replace {
			return fmt.Errorf("%w %q", ErrDuplicateID, id)
		}
		b.order = slices.DeleteFunc(b.order, func(s string) bool { return s == id })
		b.stats.Replaced++
	}
	b.spans[id] = sp
	b.order = append(b.order, id)
	if n := len(b.positions); n > 0 && b.positions[n-1].start == sp.Start {
		b.positions[n-1].id = id
		return nil
	}
	b.positions = append(b.positions, posKey{start: sp.Start, id: id})
	return nil
}

func (b *builder) finish() *Genome {
	b.stats.Records = len(b.spans)
	b.stats.Bases = len(b.condensed)
	g := &Genome{
		spans:     b.spans,
		order:     b.order,
		positions: b.positions,
		stats:     b.stats,
	}
	if len(b.condensed) > 0 {
		// b.condensed is dropped below and never written again.
		g.condensed = unsafe.String(unsafe.SliceData(b.condensed), len(b.condensed))
	}
	b.condensed = nil
	return g
}
