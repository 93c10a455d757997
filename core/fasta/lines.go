// core/fasta/lines.go
package fasta

import (
	"bytes"
	"iter"
)

// Lines splits a buffer on a single delimiter byte without copying it.
// Every slice it yields aliases the original buffer and excludes the
// delimiter. Bytes after the last delimiter form a final line even when
// the buffer does not end with the delimiter.
//
// A Lines is single use: once exhausted it yields nothing further.
type Lines struct {
	buf   []byte
	delim byte
	pos   int
}

// NewLines returns a producer over buf split on delim.
func NewLines(buf []byte, delim byte) *Lines {
	return &Lines{buf: buf, delim: delim}
}

// Next returns the next line. ok is false once the buffer is exhausted.
// The search resumes at the current position, so a full pass is linear
// in len(buf).
func (l *Lines) Next() (line []byte, ok bool) {
	if l.pos >= len(l.buf) {
		return nil, false
	}
	rest := l.buf[l.pos:]
	i := bytes.IndexByte(rest, l.delim)
	if i < 0 {
		l.pos = len(l.buf)
		return rest[:len(rest):len(rest)], true
	}
	line = rest[:i:i]
	l.pos += i + 1
	return line, true
}

// All adapts l to a range-over-func sequence. Breaking out of the loop
// leaves l positioned after the last yielded line.
func (l *Lines) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			line, ok := l.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// SplitLines collects every line of buf. The slices alias buf.
func SplitLines(buf []byte, delim byte) [][]byte {
	var out [][]byte
	l := NewLines(buf, delim)
	for line, ok := l.Next(); ok; line, ok = l.Next() {
		out = append(out, line)
	}
	return out
}
