// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one TSV line per found lookup. Misses are left to the
// caller to report.
func WriteText(w io.Writer, list []Lookup, header, withSeq bool) error {
	if header {
		h := TSVHeader
		if withSeq {
			h += "\tseq"
		}
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	for _, l := range list {
		if !l.Found {
			continue
		}
		e := l.Entry
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d", l.Query, e.ID, e.Span.Start, e.Span.End, e.Span.Len()); err != nil {
			return err
		}
		if withSeq {
			if _, err := fmt.Fprintf(w, "\t%s", e.Sequence); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
