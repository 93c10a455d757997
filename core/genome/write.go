package genome

import (
	"bufio"
	"io"
	"os"
)

// WriteTo writes the flattened layout: for each record, its identifier
// on one line and its whole sequence on the next. Records follow span
// order, so output is reproducible.
// The returned count is what w accepted, not what was buffered.
func (g *Genome) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, 1<<20)
	for _, e := range g.Entries() {
		for _, s := range [...]string{e.ID, "\n", e.Sequence, "\n"} {
			if _, err := bw.WriteString(s); err != nil {
				return cw.n, err
			}
		}
	}
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	k, err := c.w.Write(p)
	c.n += int64(k)
	return k, err
}

// Write creates or truncates path and writes the flattened layout to it.
// A failed write can leave a partial file behind.
func (g *Genome) Write(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = g.WriteTo(f)
	return err
}
