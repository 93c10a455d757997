// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"refgenome-core/genome"
	"refgenome/internal/output"
)

// Report is everything a result writer may render.
type Report struct {
	Name    string
	Genome  *genome.Genome
	Lookups []output.Lookup
	Header  bool
	Seq     bool
}

// ResultWriter renders a Report.
type ResultWriter func(w io.Writer, r Report) error

// ResultWriters maps an --output format to its writer.
var ResultWriters = map[string]ResultWriter{
	"text": func(w io.Writer, r Report) error {
		return output.WriteText(w, r.Lookups, r.Header, r.Seq)
	},
	"json": func(w io.Writer, r Report) error {
		return output.WriteJSON(w, output.ToAPIReport(r.Name, r.Genome, r.Lookups, r.Seq))
	},
	"jsonl": writeJSONL,
}

// Register installs fn for format (last wins).
func Register(format string, fn ResultWriter) { ResultWriters[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, r Report) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}
