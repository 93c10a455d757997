// internal/output/json.go
package output

import (
	"io"

	"refgenome-core/genome"
	"refgenome/internal/jsonutil"
	"refgenome/pkg/api"
)

// ToAPIReport bundles a genome summary with its lookups.
func ToAPIReport(name string, g *genome.Genome, list []Lookup, withSeq bool) api.ReportV1 {
	rep := api.ReportV1{
		Genome:          name,
		Records:         g.Len(),
		CondensedLength: len(g.Condensed()),
		Results:         make([]api.RecordV1, 0, len(list)),
	}
	for _, l := range list {
		rep.Results = append(rep.Results, ToAPIRecord(l, withSeq))
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}
