package output

import (
	"strconv"

	"refgenome-core/genome"
	"refgenome/pkg/api"
)

// TSVHeader is the canonical header row for text output.
const TSVHeader = "query\tid\tstart\tend\tlength"

// Lookup kinds
const (
	KindID  = "id"
	KindPos = "pos"
)

// Lookup is one answered query.
type Lookup struct {
	Kind  string
	Query string
	Found bool
	Entry genome.Entry
}

// ByID answers an identifier query against g.
func ByID(g *genome.Genome, id string) Lookup {
	l := Lookup{Kind: KindID, Query: id}
	seq, ok := g.Get(id)
	if !ok {
		return l
	}
	sp, _ := g.Span(id)
	l.Found = true
	l.Entry = genome.Entry{ID: id, Sequence: seq, Span: sp}
	return l
}

// ByPos answers an offset query against g.
func ByPos(g *genome.Genome, pos int) Lookup {
	e, ok := g.Range(pos)
	return Lookup{Kind: KindPos, Query: strconv.Itoa(pos), Found: ok, Entry: e}
}

// ToAPIRecord converts a Lookup to the stable wire schema (v1).
func ToAPIRecord(l Lookup, withSeq bool) api.RecordV1 {
	r := api.RecordV1{Query: l.Query, Kind: l.Kind, Found: l.Found}
	if !l.Found {
		return r
	}
	r.ID = l.Entry.ID
	r.Start = l.Entry.Span.Start
	r.End = l.Entry.Span.End
	r.Length = l.Entry.Span.Len()
	if withSeq {
		r.Seq = l.Entry.Sequence
	}
	return r
}
