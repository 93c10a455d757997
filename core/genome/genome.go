// Package genome holds a reference genome in memory as one condensed
// sequence plus two indexes: identifier to span, and span start to
// identifier for "which record holds offset P" lookups.
//
// A Genome is immutable once built and safe for concurrent readers.
// Every string it returns is a substring of the condensed buffer.
package genome

import "sort"

// Span is the half-open byte range [Start, End) of one record's sequence
// inside the condensed buffer.
type Span struct {
	Start int
	End   int
}

// Len returns End-Start.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool { return pos >= s.Start && pos < s.End }

// Entry is a query result. Sequence borrows from the Genome.
type Entry struct {
	ID       string
	Sequence string
	Span     Span
}

// Stats summarises a build.
type Stats struct {
	Records     int
	Bases       int
	HeaderLines int
	DataLines   int
	Replaced    int // duplicates overwritten under DuplicateReplace
}

type posKey struct {
	start int
	id    string
}

// Owner is one position-index entry: the identifier Range resolves for
// offsets just past Start.
type Owner struct {
	Start int
	ID    string
}

// Genome is the finished store.
type Genome struct {
	condensed string
	spans     map[string]Span
	order     []string // insertion order, which is also span order
	// ascending by start; one id per start
	positions []posKey
	stats     Stats
}

// Condensed returns every record's sequence back to back.
func (g *Genome) Condensed() string { return g.condensed }

// Len returns the number of indexed records.
func (g *Genome) Len() int { return len(g.spans) }

// Stats returns counters gathered while building.
func (g *Genome) Stats() Stats { return g.stats }

// Get returns the sequence stored under id.
func (g *Genome) Get(id string) (string, bool) {
	sp, ok := g.spans[id]
	if !ok {
		return "", false
	}
	return g.slice(sp)
}

// Span returns the span stored under id.
func (g *Genome) Span(id string) (Span, bool) {
	sp, ok := g.spans[id]
	return sp, ok
}

// Range returns the record whose start is the greatest start strictly
// below pos. It reports false when no start lies below pos, or when the
// position index names an identifier the identifier index lacks.
func (g *Genome) Range(pos int) (Entry, bool) {
	i := sort.Search(len(g.positions), func(i int) bool {
		return g.positions[i].start >= pos
	})
	if i == 0 {
		return Entry{}, false
	}
	p := g.positions[i-1]
	id := p.id
	sp, ok := g.spans[id]
	if !ok || sp.Start != p.start {
		return Entry{}, false
	}
	seq, ok := g.slice(sp)
	if !ok {
		return Entry{}, false
	}
	return Entry{ID: id, Sequence: seq, Span: sp}, true
}

// IDs returns identifiers in condensed-buffer order.
func (g *Genome) IDs() []string {
	out := make([]string, 0, len(g.order))
	for _, e := range g.Entries() {
		out = append(out, e.ID)
	}
	return out
}

// Entries returns every record in input order, which is span start
// order. Empty records sharing a start keep their file order.
func (g *Genome) Entries() []Entry {
	out := make([]Entry, 0, len(g.order))
	for _, id := range g.order {
		sp, ok := g.spans[id]
		if !ok {
			continue
		}
		seq, ok := g.slice(sp)
		if !ok {
			continue
		}
		out = append(out, Entry{ID: id, Sequence: seq, Span: sp})
	}
	return out
}

// Owners returns the position index in ascending start order.
func (g *Genome) Owners() []Owner {
	out := make([]Owner, len(g.positions))
	for i, p := range g.positions {
		out[i] = Owner{Start: p.start, ID: p.id}
	}
	return out
}

func (g *Genome) slice(sp Span) (string, bool) {
	if sp.Start < 0 || sp.Start > sp.End || sp.End > len(g.condensed) {
		return "", false
	}
	return g.condensed[sp.Start:sp.End], true
}
