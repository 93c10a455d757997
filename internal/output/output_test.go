package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"refgenome-core/genome"
	"refgenome/pkg/api"
)

func testGenome(t *testing.T) *genome.Genome {
	t.Helper()
	g, err := genome.Build([]byte(">ENST00000000001 a\nACGTACGT\n>ENST00000000002 b\nTTTT\n"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

func TestLookups(t *testing.T) {
	g := testGenome(t)
	if l := ByID(g, "ENST00000000002"); !l.Found || l.Entry.Span != (genome.Span{Start: 8, End: 12}) {
		t.Fatalf("ByID=%+v", l)
	}
	if l := ByID(g, "missing"); l.Found {
		t.Fatalf("missing id found")
	}
	if l := ByPos(g, 9); !l.Found || l.Entry.ID != "ENST00000000002" || l.Query != "9" {
		t.Fatalf("ByPos(9)=%+v", l)
	}
	if l := ByPos(g, 0); l.Found {
		t.Fatalf("ByPos(0) found %+v", l)
	}
}

func TestWriteText(t *testing.T) {
	g := testGenome(t)
	list := []Lookup{ByPos(g, 9), ByID(g, "missing"), ByID(g, "ENST00000000001")}

	var buf bytes.Buffer
	if err := WriteText(&buf, list, true, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := TSVHeader + "\n" +
		"9\tENST00000000002\t8\t12\t4\n" +
		"ENST00000000001\tENST00000000001\t0\t8\t8\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteText(&buf, list[:1], false, true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != "9\tENST00000000002\t8\t12\t4\tTTTT\n" {
		t.Fatalf("with seq: %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	g := testGenome(t)
	rep := ToAPIReport("ref.fa", g, []Lookup{ByPos(g, 9), ByID(g, "missing")}, true)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var back api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Records != 2 || back.CondensedLength != 12 || len(back.Results) != 2 {
		t.Fatalf("report=%+v", back)
	}
	hit, miss := back.Results[0], back.Results[1]
	if !hit.Found || hit.ID != "ENST00000000002" || hit.Seq != "TTTT" || hit.Length != 4 || hit.Kind != KindPos {
		t.Fatalf("hit=%+v", hit)
	}
	if miss.Found || miss.ID != "" || miss.Kind != KindID {
		t.Fatalf("miss=%+v", miss)
	}
}

func TestToAPIRecordWithoutSeq(t *testing.T) {
	g := testGenome(t)
	r := ToAPIRecord(ByID(g, "ENST00000000001"), false)
	if r.Seq != "" || r.End != 8 {
		t.Fatalf("record=%+v", r)
	}
}
