package fasta

import (
	"errors"
	"testing"
)

func collect(buf string) []string {
	var out []string
	for _, l := range SplitLines([]byte(buf), '\n') {
		out = append(out, string(l))
	}
	return out
}

func TestLines_Table(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "ACGT", []string{"ACGT"}},
		{"single with newline", "ACGT\n", []string{"ACGT"}},
		{"trailing fragment", ">a\nAC\nGT", []string{">a", "AC", "GT"}},
		{"blank lines", "A\n\nC\n", []string{"A", "", "C"}},
		{"only delimiters", "\n\n\n", []string{"", "", ""}},
		{"leading delimiter", "\nA", []string{"", "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("line %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLines_ExhaustedStaysExhausted(t *testing.T) {
	l := NewLines([]byte("A\nB"), '\n')
	for i := 0; i < 2; i++ {
		if _, ok := l.Next(); !ok {
			t.Fatalf("expected line %d", i)
		}
	}
	for i := 0; i < 3; i++ {
		if line, ok := l.Next(); ok {
			t.Fatalf("exhausted producer yielded %q", line)
		}
	}
}

func TestLines_AliasInput(t *testing.T) {
	buf := []byte(">h\nACGT\n")
	l := NewLines(buf, '\n')
	_, _ = l.Next()
	seq, _ := l.Next()
	if &seq[0] != &buf[3] {
		t.Fatalf("line does not alias the input buffer")
	}
	// Capacity is clipped so appends never clobber the delimiter.
	if cap(seq) != len(seq) {
		t.Fatalf("cap=%d len=%d", cap(seq), len(seq))
	}
}

func TestLines_AllBreakEarly(t *testing.T) {
	l := NewLines([]byte("a\nb\nc\n"), '\n')
	var first []string
	for line := range l.All() {
		first = append(first, string(line))
		if len(first) == 2 {
			break
		}
	}
	rest, ok := l.Next()
	if !ok || string(rest) != "c" {
		t.Fatalf("after break: got %q ok=%v", rest, ok)
	}
}

func TestLines_OtherDelimiter(t *testing.T) {
	got := SplitLines([]byte("a,b,,c"), ',')
	if len(got) != 4 || string(got[3]) != "c" || len(got[2]) != 0 {
		t.Fatalf("unexpected split %q", got)
	}
}

func TestFixedWidthID(t *testing.T) {
	id, err := FixedWidthID([]byte(">ENST00000456328.2 cdna"))
	if err != nil {
		t.Fatalf("FixedWidthID: %v", err)
	}
	if string(id) != "ENST00000456328" {
		t.Fatalf("id=%q", id)
	}
	if _, err := FixedWidthID([]byte(">ENST0000045632")); !errors.Is(err, ErrShortHeader) {
		t.Fatalf("15-byte header: err=%v", err)
	}
	if id, err := FixedWidthID([]byte(">ENST00000456328")); err != nil || string(id) != "ENST00000456328" {
		t.Fatalf("16-byte header: id=%q err=%v", id, err)
	}
	if _, err := FixedWidthID([]byte(">ENST0000045632\u00e9 x")); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("window cutting a rune: err=%v", err)
	}
	if id, err := FixedWidthID([]byte(">ENST000004563\u00e9 x")); err != nil || string(id) != "ENST000004563\u00e9" {
		t.Fatalf("whole rune in window: id=%q err=%v", id, err)
	}
}

func TestFirstTokenID(t *testing.T) {
	cases := map[string]string{
		">chr1":                 "chr1",
		">chr1 description":     "chr1",
		">NM_000797.4\tDRD4":    "NM_000797.4",
		"> seq2 leading space":  "seq2",
		">contig_7\r":           "contig_7",
	}
	for in, want := range cases {
		id, err := FirstTokenID([]byte(in))
		if err != nil || string(id) != want {
			t.Errorf("%q: got %q err=%v, want %q", in, id, err, want)
		}
	}
	if _, err := FirstTokenID([]byte(">")); !errors.Is(err, ErrShortHeader) {
		t.Fatalf("bare marker: err=%v", err)
	}
}

func TestIsHeader(t *testing.T) {
	if IsHeader(nil) || IsHeader([]byte("ACGT")) || !IsHeader([]byte(">x")) {
		t.Fatalf("IsHeader misclassified")
	}
}
