// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"refgenome/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "ref.fa")
	if o.Genome != "ref.fa" || o.IDMode != IDModeFixed || o.Duplicates != DupReject || o.Output != "text" || !o.Header || o.LogLevel != "info" {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestQueriesAndInterleavedPositional(t *testing.T) {
	o := mustParse(t,
		"--id", "ENST00000456328",
		"ref.fa",
		"--pos", "9", "--pos=120",
		"--id", "ENST00000000001",
		"--id-mode", "token",
	)
	if o.Genome != "ref.fa" || len(o.IDs) != 2 || len(o.Positions) != 2 || o.Positions[1] != 120 || o.IDMode != IDModeToken {
		t.Errorf("bad parse %+v", o)
	}
}

func TestStdinPositional(t *testing.T) {
	o := mustParse(t, "--quiet", "-")
	if o.Genome != "-" || !o.Quiet {
		t.Errorf("bad parse %+v", o)
	}
}

func TestFlattenWithFAI(t *testing.T) {
	o := mustParse(t, "--flatten", "out.txt", "--fai", "ref.fa")
	if o.Flatten != "out.txt" || !o.FAI {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no genome":       {"--id", "x"},
		"two genomes":     {"a.fa", "b.fa"},
		"bad id mode":     {"--id-mode", "regex", "ref.fa"},
		"bad output":      {"--output", "yaml", "ref.fa"},
		"fai alone":       {"--fai", "ref.fa"},
		"negative pos":    {"--pos", "-1", "ref.fa"},
		"non-integer pos": {"--pos", "ten", "ref.fa"},
		"bad log level":   {"--log-level", "trace", "ref.fa"},
		"bad duplicates":  {"--duplicates", "merge", "ref.fa"},
	}
	for name, argv := range cases {
		if _, err := ParseArgs(newFS(), argv); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h: err=%v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("--version: %+v err=%v", o, err)
	}
}

func TestOutputAliasAndJSONL(t *testing.T) {
	o := mustParse(t, "-o", "jsonl", "ref.fa")
	if o.Output != "jsonl" {
		t.Fatalf("output=%q", o.Output)
	}
}

func TestExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("--examples: err=%v", err)
	}
	var buf bytes.Buffer
	PrintExamples(&buf, "refgenome")
	if !strings.Contains(buf.String(), "refgenome --pos 1000000") {
		t.Fatalf("examples: %s", buf.String())
	}
}

func TestDuplicatesReplace(t *testing.T) {
	if o := mustParse(t, "--duplicates", "replace", "ref.fa"); o.Duplicates != DupReplace {
		t.Fatalf("duplicates=%q", o.Duplicates)
	}
}
