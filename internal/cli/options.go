// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"refgenome/internal/clibase"
	"refgenome/internal/cliutil"
)

// Identifier modes
const (
	IDModeFixed = "fixed"
	IDModeToken = "token"
)

// Duplicate identifier policies
const (
	DupReject  = "reject"
	DupReplace = "replace"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Genome     string
	IDMode     string
	Duplicates string

	// Queries
	IDs       []string
	Positions []int

	// Outputs
	Flatten     string
	FAI         bool
	SpanDB      string
	MetricsFile string

	// Presentation
	Output string
	Header bool // true unless --no-header
	Seq    bool

	LogLevel string
	Quiet    bool
	Version  bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, nil)
	return fs
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # record containing condensed offset 1000000\n  %s --pos 1000000 GRCh38.fa.gz\n\n", name)
		fmt.Fprintf(w, "  # look up by accession, first word of the header\n  %s --id-mode token --id ENST00000456328 --seq ref.fa\n\n", name)
		fmt.Fprintf(w, "  # flatten with a samtools index and a SQLite span index\n  %s --flatten ref.flat --fai --span-db ref.spans.db s3://bucket/ref.fa\n", name)
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the genome positional may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.IDMode, "id-mode", IDModeFixed, "identifier extraction: fixed (header bytes 1-15) | token (first word) ["+IDModeFixed+"]")

	fs.StringVar(&opt.Duplicates, "duplicates", DupReject, "duplicate identifiers: reject | replace (last wins) ["+DupReject+"]")

	var ids stringSlice
	fs.Var(&ids, "id", "print the record with this identifier (repeatable)")
	var pos intSlice
	fs.Var(&pos, "pos", "print the record containing this condensed offset (repeatable)")

	fs.StringVar(&opt.Flatten, "flatten", "", "write the flattened genome (identifier line, sequence line) to PATH")
	fs.BoolVar(&opt.FAI, "fai", false, "also write PATH.fai next to --flatten output [false]")
	fs.StringVar(&opt.SpanDB, "span-db", "", "write the span index to a SQLite database at PATH")
	fs.StringVar(&opt.MetricsFile, "metrics-file", "", "write load metrics in Prometheus text format to PATH")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Seq, "seq", false, "include sequences in output [false]")

	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	var examples bool
	fs.BoolVar(&examples, "examples", false, "show usage examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.IDs = ids
	opt.Positions = pos
	opt.Header = !noHeader
	posArgs = append(posArgs, fs.Args()...)

	// Validation
	switch len(posArgs) {
	case 0:
		return opt, errors.New("a genome file is required")
	case 1:
		opt.Genome = posArgs[0]
	default:
		return opt, fmt.Errorf("exactly one genome file expected, got %d", len(posArgs))
	}
	if opt.IDMode != IDModeFixed && opt.IDMode != IDModeToken {
		return opt, fmt.Errorf("invalid --id-mode %q", opt.IDMode)
	}
	if opt.Duplicates != DupReject && opt.Duplicates != DupReplace {
		return opt, fmt.Errorf("invalid --duplicates %q", opt.Duplicates)
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.FAI && opt.Flatten == "" {
		return opt, errors.New("--fai requires --flatten")
	}
	switch opt.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// intSlice allows repeatable non-negative integer flags.
type intSlice []int

func (s *intSlice) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *intSlice) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("not an integer: %q", v)
	}
	if n < 0 {
		return fmt.Errorf("offset must be ≥ 0: %d", n)
	}
	*s = append(*s, n)
	return nil
}
