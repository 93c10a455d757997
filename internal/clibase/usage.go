// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"refgenome/internal/version"
)

// Usage installs a grouped help screen on fs. extra, when non-nil, is
// printed between the banner and the flag groups.
func Usage(fs *flag.FlagSet, name string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – FASTA reference loader and offset index\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage of %s: %s [options] <genome.fa | genome.fa.gz | - | s3://bucket/key>\n", name, name)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "      --id-mode string        Identifier: fixed (header bytes 1-15) | token (first word) [%s]\n", def("id-mode"))
		fmt.Fprintf(out, "      --duplicates string     Duplicate identifiers: reject | replace (last wins) [%s]\n", def("duplicates"))

		fmt.Fprintln(out, "\nQueries:")
		fmt.Fprintln(out, "      --id string             Print the record with this identifier (repeatable)")
		fmt.Fprintln(out, "      --pos int               Print the record containing this condensed offset (repeatable)")

		fmt.Fprintln(out, "\nSidecars:")
		fmt.Fprintln(out, "      --flatten path          Write the flattened genome (identifier line, sequence line)")
		fmt.Fprintf(out, "      --fai                   Also write <flatten>.fai [%s]\n", def("fai"))
		fmt.Fprintln(out, "      --span-db path          Write the span index to a SQLite database")
		fmt.Fprintln(out, "      --metrics-file path     Write load metrics in Prometheus text format")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --seq                   Include sequences [%s]\n", def("seq"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --log-level string      Log level: debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
