// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"refgenome-core/fasta"
	"refgenome/internal/appcore"
	"refgenome/internal/cli"
	"refgenome/internal/clibase"
	"refgenome/internal/cmdutil"
	"refgenome/internal/version"
	"refgenome/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("refgenome")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if errors.Is(err, clibase.ErrPrintedAndExitOK) {
		cli.PrintExamples(outw, "refgenome")
		return flush(outw, stderr, 0)
	}
	if err != nil {
		code := 0
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = appcore.ExitLoad
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "refgenome version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	logger := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet)
	coreOpts := appcore.Options{
		Genome:            opts.Genome,
		ReplaceDuplicates: opts.Duplicates == cli.DupReplace,
		IDs:               opts.IDs,
		Positions:         opts.Positions,
		Flatten:           opts.Flatten,
		FAI:               opts.FAI,
		SpanDB:            opts.SpanDB,
		MetricsFile:       opts.MetricsFile,
		Output:            opts.Output,
		Header:            opts.Header,
		Seq:               opts.Seq,
	}
	if opts.IDMode == cli.IDModeToken {
		coreOpts.IDFunc = fasta.FirstTokenID
	}
	return appcore.Run(parent, stdout, logger, coreOpts)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitOutput
	}
	return code
}
