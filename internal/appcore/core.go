// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"refgenome-core/genome"
	"refgenome/internal/faidx"
	"refgenome/internal/metrics"
	"refgenome/internal/output"
	"refgenome/internal/source"
	"refgenome/internal/spanindex"
	"refgenome/internal/writers"
)

// Exit codes
const (
	ExitOK       = 0
	ExitNotFound = 1
	ExitLoad     = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

type Options struct {
	Genome            string
	IDFunc            genome.IDFunc
	ReplaceDuplicates bool

	IDs       []string
	Positions []int

	Flatten     string
	FAI         bool
	SpanDB      string
	MetricsFile string

	Output string
	Header bool
	Seq    bool
}

// Run loads the genome, writes the requested sidecars and answers the
// queries. It returns a process exit code.
func Run(parent context.Context, stdout io.Writer, logger *log.Logger, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	reg := prometheus.NewRegistry()
	lm := metrics.NewLoad(reg)
	defer func() {
		if o.MetricsFile == "" {
			return
		}
		if err := metrics.WriteTextfile(o.MetricsFile, reg); err != nil {
			logger.Error("write metrics", "path", o.MetricsFile, "err", err)
		}
	}()

	start := time.Now()
	g, err := load(ctx, o)
	elapsed := time.Since(start)
	lm.Observe(g, elapsed, err)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		logger.Error("load failed", "genome", o.Genome, "err", err)
		return ExitLoad
	}
	if ctx.Err() != nil {
		return ExitCanceled
	}
	st := g.Stats()
	logger.Info("genome loaded", "genome", o.Genome, "records", st.Records, "bases", st.Bases, "elapsed", elapsed.Round(time.Millisecond))
	if st.Replaced > 0 {
		logger.Warn("duplicate identifiers replaced", "count", st.Replaced)
	}

	if err := sidecars(ctx, logger, g, o); err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		logger.Error("write output", "err", err)
		return ExitOutput
	}

	lookups := make([]output.Lookup, 0, len(o.IDs)+len(o.Positions))
	for _, id := range o.IDs {
		lookups = append(lookups, output.ByID(g, id))
	}
	for _, pos := range o.Positions {
		lookups = append(lookups, output.ByPos(g, pos))
	}
	missing := 0
	for _, l := range lookups {
		if !l.Found {
			missing++
			logger.Warn("not found", l.Kind, l.Query)
		}
	}

	if len(lookups) > 0 || o.Output == "json" {
		outw := bufio.NewWriter(stdout)
		rep := writers.Report{Name: o.Genome, Genome: g, Lookups: lookups, Header: o.Header, Seq: o.Seq}
		if werr := writers.Write(o.Output, outw, rep); writers.IsBrokenPipe(werr) {
			return ExitOK
		} else if werr != nil {
			logger.Error("write results", "err", werr)
			return ExitOutput
		}
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return ExitOK
		} else if e != nil {
			logger.Error("flush", "err", e)
			return ExitOutput
		}
	}

	if missing > 0 {
		return ExitNotFound
	}
	return ExitOK
}

func load(ctx context.Context, o Options) (*genome.Genome, error) {
	rc, err := source.Open(ctx, o.Genome)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	var opts []genome.Option
	if o.IDFunc != nil {
		opts = append(opts, genome.WithIDFunc(o.IDFunc))
	}
	if o.ReplaceDuplicates {
		opts = append(opts, genome.WithDuplicates(genome.DuplicateReplace))
	}
	g, err := genome.Read(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.Genome, err)
	}
	return g, nil
}

func sidecars(ctx context.Context, logger *log.Logger, g *genome.Genome, o Options) error {
	if o.Flatten != "" {
		if err := g.Write(o.Flatten); err != nil {
			return fmt.Errorf("flatten: %w", err)
		}
		logger.Debug("wrote flattened genome", "path", o.Flatten)
		if o.FAI {
			path := o.Flatten + faidx.Suffix
			if err := faidx.Write(path, g); err != nil {
				return fmt.Errorf("fai: %w", err)
			}
			logger.Debug("wrote fai index", "path", path)
		}
	}
	if o.SpanDB != "" {
		if err := spanindex.Save(ctx, o.SpanDB, g); err != nil {
			return fmt.Errorf("span db: %w", err)
		}
		logger.Debug("wrote span index", "path", o.SpanDB)
	}
	return nil
}
