// Package faidx derives samtools-style .fai records for the flattened
// layout written by Genome.WriteTo, so readers can seek straight to a
// record's sequence line.
package faidx

import (
	"fmt"
	"os"

	"github.com/biogo/hts/fai"

	"refgenome-core/genome"
)

// Suffix is appended to the flattened file name.
const Suffix = ".fai"

// Index computes one record per entry. Offsets assume the exact byte
// layout of Genome.WriteTo: identifier line, then one sequence line.
func Index(g *genome.Genome) fai.Index {
	idx := make(fai.Index, g.Len())
	var off int64
	for _, e := range g.Entries() {
		off += int64(len(e.ID)) + 1
		n := len(e.Sequence)
		idx[e.ID] = fai.Record{
			Name:         e.ID,
			Length:       n,
			Start:        off,
			BasesPerLine: n,
			BytesPerLine: n + 1,
		}
		off += int64(n) + 1
	}
	return idx
}

// Write stores the index for g at path.
func Write(path string, g *genome.Genome) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := fai.WriteTo(f, Index(g)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads an index written by Write (or samtools faidx).
func Read(path string) (fai.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	idx, err := fai.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return idx, nil
}
