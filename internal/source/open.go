// internal/source/open.go
package source

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"
)

// Stdin is the location that reads standard input.
const Stdin = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open resolves loc to a reader:
//
//	"-"              standard input
//	s3://bucket/key  S3 object (see s3.go for environment settings)
//	anything else    local file
//
// Gzip is detected by magic number (1F 8B) or a .gz suffix, for every
// location kind.
func Open(ctx context.Context, loc string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	switch {
	case loc == Stdin:
		rc = io.NopCloser(os.Stdin)
	case IsS3(loc):
		obj, err := openS3(ctx, loc)
		if err != nil {
			return nil, err
		}
		rc = obj
	default:
		fh, err := os.Open(loc)
		if err != nil {
			return nil, err
		}
		rc = fh
	}
	return maybeGzip(rc, strings.HasSuffix(loc, ".gz"))
}

// maybeGzip peeks two bytes, so it also works on non-seekable streams.
func maybeGzip(rc io.ReadCloser, gzSuffix bool) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(2)
	if !gzSuffix && !(len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
}
