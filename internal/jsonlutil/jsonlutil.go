// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

var bufPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// Start launches an encoder goroutine writing one JSON document per line to
// out. Values sent on the returned channel are encoded in order; closing it
// flushes and delivers the final error (nil on success, or when ignore
// accepts the flush error) on the second channel.
func Start[T any](out io.Writer, queue int, encode func(*json.Encoder, T) error, ignore func(error) bool) (chan<- T, <-chan error) {
	if queue <= 0 {
		queue = 64
	}
	in := make(chan T, queue)
	done := make(chan error, 1)

	go func() {
		bw := bufPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bufPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = encode(enc, v)
		}
		if err == nil {
			if ferr := bw.Flush(); ferr != nil && (ignore == nil || !ignore(ferr)) {
				err = ferr
			}
		}
		done <- err
	}()

	return in, done
}
