// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"refgenome/internal/jsonlutil"
	"refgenome/internal/output"
)

// writeJSONL emits one api.RecordV1 per line, misses included.
func writeJSONL(w io.Writer, r Report) error {
	in, done := jsonlutil.Start(w, len(r.Lookups), func(enc *json.Encoder, l output.Lookup) error {
		return enc.Encode(output.ToAPIRecord(l, r.Seq))
	}, IsBrokenPipe)
	for _, l := range r.Lookups {
		in <- l
	}
	close(in)
	return <-done
}
