// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a leveled logger writing to dst. quiet wins over level;
// an unknown level falls back to info.
func NewLogger(dst io.Writer, level string, quiet bool) *log.Logger {
	l := log.NewWithOptions(dst, log.Options{Prefix: "refgenome"})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	l.SetLevel(lvl)
	return l
}
