package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a single write out to all underlying writers.
// Unlike io.MultiWriter it does not stop at the first failing writer,
// write errors are collected and returned combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer{}, writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var total int
	var err error
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		total += n
	}
	return total, err
}
