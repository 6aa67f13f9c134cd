// Package pipe provides byte-counting reader/writer wrappers and the file and
// stdio sources/sinks the watch command moves data through.
package pipe

import (
	"io"

	"bytewatch/pkg/bytesize"
	"bytewatch/pkg/transferwatch"
)

// Reader wraps an io.Reader and reports every read to a TransferWatch.
type Reader struct {
	r     io.Reader
	watch *transferwatch.TransferWatch
}

// NewReader creates a counting reader feeding the given watch.
func NewReader(r io.Reader, watch *transferwatch.TransferWatch) *Reader {
	return &Reader{r: r, watch: watch}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.watch.Add(bytesize.New(int64(n)))
	}
	return n, err
}

// Writer wraps an io.Writer and reports every write to a TransferWatch.
type Writer struct {
	w     io.Writer
	watch *transferwatch.TransferWatch
}

// NewWriter creates a counting writer feeding the given watch.
func NewWriter(w io.Writer, watch *transferwatch.TransferWatch) *Writer {
	return &Writer{w: w, watch: watch}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.watch.Add(bytesize.New(int64(n)))
	}
	return n, err
}
