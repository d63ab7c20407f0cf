package stream

import (
	"io"

	"github.com/tinyrange/rawio/pkg/rawio"
)

// Reader is an io.Reader over a handle. Each Read is one rawio.ReadInto.
type Reader struct {
	h    rawio.Handle
	opts Options
}

func NewReader(h rawio.Handle, opts Options) *Reader {
	return &Reader{h: h, opts: opts}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := readOnce(r.h, p, 0, len(p), r.opts)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Writer is an io.Writer over a handle. Write keeps going until all of p is
// written, as io.Writer requires.
type Writer struct {
	h    rawio.Handle
	opts Options
}

func NewWriter(h rawio.Handle, opts Options) *Writer {
	return &Writer{h: h, opts: opts}
}

func (w *Writer) Write(p []byte) (int, error) {
	return WriteAll(w.h, p, 0, len(p), w.opts)
}

var (
	_ io.Reader = &Reader{}
	_ io.Writer = &Writer{}
)
