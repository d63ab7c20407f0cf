// Package stream builds the usual caller policies on top of rawio: reading
// or writing a whole window, copying between handles, and optionally
// retrying calls interrupted by signals.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tinyrange/rawio/pkg/rawio"
)

type Options struct {
	// RetryInterrupted reissues calls that failed with EINTR.
	RetryInterrupted bool

	// OnProgress is called by Copy with the size of every chunk written.
	OnProgress func(n int)
}

// Overridden in tests.
var (
	readInto  = rawio.ReadInto
	writeFrom = rawio.WriteFrom
)

func (o Options) retry(err error) bool {
	return o.RetryInterrupted && rawio.IsInterrupted(err)
}

func readOnce(h rawio.Handle, buf []byte, offset, length int, opts Options) (int, error) {
	for {
		n, err := readInto(h, buf, offset, length)
		if err != nil && opts.retry(err) {
			slog.Debug("retrying interrupted read", "fd", h)
			continue
		}
		return n, err
	}
}

func writeOnce(h rawio.Handle, buf []byte, offset, length int, opts Options) (int, error) {
	for {
		n, err := writeFrom(h, buf, offset, length)
		if err != nil && opts.retry(err) {
			slog.Debug("retrying interrupted write", "fd", h)
			continue
		}
		return n, err
	}
}

// ReadFull reads exactly length bytes into buf[offset:offset+length].
// It returns io.EOF if nothing was read and io.ErrUnexpectedEOF if the stream
// ended part way through.
func ReadFull(h rawio.Handle, buf []byte, offset, length int, opts Options) (int, error) {
	total := 0
	for total < length {
		n, err := readOnce(h, buf, offset+total, length-total, opts)
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}

	if total == length {
		return total, nil
	} else if total == 0 {
		return 0, io.EOF
	} else {
		return total, io.ErrUnexpectedEOF
	}
}

// WriteAll writes all of buf[offset:offset+length], continuing after short
// writes. A write that accepts nothing is reported as io.ErrShortWrite.
func WriteAll(h rawio.Handle, buf []byte, offset, length int, opts Options) (int, error) {
	total := 0
	for total < length {
		n, err := writeOnce(h, buf, offset+total, length-total, opts)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
		if n < length-total {
			slog.Debug("short write", "fd", h, "wrote", n, "remaining", length-total-n)
		}
		total += n
	}
	return total, nil
}

// Copy moves everything readable from src to dst through buf and returns the
// number of bytes copied. ctx is checked between calls; a blocked call is
// not interrupted.
func Copy(ctx context.Context, dst, src rawio.Handle, buf []byte, opts Options) (int64, error) {
	if len(buf) == 0 {
		return 0, errors.New("stream: copy buffer is empty")
	}

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := readOnce(src, buf, 0, len(buf), opts)
		if err != nil {
			return total, fmt.Errorf("failed to read: %w", err)
		}
		if n == 0 {
			slog.Debug("copy finished", "src", src, "dst", dst, "bytes", total)
			return total, nil
		}

		written, err := WriteAll(dst, buf, 0, n, opts)
		total += int64(written)
		if err != nil {
			return total, fmt.Errorf("failed to write: %w", err)
		}

		if opts.OnProgress != nil {
			opts.OnProgress(written)
		}
	}
}
