// Package rawio performs single read(2) and write(2) calls against
// caller-managed file descriptors, moving bytes into or out of a window of a
// caller-owned buffer.
//
// Every non-empty call is exactly one system call. Short transfers are
// returned as they are and failures are reported without retry. Looping,
// retrying and descriptor lifetime are left to the caller (see package stream
// for the usual policies).
package rawio

import "fmt"

// Handle is a file descriptor owned by the caller. rawio never opens,
// validates or closes it.
type Handle int

// HandleOf returns the descriptor backing f, typically an *os.File.
// f must stay open for as long as the handle is used.
func HandleOf(f interface{ Fd() uintptr }) Handle {
	return Handle(f.Fd())
}

// Error is returned when the underlying system call fails. Err is the value
// the operating system reported (a unix.Errno on unix platforms).
type Error struct {
	Op     string
	Handle Handle
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s fd %d: %s", e.Op, e.Handle, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ReadInto issues one read of at most length bytes from h into
// buf[offset:offset+length] and returns the number of bytes placed there.
//
// A zero or negative length returns 0 without making a system call. A result
// of 0 with a nil error on a positive length means end of stream. Bytes of buf
// outside [offset, offset+n) are never touched.
//
// The window must lie within buf; this is not checked beyond the runtime's
// own slice bounds checks.
func ReadInto(h Handle, buf []byte, offset, length int) (int, error) {
	if length <= 0 {
		return 0, nil
	}

	n, err := read(h, buf[offset:offset+length])
	if err != nil {
		return 0, &Error{Op: "read", Handle: h, Err: err}
	}

	return n, nil
}

// WriteFrom issues one write of buf[offset:offset+length] to h and returns
// the number of bytes the operating system accepted, which may be less than
// length.
//
// A zero or negative length returns 0 without making a system call.
func WriteFrom(h Handle, buf []byte, offset, length int) (int, error) {
	if length <= 0 {
		return 0, nil
	}

	n, err := write(h, buf[offset:offset+length])
	if err != nil {
		return 0, &Error{Op: "write", Handle: h, Err: err}
	}

	return n, nil
}
