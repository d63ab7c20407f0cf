//go:build unix

package rawio

import (
	"errors"

	"golang.org/x/sys/unix"
)

func read(h Handle, p []byte) (int, error) {
	n, err := unix.Read(int(h), p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func write(h Handle, p []byte) (int, error) {
	n, err := unix.Write(int(h), p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// IsInterrupted reports whether err is a call interrupted by a signal (EINTR).
func IsInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}

// IsWouldBlock reports whether err came from a non-blocking handle with
// nothing to transfer (EAGAIN).
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// IsTemporary reports whether the same call might succeed if issued again.
func IsTemporary(err error) bool {
	return IsInterrupted(err) || IsWouldBlock(err)
}

// IsBadHandle reports whether err means the handle was not an open
// descriptor usable for the operation (EBADF).
func IsBadHandle(err error) bool {
	return errors.Is(err, unix.EBADF)
}
