//go:build !unix

package rawio

import (
	"errors"
	"fmt"
	"runtime"
)

func read(h Handle, p []byte) (int, error) {
	return 0, fmt.Errorf("rawio.ReadInto not implemented for %s: %w", runtime.GOOS, errors.ErrUnsupported)
}

func write(h Handle, p []byte) (int, error) {
	return 0, fmt.Errorf("rawio.WriteFrom not implemented for %s: %w", runtime.GOOS, errors.ErrUnsupported)
}

func IsInterrupted(err error) bool { return false }

func IsWouldBlock(err error) bool { return false }

func IsTemporary(err error) bool { return false }

func IsBadHandle(err error) bool { return false }
