// Package bigarray allocates large fixed-size byte buffers outside the Go
// heap. The memory stays where it is until Free, so its slice can be handed
// to rawio calls without the garbage collector moving or scanning it.
package bigarray

import (
	"errors"
	"fmt"
)

var ErrFreed = errors.New("bigarray: array already freed")

type Array struct {
	data []byte
	free func([]byte) error
}

// Bytes returns the whole array, or nil once the array has been freed.
// The slice must not be used after Free.
func (a *Array) Bytes() []byte { return a.data }

func (a *Array) Len() int { return len(a.data) }

func (a *Array) Fill(b byte) {
	for i := range a.data {
		a.data[i] = b
	}
}

// Slice returns the bounds checked window [offset, offset+length).
func (a *Array) Slice(offset, length int) ([]byte, error) {
	if a.data == nil {
		return nil, ErrFreed
	}
	if offset < 0 || length < 0 || offset > len(a.data)-length {
		return nil, fmt.Errorf("bigarray: window [%d, %d+%d) out of range for length %d", offset, offset, length, len(a.data))
	}
	return a.data[offset : offset+length : offset+length], nil
}

// Free releases the memory. Calling Free more than once is a no-op.
func (a *Array) Free() error {
	if a.data == nil {
		return nil
	}

	data := a.data
	a.data = nil

	if a.free == nil {
		return nil
	}
	if err := a.free(data); err != nil {
		return fmt.Errorf("failed to free array: %w", err)
	}

	return nil
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("bigarray: invalid size %d", size)
	}
	return nil
}
