//go:build unix

package bigarray

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps size zeroed bytes of anonymous private memory.
func Alloc(size int) (*Array, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("failed to map %d bytes: %w", size, err)
	}

	return &Array{data: data, free: unix.Munmap}, nil
}
