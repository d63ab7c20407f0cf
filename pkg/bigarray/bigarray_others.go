//go:build !unix

package bigarray

// Alloc falls back to a heap allocation where anonymous mappings are not
// available.
func Alloc(size int) (*Array, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	return &Array{data: make([]byte, size)}, nil
}
