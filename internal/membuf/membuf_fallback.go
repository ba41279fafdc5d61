//go:build !unix

package membuf

import "fmt"

// Alloc reserves size bytes of zeroed memory. Platforms without anonymous
// mmap get a plain heap slice; the cleanup only drops the reference.
func Alloc(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("membuf: negative size %d", size)
	}
	data := make([]byte, size)
	return data, func() error { return nil }, nil
}
