//go:build unix

package membuf

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc reserves size bytes of zeroed, private anonymous memory and returns
// the buffer plus a cleanup that releases it. The cleanup is safe to call
// twice; the second call is a no-op.
func Alloc(size int) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size < 0 {
		return nil, nil, fmt.Errorf("membuf: negative size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, fmt.Errorf("membuf: mmap %d bytes: %w", size, err)
	}
	released := false
	cleanup := func() error {
		if released {
			return nil
		}
		released = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
