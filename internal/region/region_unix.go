//go:build unix

package region

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map allocates a guarded region able to hold size bytes. The window is
// size rounded up to the page size; one inaccessible page sits before it
// and one after. Any mmap or mprotect failure is returned as-is, there is
// no retry.
func Map(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region size must be positive, got %d", size)
	}
	page := os.Getpagesize()
	full := (size + page - 1) / page * page

	raw, err := unix.Mmap(-1, 0, full+2*page, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", full+2*page, err)
	}
	if err := unix.Mprotect(raw[:page], unix.PROT_NONE); err != nil {
		unix.Munmap(raw)
		return nil, fmt.Errorf("protect leading guard page: %w", err)
	}
	if err := unix.Mprotect(raw[page+full:], unix.PROT_NONE); err != nil {
		unix.Munmap(raw)
		return nil, fmt.Errorf("protect trailing guard page: %w", err)
	}
	return &Region{raw: raw, window: raw[page : page+full]}, nil
}

// Close unmaps the region. The window slice must not be used afterwards.
// Closing twice is harmless.
func (r *Region) Close() error {
	if r.raw == nil {
		return nil
	}
	raw := r.raw
	r.raw, r.window = nil, nil
	if err := unix.Munmap(raw); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
