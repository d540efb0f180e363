//go:build !unix

package region

import (
	"fmt"
	"os"
)

// Map allocates a plain page-rounded buffer. Without mmap there are no
// guard pages; overscans go undetected here, the harness still runs.
func Map(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("region size must be positive, got %d", size)
	}
	page := os.Getpagesize()
	full := (size + page - 1) / page * page
	return &Region{window: make([]byte, full)}, nil
}

// Close releases the window. Closing twice is harmless.
func (r *Region) Close() error {
	r.window = nil
	return nil
}
