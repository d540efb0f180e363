// Package region owns the haystack buffer scanners run against. The usable
// window is page-rounded and, on unix, bracketed by one PROT_NONE page on
// each side so an overscanning implementation faults right at the edge
// instead of silently reading neighboring memory.
package region

import (
	"fmt"
	"io"
)

// Region is a page-aligned buffer with guard pages where the platform
// supports them. Allocated once per run; the window is refilled between
// runs but never reallocated.
type Region struct {
	raw    []byte // full mapping including guard pages; nil without mmap
	window []byte // usable page-rounded bytes
}

// Window returns the usable bytes. The returned slice stays valid until
// Close.
func (r *Region) Window() []byte { return r.window }

// Size returns the usable window size, always a multiple of the page size.
func (r *Region) Size() int { return len(r.window) }

// FillFrom fills the whole window from src.
func (r *Region) FillFrom(src io.Reader) error {
	if _, err := io.ReadFull(src, r.window); err != nil {
		return fmt.Errorf("fill window: %w", err)
	}
	return nil
}

// FillBytes zeroes the window and copies b right-aligned at its end, so a
// haystack shorter than the page-rounded window keeps its bytes at the
// highest offsets with zero padding in front. Content longer than the
// window keeps its trailing window-size bytes, the same end-anchored view.
func (r *Region) FillBytes(b []byte) {
	w := r.window
	if len(b) >= len(w) {
		copy(w, b[len(b)-len(w):])
		return
	}
	pad := len(w) - len(b)
	clear(w[:pad])
	copy(w[pad:], b)
}
