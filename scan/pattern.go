// Package scan defines masked byte patterns, the exhaustive reference
// matcher used as ground truth, and the candidate scanner implementations
// the harness ranks against each other.
package scan

import (
	"fmt"
	"strings"
)

// Mask markers. Every mask position is one of these two bytes.
const (
	// MaskFixed marks a pattern position that must match exactly.
	MaskFixed = 'x'
	// MaskAny marks a wildcard position that matches any byte.
	MaskAny = '?'
)

// Pattern is a byte needle with a parallel mask. Wildcard bytes are stored
// as zero by convention but never consulted by a matcher.
type Pattern struct {
	Bytes []byte
	Mask  []byte
}

// Len returns the pattern length in bytes.
func (p Pattern) Len() int { return len(p.Bytes) }

// Fixed reports whether position i must match exactly.
func (p Pattern) Fixed(i int) bool { return p.Mask[i] == MaskFixed }

// Valid reports whether the mask parallels the bytes, holds only mask
// markers, and fixes at least one position. An all-wildcard pattern is
// invalid: it would match every viable offset.
func (p Pattern) Valid() bool {
	if len(p.Bytes) == 0 || len(p.Bytes) != len(p.Mask) {
		return false
	}
	fixed := false
	for _, m := range p.Mask {
		switch m {
		case MaskFixed:
			fixed = true
		case MaskAny:
		default:
			return false
		}
	}
	return fixed
}

// String renders the pattern as spaced hex with ?? at wildcard positions,
// e.g. "48 8B ?? C3". Render only; patterns are never parsed from text.
func (p Pattern) String() string {
	var b strings.Builder
	for i, c := range p.Bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < len(p.Mask) && !p.Fixed(i) {
			b.WriteString("??")
			continue
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}
