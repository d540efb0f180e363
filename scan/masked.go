package scan

import (
	"bytes"

	"github.com/segmentio/asm/mem"
)

// AsmMask verifies candidates with the vectorized slice ops from
// segmentio/asm: the candidate window bytes are copied into a scratch
// buffer, ANDed with the wildcard byte mask, and compared against the
// pre-masked pattern. Candidates come from IndexByte on the first fixed
// byte.
type AsmMask struct{}

func (AsmMask) Name() string { return "asm-mask" }

func (AsmMask) Scan(p Pattern, window []byte) ([]int, error) {
	if err := checkPattern(p); err != nil {
		return nil, err
	}
	n := p.Len()
	if n > len(window) {
		return nil, nil
	}

	byteMask := make([]byte, n)
	anchor := -1
	for i := 0; i < n; i++ {
		if p.Fixed(i) {
			byteMask[i] = 0xFF
			if anchor < 0 {
				anchor = i
			}
		}
	}

	masked := make([]byte, n)
	copy(masked, p.Bytes)
	mem.Mask(masked, byteMask)

	scratch := make([]byte, n)
	end := len(window) - n + anchor
	var out []int
	pos := anchor
	for pos <= end {
		idx := bytes.IndexByte(window[pos:end+1], p.Bytes[anchor])
		if idx < 0 {
			break
		}
		cand := pos + idx - anchor
		mem.Copy(scratch, window[cand:cand+n])
		mem.Mask(scratch, byteMask)
		if bytes.Equal(scratch, masked) {
			out = append(out, cand)
		}
		pos += idx + 1
	}
	return out, nil
}
