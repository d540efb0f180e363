package scan

// SWAR compares the pattern eight bytes at a time. The pattern and its
// wildcard mask are widened to little-endian words with wildcard bytes
// zeroed, so one load, one AND and one compare cover eight positions; the
// tail under eight bytes goes byte-granular.
type SWAR struct{}

func (SWAR) Name() string { return "swar64" }

func (SWAR) Scan(p Pattern, window []byte) ([]int, error) {
	if err := checkPattern(p); err != nil {
		return nil, err
	}
	n := p.Len()
	if n > len(window) {
		return nil, nil
	}

	words, masks := packWords(p)
	tail := len(words) * 8

	var out []int
	for i := 0; i+n <= len(window); i++ {
		if matchWordsAt(window, i, words, masks) && matchTailAt(window, i, tail, p) {
			out = append(out, i)
		}
	}
	return out, nil
}

// packWords widens the pattern's full 8-byte groups into value and mask
// words. A wildcard position contributes a zero mask byte, so any window
// byte survives the compare there.
func packWords(p Pattern) (words, masks []uint64) {
	full := p.Len() / 8
	words = make([]uint64, full)
	masks = make([]uint64, full)
	for k := 0; k < full; k++ {
		var w, m uint64
		for j := 0; j < 8; j++ {
			if p.Fixed(k*8 + j) {
				w |= uint64(p.Bytes[k*8+j]) << (8 * j)
				m |= 0xFF << (8 * j)
			}
		}
		words[k], masks[k] = w, m
	}
	return words, masks
}

// matchWordsAt compares the full words of the pattern against the window
// at offset i. Callers guarantee i+p.Len() <= len(window), which covers
// every word load.
func matchWordsAt(window []byte, i int, words, masks []uint64) bool {
	for k := range words {
		s := window[i+k*8:]
		_ = s[7]
		w := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
		if w&masks[k] != words[k] {
			return false
		}
	}
	return true
}

// matchTailAt verifies the byte-granular tail starting at pattern
// position from.
func matchTailAt(window []byte, i, from int, p Pattern) bool {
	for j := from; j < p.Len(); j++ {
		if p.Mask[j] == MaskFixed && window[i+j] != p.Bytes[j] {
			return false
		}
	}
	return true
}
