package scan

import "bytes"

// RareByte anchors on the rarest fixed pattern byte: IndexByte skips to
// each occurrence of the anchor, and only those candidates get a full
// fixed-position verify. With a good rank table most of the window is
// never touched byte-by-byte.
type RareByte struct {
	ranks []byte
}

// NewRareByte returns a rare-byte scanner using ranks, or the built-in
// binary-corpus table when ranks is nil. ranks must have exactly 256
// entries.
func NewRareByte(ranks []byte) RareByte {
	if ranks == nil {
		ranks = binaryRank[:]
	}
	if len(ranks) != 256 {
		panic("ranks must have exactly 256 entries")
	}
	return RareByte{ranks: ranks}
}

func (s RareByte) Name() string { return "rare-byte" }

func (s RareByte) Scan(p Pattern, window []byte) ([]int, error) {
	if err := checkPattern(p); err != nil {
		return nil, err
	}
	n := p.Len()
	if n > len(window) {
		return nil, nil
	}

	rare, off := selectRare(p, s.ranks)

	// the anchor byte of a viable candidate sits in [off, end]
	end := len(window) - n + off
	var out []int
	pos := off
	for pos <= end {
		idx := bytes.IndexByte(window[pos:end+1], rare)
		if idx < 0 {
			break
		}
		cand := pos + idx - off
		if matchAt(window, cand, p) {
			out = append(out, cand)
		}
		pos += idx + 1
	}
	return out, nil
}
