package scan

import "bytes"

// Substring extracts the longest run of consecutive fixed bytes and lets
// bytes.Index do the heavy scanning, verifying the rest of the pattern
// around each hit. Patterns with long fixed stretches get stdlib search
// speed; heavily wildcarded ones degrade toward single-byte anchoring.
type Substring struct{}

func (Substring) Name() string { return "substring" }

func (Substring) Scan(p Pattern, window []byte) ([]int, error) {
	if err := checkPattern(p); err != nil {
		return nil, err
	}
	n := p.Len()
	if n > len(window) {
		return nil, nil
	}

	runOff, runLen := longestFixedRun(p)
	needle := p.Bytes[runOff : runOff+runLen]

	// the run of a viable candidate starts in [runOff, hi-runLen]
	hi := len(window) - n + runOff + runLen
	var out []int
	pos := runOff
	for pos+runLen <= hi {
		idx := bytes.Index(window[pos:hi], needle)
		if idx < 0 {
			break
		}
		cand := pos + idx - runOff
		if matchAt(window, cand, p) {
			out = append(out, cand)
		}
		pos += idx + 1
	}
	return out, nil
}

// longestFixedRun returns the offset and length of the longest stretch of
// consecutive fixed positions. Ties keep the earliest run.
func longestFixedRun(p Pattern) (off, length int) {
	cur, curStart := 0, 0
	for i := 0; i < p.Len(); i++ {
		if !p.Fixed(i) {
			cur = 0
			continue
		}
		if cur == 0 {
			curStart = i
		}
		cur++
		if cur > length {
			off, length = curStart, cur
		}
	}
	return off, length
}
