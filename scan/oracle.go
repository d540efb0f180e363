package scan

// FindAll is the trusted exhaustive matcher: every viable start offset is
// tried and only fixed positions are compared. Offsets come back strictly
// increasing. It computes the expected set for every scenario and is never
// itself ranked; Simple wraps it when a baseline candidate is wanted.
func FindAll(window []byte, p Pattern) []int {
	n := p.Len()
	if n == 0 || n > len(window) {
		return nil
	}
	var out []int
	for i := 0; i+n <= len(window); i++ {
		if matchAt(window, i, p) {
			out = append(out, i)
		}
	}
	return out
}

// matchAt reports whether p occurs at offset i. Callers guarantee
// i+p.Len() <= len(window).
func matchAt(window []byte, i int, p Pattern) bool {
	for j, c := range p.Bytes {
		if p.Mask[j] == MaskFixed && window[i+j] != c {
			return false
		}
	}
	return true
}
