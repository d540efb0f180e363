package bench

// Matches reports whether a scanner's offsets equal the expected set.
// Comparison is set-based: order is irrelevant and duplicates collapse,
// but cardinality and membership must both match exactly. One extra or
// missing offset fails the whole scenario, there is no partial credit.
func Matches(got, want []int) bool {
	set := make(map[int]struct{}, len(got))
	for _, off := range got {
		set[off] = struct{}{}
	}
	if len(set) != len(want) {
		return false
	}
	for _, off := range want {
		if _, ok := set[off]; !ok {
			return false
		}
	}
	return true
}
