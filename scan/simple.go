package scan

// Simple runs the reference matcher as a candidate. It anchors the
// leaderboard: any scanner it outranks on correctness is broken.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Scan(p Pattern, window []byte) ([]int, error) {
	return FindAll(window, p), nil
}
