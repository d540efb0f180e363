package bench

import "sort"

// Rank orders entries by correctness first and speed second: ascending
// failure count, ties broken by ascending cumulative ticks. A scanner
// with one failure ranks below every clean scanner no matter how fast it
// was. The sort is stable, so exact ties keep registration order.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Failures != entries[j].Failures {
			return entries[i].Failures < entries[j].Failures
		}
		return entries[i].Elapsed < entries[j].Elapsed
	})
}

// TicksPerByte normalizes an entry's cumulative ticks by the total bytes
// scanned, taking the last scenario's window size as representative of
// every scenario. Window sizes differ only by the jitter draw.
func (r *RunResult) TicksPerByte(e Entry) float64 {
	total := float64(r.LastWindow) * float64(r.Scenarios)
	if total == 0 {
		return 0
	}
	return float64(e.Elapsed) / total
}
