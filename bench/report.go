package bench

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

// Banner logs the run parameters at startup. The seed printed here plus
// the scenario count is everything needed to replay the run against the
// same haystack source.
func Banner(log *slog.Logger, seed uint32, size, tests int) {
	log.Info("signature scan shootout",
		slog.String("seed", fmt.Sprintf("0x%08X", seed)),
		slog.String("size", fmt.Sprintf("0x%X", size)),
		slog.Int("tests", tests))
}

// WriteReport renders the final leaderboard, one line per scanner in rank
// order. The exact formatting is informational, not a compatibility
// contract.
func (r *RunResult) WriteReport(w io.Writer) {
	clean := color.New(color.FgGreen).SprintFunc()
	dirty := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "%-5s %-32s %16s %12s %9s\n",
		"rank", "scanner", r.Unit, r.Unit+"/byte", "failures")
	for i, e := range r.Entries {
		// pad before colorizing, escape codes would skew the column
		name := fmt.Sprintf("%-32s", e.Scanner.Name())
		if e.Failures == 0 {
			name = clean(name)
		} else {
			name = dirty(name)
		}
		fmt.Fprintf(w, "%-5d %s %16d %12.4f %9d\n",
			i+1, name, e.Elapsed, r.TicksPerByte(e), e.Failures)
	}
}
