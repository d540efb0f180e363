//go:build unix

package bench

import (
	"testing"
	"unsafe"

	"github.com/mhr3/sigbench/internal/mt"
	"github.com/mhr3/sigbench/internal/region"
	"github.com/mhr3/sigbench/scan"
)

// overrunScanner reads length+1 bytes through unsafe pointer arithmetic,
// sidestepping slice bounds checks. On a guarded region the final read
// lands in the trailing guard page.
type overrunScanner struct{}

func (overrunScanner) Name() string { return "overrun" }
func (overrunScanner) Scan(p scan.Pattern, window []byte) ([]int, error) {
	base := unsafe.Pointer(unsafe.SliceData(window))
	var sink byte
	for i := 0; i <= len(window); i++ {
		sink ^= *(*byte)(unsafe.Add(base, i))
	}
	return []int{int(sink)}, nil
}

func TestGuardPageFaultContainment(t *testing.T) {
	reg, err := region.Map(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer reg.Close()

	rng := mt.New(0xFAB)
	if err := reg.FillFrom(rng); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.RegionSize = reg.Size()
	cfg.Scenarios = 2

	registry := registryOf(t, overrunScanner{}, scan.Simple{})
	h := New(registry, cfg, nil)
	h.Ticks = &scriptedTicks{step: 1}

	res := h.Run(reg.Window(), rng)

	for _, e := range res.Entries {
		switch e.Scanner.Name() {
		case "overrun":
			if e.Failures != cfg.Scenarios {
				t.Errorf("overrun contained %d times, want %d", e.Failures, cfg.Scenarios)
			}
		case "simple":
			if e.Failures != 0 {
				t.Errorf("simple took %d failures alongside the faulting scanner", e.Failures)
			}
		}
		if e.Elapsed != uint64(cfg.Scenarios) {
			t.Errorf("%s: elapsed %d, want %d", e.Scanner.Name(), e.Elapsed, cfg.Scenarios)
		}
	}
}
