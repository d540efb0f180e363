package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mhr3/sigbench/bench"
	"github.com/mhr3/sigbench/internal/config"
	"github.com/mhr3/sigbench/internal/logging"
	"github.com/mhr3/sigbench/internal/mt"
	"github.com/mhr3/sigbench/internal/region"
	"github.com/mhr3/sigbench/scan"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sigbench [haystack-file]",
		Short: "Differential shootout for signature scanners",
		Long: `sigbench generates reproducible randomized scan scenarios over a
page-guarded haystack, checks every registered scanner against an
exhaustive oracle, and ranks the field by failures first and cycles
second.

Without an argument the haystack is filled from the seeded RNG. Pass a
file (plain, gzip or zstd) to scan real dump content instead; its bytes
are right-aligned in the page-rounded region with zero padding in
front. The logged seed replays a run exactly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	cmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
	cmd.Flags().Uint32("seed", 0, "RNG seed (0 picks a fresh one from entropy)")
	cmd.Flags().Int("size", config.DefaultRegionSize, "Haystack size in bytes when no file is given")
	cmd.Flags().Int("tests", config.DefaultScenarios, "Number of scenarios to run")
	cmd.Flags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().Bool("no-color", false, "Disable report coloring")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// flags override file values only when actually set on the command line
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint32("seed")
	}
	if flags.Changed("size") {
		cfg.RegionSize, _ = flags.GetInt("size")
	}
	if flags.Changed("tests") {
		cfg.Scenarios, _ = flags.GetInt("tests")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	// a supplied file decides the region size; --size applies to the
	// random-fill path only
	var haystack []byte
	size := cfg.RegionSize
	if len(args) == 1 {
		haystack, err = bench.ReadDump(args[0])
		if err != nil {
			return err
		}
		if len(haystack) == 0 {
			return fmt.Errorf("haystack file %s is empty", args[0])
		}
		size = len(haystack)
	}

	reg, err := region.Map(size)
	if err != nil {
		return fmt.Errorf("failed to allocate guarded region: %w", err)
	}
	defer reg.Close()

	if reg.Size() < cfg.PatternMax+cfg.JitterMax {
		return fmt.Errorf("haystack of %d bytes cannot fit pattern_max %d with jitter_max %d",
			reg.Size(), cfg.PatternMax, cfg.JitterMax)
	}

	seed := mt.Resolve(cfg.Seed)
	rng := mt.New(seed)

	if haystack != nil {
		reg.FillBytes(haystack)
	} else if err := reg.FillFrom(rng); err != nil {
		return fmt.Errorf("failed to fill region: %w", err)
	}

	log.Debug("cpu features",
		"avx2", cpu.X86.HasAVX2,
		"sse41", cpu.X86.HasSSE41,
		"asimd", cpu.ARM64.HasASIMD)
	bench.Banner(log, seed, reg.Size(), cfg.Scenarios)

	registry, err := buildRegistry(reg.Window())
	if err != nil {
		return err
	}

	h := bench.New(registry, cfg, log)
	res := h.Run(reg.Window(), rng)

	bench.Rank(res.Entries)
	res.WriteReport(os.Stdout)

	return nil
}

// buildRegistry assembles the candidate field. The rare-byte scanner gets
// a rank table built from the actual haystack, so its anchor choice
// reflects the bytes it will scan.
func buildRegistry(corpus []byte) (*scan.Registry, error) {
	ranks := scan.BuildRankTable(corpus)

	registry := new(scan.Registry)
	for _, s := range []scan.Scanner{
		scan.Simple{},
		scan.NewRareByte(ranks[:]),
		scan.SWAR{},
		scan.AsmMask{},
		scan.Substring{},
	} {
		if err := registry.Register(s); err != nil {
			return nil, fmt.Errorf("failed to register scanner: %w", err)
		}
	}
	return registry, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sigbench version %s\n", version)
		},
	}
}
