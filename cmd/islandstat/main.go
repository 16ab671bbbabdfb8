package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"islandgen/internal/app"
	"islandgen/internal/island"
)

type run struct {
	seed    int64
	summary island.Summary
	err     error
}

func main() {
	settings := flag.String("settings", "settings.json", "JSON settings file")
	seed := flag.Int64("seed", 0, "first seed (0 uses the configured seed)")
	count := flag.Int("seeds", 1, "number of consecutive seeds to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generation workers")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "override a parameter as key=value (repeatable)")
	flag.Parse()

	base, err := island.LoadSettings(*settings)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	cfg := island.Merge(base, overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	first := *seed
	if first == 0 {
		first = island.ResolveSeed(cfg.Seed)
	}
	if *count < 1 {
		*count = 1
	}
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Generating %d island(s) of %dx%d (%s mode, %s output, %d workers)\n",
		*count, cfg.Width, cfg.Height, cfg.Mode, cfg.Output, *workers)

	jobs := make(chan int64)
	results := make(chan run)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				res, err := island.Run(cfg, s)
				if err != nil {
					results <- run{seed: s, err: err}
					continue
				}
				results <- run{seed: s, summary: res.Summary()}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for i := 0; i < *count; i++ {
			jobs <- first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []run
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	failed := 0
	landTotal := 0.0
	for _, r := range all {
		if r.err != nil {
			failed++
			fmt.Printf("seed %d: %v\n", r.seed, r.err)
			continue
		}
		printSummary(r.summary)
		landTotal += r.summary.LandFraction
	}
	if ok := len(all) - failed; ok > 1 {
		fmt.Printf("\n%d runs in %v, mean land %.1f%%\n", ok, time.Since(start).Round(time.Millisecond), 100*landTotal/float64(ok))
	}
	if failed > 0 {
		log.Fatalf("%d of %d runs failed", failed, len(all))
	}
}

func printSummary(s island.Summary) {
	total := s.Width * s.Height
	fmt.Printf("\nseed %d: %dx%d, heights [%.3f, %.3f], land %.1f%%, %v\n",
		s.Seed, s.Width, s.Height, s.MinHeight, s.MaxHeight, 100*s.LandFraction, s.Elapsed.Round(time.Microsecond))
	for m, n := range s.Histogram {
		fmt.Printf("  %-13s %7d  %5.1f%%\n", island.Material(m), n, 100*float64(n)/float64(total))
	}
	switch s.Output {
	case island.OutputVoxels:
		fmt.Printf("  voxels: %d blocks in %d columns\n", s.Voxels, s.Columns)
	default:
		format := "16-bit"
		if s.WideIndices {
			format = "32-bit"
		}
		fmt.Printf("  %s: %d vertices, %d triangles, %s indices\n", s.Output, s.Vertices, s.Triangles, format)
		fmt.Printf("  extent: (%.1f, %.1f, %.1f) to (%.1f, %.1f, %.1f)\n",
			s.ExtentMin[0], s.ExtentMin[1], s.ExtentMin[2], s.ExtentMax[0], s.ExtentMax[1], s.ExtentMax[2])
	}
}
