// Command benchlists measures migration throughput on synthetic
// legacy-format documents.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/uadtools/listclean/dataio"
	"github.com/uadtools/listclean/pkg/migrate"
)

func main() {
	var (
		records    = flag.Int("records", 500_000, "records to generate")
		legacyProb = flag.Float64("legacy", 0.5, "probability of each legacy field per record")
		jsonOut    = flag.Bool("json", false, "emit JSON summary")
		seed       = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	gen := dataio.NewGenerator(*seed)
	gen.LegacyProb = *legacyProb
	doc := gen.Document(*records)

	runtime.GC()
	var msBefore, msAfter runtime.MemStats
	runtime.ReadMemStats(&msBefore)
	start := time.Now()
	out, err := migrate.Document(context.Background(), doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&msAfter)

	recsPerSec := float64(*records) / elapsed.Seconds()
	summary := map[string]any{
		"records":               out.Len(),
		"elapsed_ms":            elapsed.Milliseconds(),
		"records_per_sec":       recsPerSec,
		"mem_alloc_bytes":       msAfter.Alloc,
		"mem_total_alloc_bytes": msAfter.TotalAlloc - msBefore.TotalAlloc,
		"gc_num":                msAfter.NumGC - msBefore.NumGC,
		"legacy_prob":           *legacyProb,
	}

	if *jsonOut {
		b, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Printf("Records: %d\n", out.Len())
	fmt.Printf("Elapsed: %s\n", elapsed)
	fmt.Printf("Throughput: %.0f records/s\n", recsPerSec)
	fmt.Printf("Total Alloc (delta): %d MB\n", (msAfter.TotalAlloc-msBefore.TotalAlloc)/1024/1024)
	fmt.Printf("GC cycles (delta): %d\n", msAfter.NumGC-msBefore.NumGC)
}
