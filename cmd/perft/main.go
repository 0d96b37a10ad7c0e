// Command perft counts leaf nodes of the legal move tree from a position.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"chess-rules/chessmg"
	"chess-rules/internal/oracle"
	"chess-rules/notation"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	workers := flag.Int("workers", 1, "Split root moves over N goroutines (0 = GOMAXPROCS)")
	verify := flag.String("verify", "", "Cross-check divide counts against another generator (dragontooth, goose)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if *depth <= 0 {
		log.Error("-depth must be > 0")
		os.Exit(2)
	}
	if *workers <= 0 {
		*workers = runtime.GOMAXPROCS(0)
	}

	pos, err := notation.ParsePosition(*fen)
	if err != nil {
		log.WithError(err).Error("parse fen")
		os.Exit(2)
	}
	ctx := log.WithFields(log.Fields{"fen": *fen, "depth": *depth, "workers": *workers})

	if *verify != "" {
		os.Exit(runVerify(ctx, *fen, *depth, *workers, *verify))
	}

	if *divide {
		div := oracle.Native{Workers: *workers}
		counts, err := div.Divide(*fen, *depth)
		if err != nil {
			ctx.WithError(err).Error("divide")
			os.Exit(2)
		}
		for _, m := range oracle.SortedKeys(counts) {
			fmt.Printf("%s: %d\n", m, counts[m])
		}
		fmt.Printf("Total: %d\n", oracle.Total(counts))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			ctx.WithError(err).Error("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			ctx.WithError(err).Error("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(pos, *depth, *workers)
		ctx.WithField("run", i+1).Debug("perft done")
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			ctx.WithError(err).Error("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			ctx.WithError(err).Error("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func count(p chessmg.Position, depth, workers int) uint64 {
	if workers <= 1 {
		return chessmg.Perft(p, depth)
	}
	var sum uint64
	for _, n := range chessmg.ParallelPerftDivide(p, depth, workers) {
		sum += n
	}
	return sum
}

func runVerify(ctx log.Interface, fen string, depth, workers int, ref string) int {
	reference, err := oracle.ByName(ref)
	if err != nil {
		ctx.WithError(err).Error("verify")
		return 2
	}
	mismatches, err := oracle.Verify(fen, depth, reference, oracle.Native{Workers: workers})
	if err != nil {
		ctx.WithError(err).Error("verify")
		return 2
	}
	if len(mismatches) == 0 {
		ctx.WithField("reference", reference.Name()).Info("divide counts agree")
		return 0
	}
	for _, m := range mismatches {
		fmt.Println(m)
	}
	ctx.WithFields(log.Fields{"reference": reference.Name(), "mismatches": len(mismatches)}).Error("divide counts differ")
	return 1
}
