package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genOut    string
	genRows   int
	genRate   float64
	genMarker string
	genSeed   int64
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a mock transaction ledger with injected corruption",
	Long: `Gen writes a transaction ledger (id|from_id|to_id|amount) with a
header row. A configurable fraction of rows has one interior delimiter
overwritten by the corruption marker, mimicking the upstream fault this
tool exists to repair.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", "data.csv", "output file")
	genCmd.Flags().IntVarP(&genRows, "rows", "n", 1_000_000, "number of data rows")
	genCmd.Flags().Float64Var(&genRate, "rate", 0.00001, "fraction of rows to corrupt")
	genCmd.Flags().StringVar(&genMarker, "marker", "l", "corruption marker substituted for a delimiter")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = nondeterministic)")
}

func runGen(cmd *cobra.Command, args []string) error {
	if len([]rune(genMarker)) != 1 {
		return fmt.Errorf("marker must be a single character, got %q", genMarker)
	}

	f, err := os.Create(genOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(genSeed))
	if genSeed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	w := bufio.NewWriterSize(f, 1<<20)
	fmt.Fprintln(w, "id|from_id|to_id|amount")

	malformed := 0
	for i := 0; i < genRows; i++ {
		fromID := fmt.Sprintf("ACC%08d", 1000000+rng.Intn(8999999))
		toID := fmt.Sprintf("ACC%08d", 1000000+rng.Intn(8999999))
		amount := 1.0 + rng.Float64()*99999.0

		delim := "|"
		if rng.Float64() < genRate {
			delim = genMarker
			malformed++
		}
		fmt.Fprintf(w, "TXN%010d|%s%s%s|%.2f\n", i, fromID, delim, toID, amount)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	logger.Info("ledger generated",
		zap.String("path", genOut),
		zap.Int("rows", genRows),
		zap.Int("malformed", malformed))
	fmt.Printf("generated %d rows (%d malformed) to %s\n", genRows, malformed, genOut)
	return nil
}
