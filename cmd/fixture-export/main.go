package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/avila-gabriel/game-balance/internal/ledger"
	"github.com/avila-gabriel/game-balance/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to a balance ledger")
	outPath := flag.String("out", "", "output fixture JSON path")
	last := flag.Int("last", 50, "export the N most recent runs")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/ledger.db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *outPath, *last); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, outPath string, last int) error {
	store, err := ledger.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	f, skipped, err := replay.FromLedger(store, last)
	if err != nil {
		return err
	}
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("no replayable runs in the last %d (%d skipped)", last, skipped)
	}

	fmt.Printf("Found %d replayable runs (%d skipped)\n", len(f.Scenarios), skipped)
	return writeFixture(f, outPath)
}

// #endregion extract

// #region output

func writeFixture(f *replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d scenarios)\n", outPath, len(data), len(f.Scenarios))
	return nil
}

// #endregion output
