package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avila-gabriel/game-balance/internal/ledger"
	"github.com/avila-gabriel/game-balance/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to a balance ledger (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	last := flag.Int("last", 20, "DB mode: replay the N most recent runs")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/ledger.db [--last N]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region modes

func runDBMode(dbPath string, last int) int {
	store, err := ledger.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	f, skipped, err := replay.FromLedger(store, last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read ledger: %v\n", err)
		return 2
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d runs without a replayable first pass\n", skipped)
	}
	if len(f.Scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "no replayable runs found")
		return 2
	}
	return runFixture(f)
}

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	return runFixture(f)
}

func runFixture(f *replay.Fixture) int {
	results := replay.Replay(f.ToScenarios(), f.Config.ToReplayConfig())

	expected := make([]string, len(f.ExpectedResults))
	for i, e := range f.ExpectedResults {
		expected[i] = e.Action
	}
	return printComparison(results, expected)
}

// #endregion modes

// #region output

// printComparison outputs a comparison table and returns the exit code.
func printComparison(results []replay.ReplayResult, expected []string) int {
	fmt.Printf("%-38s| %-15s| %-15s| %-8s| %s\n", "Scenario", "Expected", "Replayed", "Iters", "Match")
	fmt.Printf("%-38s+%-15s+%-15s+%-8s+%s\n",
		"--------------------------------------", "----------------", "----------------", "---------", "------")

	matches := 0
	total := min(len(results), len(expected))

	for i := 0; i < total; i++ {
		r := results[i]
		match := "DIFF"
		if expected[i] == r.Action {
			match = "OK"
			matches++
		}
		fmt.Printf("%-38s| %-15s| %-15s| %-8d| %s\n", r.Name, expected[i], r.Action, r.Outcome.Iters, match)
	}

	s := replay.Summarize(results)
	diverge := total - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge (%d converged, %d not converged, %d audit failures)\n",
		total, matches, diverge, s.Converged, s.NotConverged, s.AuditFails)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion output
