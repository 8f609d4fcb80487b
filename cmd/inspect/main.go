package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/avila-gabriel/game-balance/internal/ledger"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to a balance ledger")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	system := flag.String("system", "", "filter run detail to one system")
	showReport := flag.Bool("report", false, "print the archived YAML report in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/ledger.db [--last N] [--run id] [--system name] [--report] [--json]")
		os.Exit(2)
	}

	store, err := ledger.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *system, *showReport, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID        string `json:"run_id"`
	Passes       int    `json:"passes"`
	ConvergedAll bool   `json:"converged_all"`
	CreatedAt    string `json:"created_at"`
}

func runListMode(store *ledger.Store, last int, jsonOut bool) error {
	runs, err := store.List(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	// store returns DESC, reverse for chronological
	rows := make([]listRow, len(runs))
	for i, r := range runs {
		rows[len(runs)-1-i] = listRow{
			RunID:        r.ID,
			Passes:       r.Passes,
			ConvergedAll: r.ConvergedAll,
			CreatedAt:    r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %6s  %-9s  %s\n", "Run", "Passes", "Converged", "Time")
	fmt.Printf("%-10s+-%6s+-%-9s+-%s\n", "----------", "------", "---------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-10s  %6d  %-9v  %s\n", shortID(r.RunID), r.Passes, r.ConvergedAll, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type systemRow struct {
	Pass      int    `json:"pass"`
	System    string `json:"system"`
	Iters     int    `json:"iters"`
	Converged bool   `json:"converged"`
	Theta     string `json:"theta"`
}

type detailOutput struct {
	RunID        string      `json:"run_id"`
	CreatedAt    string      `json:"created_at"`
	Passes       int         `json:"passes"`
	ConvergedAll bool        `json:"converged_all"`
	Systems      []systemRow `json:"systems"`
	Report       string      `json:"report,omitempty"`
}

func runDetailMode(store *ledger.Store, runID, system string, showReport, jsonOut bool) error {
	run, err := store.Get(runID)
	if err != nil {
		return err
	}
	entries, err := store.Systems(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		RunID:        run.ID,
		CreatedAt:    run.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Passes:       run.Passes,
		ConvergedAll: run.ConvergedAll,
	}
	for _, e := range entries {
		if system != "" && e.System != system {
			continue
		}
		out.Systems = append(out.Systems, systemRow{
			Pass:      e.Pass,
			System:    e.System,
			Iters:     e.Iters,
			Converged: e.Converged,
			Theta:     e.ThetaYAML,
		})
	}
	if showReport {
		out.Report = run.ReportYAML
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:        %s\n", out.RunID)
	fmt.Printf("Created:    %s\n", out.CreatedAt)
	fmt.Printf("Passes:     %d\n", out.Passes)
	fmt.Printf("Converged:  %v\n", out.ConvergedAll)

	fmt.Printf("\n%-4s  %-13s  %8s  %s\n", "Pass", "System", "Iters", "Converged")
	for _, s := range out.Systems {
		fmt.Printf("%-4d  %-13s  %8d  %v\n", s.Pass, s.System, s.Iters, s.Converged)
	}

	if showReport {
		fmt.Printf("\nReport:\n%s", out.Report)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
