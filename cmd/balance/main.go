package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/config"
	"github.com/avila-gabriel/game-balance/internal/draft"
	"github.com/avila-gabriel/game-balance/internal/genre/idle"
	"github.com/avila-gabriel/game-balance/internal/ledger"
	"github.com/avila-gabriel/game-balance/internal/outer"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// #region report
// report is what the command prints and archives.
type report struct {
	RunID     string        `yaml:"run_id"`
	Converged bool          `yaml:"converged"`
	Draft     *draftReport  `yaml:"draft,omitempty"`
	Passes    []idle.Pass   `yaml:"passes"`
	Signals   outer.Signals `yaml:"signals"`
	Audit     audit.Result  `yaml:"audit"`
}

type draftReport struct {
	Seed   uint64          `yaml:"seed"`
	Offer  []draft.Offered `yaml:"offer"`
	Picked string          `yaml:"picked"`
}

// #endregion report

// #region main
func main() {
	configPath := flag.String("config", "", "path to a YAML/TOML/JSON run config (default $BALANCE_CONFIG)")
	dbPath := flag.String("db", "", "archive the run in this ledger (overrides ledger.path)")
	verbosity := flag.Int("v", 0, "log verbosity; 1 logs every system of every pass")
	flag.Parse()

	stdr.SetVerbosity(*verbosity)
	runID := uuid.New().String()
	log := stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags)).WithName("balance").WithValues("run", runID)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}
	if *dbPath != "" {
		cfg.Ledger.Path = *dbPath
	}

	// 1. Optional draft
	var hooks idle.Hooks
	var dr *draftReport
	if cfg.Draft.Pick >= 0 {
		dr, hooks, err = runDraft(cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "draft: %v\n", err)
			os.Exit(2)
		}
	}

	// 2. Balance
	out := idle.Balance(cfg.Envs(), cfg.IdleTargets(), cfg.IdleConfig(log), hooks)

	// 3. Audit the final pass
	res := audit.Result{Passed: true, Reason: "no passes"}
	if last, ok := out.Last(); ok {
		res = audit.Check(idle.AuditFields(last))
	}

	rep := report{
		RunID:     runID,
		Converged: out.Converged(),
		Draft:     dr,
		Passes:    out.Passes,
		Signals:   out.Signals,
		Audit:     res,
	}
	body, err := yaml.Marshal(rep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(body)

	// 4. Optional archive
	if cfg.Ledger.Path != "" {
		if err := archive(cfg, runID, out, string(body)); err != nil {
			fmt.Fprintf(os.Stderr, "archive: %v\n", err)
			os.Exit(1)
		}
		log.Info("run archived", "db", cfg.Ledger.Path)
	}

	if !res.Passed {
		log.Info("audit failed", "reason", res.Reason)
		os.Exit(1)
	}
	log.Info("run complete", "passes", len(out.Passes), "converged", rep.Converged)
}

// #endregion main

// #region draft
// runDraft offers the production pool once and builds the picked mechanic.
func runDraft(cfg config.Run, log logr.Logger) (*draftReport, idle.Hooks, error) {
	pool := idle.CorePool()
	dc := cfg.DraftConfig()
	st := draft.NewState(dc, len(pool), cfg.Draft.Seed)

	offer := draft.MakeOffer(pool, dc, st)
	if cfg.Draft.Pick >= len(offer) {
		return nil, idle.Hooks{}, fmt.Errorf("pick %d outside an offer of %d cards", cfg.Draft.Pick, len(offer))
	}
	picked := offer[cfg.Draft.Pick]
	draft.NotifyPicked(pool, st, offer, cfg.Draft.Pick)
	log.V(1).Info("draft picked", "card", picked.Name, "tier", picked.Tier.String(), "offered", len(offer))

	return &draftReport{Seed: cfg.Draft.Seed, Offer: offer, Picked: picked.Name},
		idle.Hooks{Core: []production.Mechanic{draft.Instantiate(pool, picked)}},
		nil
}

// #endregion draft

// #region archive
func archive(cfg config.Run, runID string, out idle.Outcome, reportYAML string) error {
	cfgYAML, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	entries, err := ledger.Entries(out)
	if err != nil {
		return err
	}

	store, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(ledger.Run{
		ID:           runID,
		Passes:       len(out.Passes),
		ConvergedAll: out.Converged(),
		ConfigYAML:   string(cfgYAML),
		ReportYAML:   reportYAML,
	}, entries)
	return err
}

// #endregion archive
