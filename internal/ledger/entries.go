package ledger

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/avila-gabriel/game-balance/internal/genre/idle"
)

// Entries flattens an idle outcome into one entry per system per pass, in
// the order the orchestrator ran them.
func Entries(out idle.Outcome) ([]SystemEntry, error) {
	entries := make([]SystemEntry, 0, 4*len(out.Passes))
	for _, p := range out.Passes {
		rows := []struct {
			name      string
			theta     any
			iters     int
			converged bool
		}{
			{"production", p.Core.Theta, p.Core.Iters, p.Core.Converged},
			{"upgradecurve", p.Curve.Theta, p.Curve.Iters, p.Curve.Converged},
			{"prestige", p.Prestige.Theta, p.Prestige.Iters, p.Prestige.Converged},
			{"offline", p.Offline.Theta, p.Offline.Iters, p.Offline.Converged},
		}
		for _, r := range rows {
			theta, err := yaml.Marshal(r.theta)
			if err != nil {
				return nil, fmt.Errorf("marshal %s theta: %w", r.name, err)
			}
			entries = append(entries, SystemEntry{
				Pass:      p.Index,
				System:    r.name,
				Iters:     r.iters,
				Converged: r.converged,
				ThetaYAML: string(theta),
			})
		}
	}
	return entries, nil
}
