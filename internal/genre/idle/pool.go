package idle

import (
	"github.com/avila-gabriel/game-balance/internal/draft"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// #region core-pool
// CorePool is the draft pool of production mechanics a player can pick
// before a run. Every card builds a new mechanic on each pick.
func CorePool() []draft.Card[production.Mechanic] {
	return []draft.Card[production.Mechanic]{
		{
			Name:  "income_x1.25",
			Tier:  draft.Common,
			BaseP: 0.6,
			New:   func() production.Mechanic { return production.IncomeMult{Mult: 1.25} },
		},
		{
			Name:  "util_nudge",
			Tier:  draft.Uncommon,
			BaseP: 0.35,
			Pity:  &draft.PitySpec{Cap: 0.3, K: 0.25},
			New:   func() production.Mechanic { return production.UtilNudge{Add: 0.05} },
		},
		{
			Name:  "growth_nudge",
			Tier:  draft.Uncommon,
			BaseP: 0.35,
			Pity:  &draft.PitySpec{Cap: 0.3, K: 0.25},
			New:   func() production.Mechanic { return production.GrowthNudge{Mult: 1.1} },
		},
		{
			Name:  "fee_boost",
			Tier:  draft.Rare,
			BaseP: 0.15,
			Pity:  &draft.PitySpec{Cap: 0.5, K: 0.2},
			New:   func() production.Mechanic { return &production.FeeBoost{Slope: 0.05, MaxMult: 1.5} },
		},
	}
}

// #endregion core-pool
