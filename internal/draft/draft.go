// Package draft offers a seeded, pity-aware selection of hook cards to pick
// from. It is the source of externally injected hooks: the player picks a
// card and Instantiate builds a fresh hook from it.
package draft

import (
	"cmp"
	"slices"

	"github.com/avila-gabriel/game-balance/internal/mechanics"
)

// #region state
// State carries the random source, reroll budget and pity per pool entry
// across the offers of one draft.
type State struct {
	RerollsLeft int

	stoch       *mechanics.Stoch
	pity        []float64
	lastOffered []int
}

// NewState seeds a draft over a pool of poolLen cards.
func NewState(cfg Config, poolLen int, seed uint64) *State {
	return &State{
		RerollsLeft: max(cfg.RerollsPerDraft, 0),
		stoch:       mechanics.NewStoch(seed),
		pity:        make([]float64, max(poolLen, 0)),
	}
}

// ResizePool grows the pity table with zeros or truncates it.
func (s *State) ResizePool(n int) {
	n = max(n, 0)
	if n > len(s.pity) {
		s.pity = append(s.pity, make([]float64, n-len(s.pity))...)
		return
	}
	s.pity = s.pity[:n]
}

// Pity returns the accumulated boost of pool entry i, or 0 when untracked.
func (s *State) Pity(i int) float64 {
	if i < 0 || i >= len(s.pity) {
		return 0
	}
	return s.pity[i]
}

// LastOffered returns the pool indexes shown by the latest offer.
func (s *State) LastOffered() []int {
	return slices.Clone(s.lastOffered)
}

// #endregion state

// #region offer
type candidate struct {
	idx   int
	tier  Tier
	noise float64
}

// MakeOffer samples each card with probability BaseP plus its pity, orders
// the draws and returns at most max(OptionsPerRoll, 1) of them.
//
// When nothing is drawn from a non-empty pool the first Common card (or the
// first card) is offered. An empty pool yields an empty offer.
func MakeOffer[H any](pool []Card[H], cfg Config, st *State) []Offered {
	var cands []candidate
	for i, c := range pool {
		p := mechanics.Clamp(mechanics.Clamp(c.BaseP, 0, 1)+mechanics.Clamp(st.Pity(i), 0, 1), 0, 1)
		if st.stoch.Bernoulli(p) {
			cands = append(cands, candidate{idx: i, tier: c.Tier})
		}
	}

	if len(cands) == 0 && len(pool) > 0 {
		fallback := 0
		if i := slices.IndexFunc(pool, func(c Card[H]) bool { return c.Tier == Common }); i >= 0 {
			fallback = i
		}
		cands = append(cands, candidate{idx: fallback, tier: pool[fallback].Tier})
	}

	if cfg.PrioritizeTier {
		slices.SortStableFunc(cands, func(a, b candidate) int { return cmp.Compare(b.tier, a.tier) })
		// shuffle within each tier
		for i := 0; i < len(cands); {
			j := i + 1
			for j < len(cands) && cands[j].tier == cands[i].tier {
				j++
			}
			shuffle(cands[i:j], st.stoch)
			i = j
		}
	} else {
		shuffle(cands, st.stoch)
	}

	cands = cands[:min(len(cands), max(cfg.OptionsPerRoll, 1))]

	offer := make([]Offered, 0, len(cands))
	st.lastOffered = st.lastOffered[:0]
	for _, c := range cands {
		offer = append(offer, Offered{PoolIdx: c.idx, Name: pool[c.idx].Name, Tier: c.tier})
		st.lastOffered = append(st.lastOffered, c.idx)
	}
	applyPity(pool, st)

	return offer
}

// Reroll spends one reroll on a fresh offer. It reports false, leaving the
// state untouched, when no rerolls are left.
func Reroll[H any](pool []Card[H], cfg Config, st *State) ([]Offered, bool) {
	if st.RerollsLeft <= 0 {
		return nil, false
	}
	st.RerollsLeft--
	return MakeOffer(pool, cfg, st), true
}

// #endregion offer

// #region pick
// Instantiate builds a fresh hook for an offered card.
func Instantiate[H any](pool []Card[H], card Offered) H {
	return pool[card.PoolIdx].New()
}

// NotifyPicked clears the pity of the picked card. Out-of-range picks are
// ignored.
func NotifyPicked[H any](pool []Card[H], st *State, offer []Offered, picked int) {
	if picked < 0 || picked >= len(offer) {
		return
	}
	idx := offer[picked].PoolIdx
	if idx < 0 || idx >= len(pool) || pool[idx].Pity == nil || idx >= len(st.pity) {
		return
	}
	st.pity[idx] = 0
}

// #endregion pick

// #region helpers
// shuffle orders cs by fresh Gaussian noise, stably.
func shuffle(cs []candidate, s *mechanics.Stoch) {
	for i := range cs {
		cs[i].noise = s.Gaussian01()
	}
	slices.SortStableFunc(cs, func(a, b candidate) int { return cmp.Compare(a.noise, b.noise) })
}

// applyPity resets shown cards and drifts unshown ones toward their cap.
func applyPity[H any](pool []Card[H], st *State) {
	for i, c := range pool {
		if c.Pity == nil || i >= len(st.pity) {
			continue
		}
		limit := max(c.Pity.Cap, 0)
		if slices.Contains(st.lastOffered, i) {
			st.pity[i] = mechanics.Approach(st.pity[i], 0, 1, 0, limit)
			continue
		}
		st.pity[i] = mechanics.Approach(st.pity[i], limit, mechanics.Clamp(c.Pity.K, 0, 1), 0, limit)
	}
}

// #endregion helpers
