package mechanics

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// #region stoch
// Stoch draws stochastic modifiers from an explicitly seeded source. The
// refinement loop never creates one; callers inject it into hooks or the
// draft so identical seeds give identical runs.
type Stoch struct {
	src rand.Source
}

// NewStoch returns a Stoch over a PCG source seeded with seed.
func NewStoch(seed uint64) *Stoch {
	return &Stoch{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Source exposes the underlying source for gonum distributions.
func (s *Stoch) Source() rand.Source { return s.src }

// Gaussian01 draws from N(0, 1).
func (s *Stoch) Gaussian01() float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: s.src}.Rand()
}

// Bernoulli reports true with probability p, clamped to [0, 1].
func (s *Stoch) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: Clamp(p, 0, 1), Src: s.src}.Rand() == 1
}

// CritFactor returns mult with probability chance, else 1.
func (s *Stoch) CritFactor(chance, mult float64) float64 {
	if s.Bernoulli(chance) {
		return mult
	}
	return 1
}

// DamageNoise is a multiplicative jitter max(0, 1 + N(0,1)*jitter).
func (s *Stoch) DamageNoise(jitter float64) float64 {
	return math.Max(1+s.Gaussian01()*jitter, 0)
}

// #endregion stoch
