package refine

import (
	"math"
	"testing"
)

// #region helpers
type prob3 struct{ r, p, s float64 }

func (a prob3) l1(b prob3) float64 {
	return math.Abs(a.r-b.r) + math.Abs(a.p-b.p) + math.Abs(a.s-b.s)
}

func (a prob3) normalize() prob3 {
	sum := a.r + a.p + a.s
	if sum > 0 {
		a.r /= sum
		a.p /= sum
		a.s /= sum
	}
	return a
}

var uniform3 = prob3{1.0 / 3, 1.0 / 3, 1.0 / 3}

type none struct{}

func passThrough[T any](v T) T { return v }

// #endregion helpers

// 1. Gradient step toward uniform converges within tolerance.
func TestRefine_RPSConvergesToUniform(t *testing.T) {
	start := prob3{0.8, 0.15, 0.05}

	final := Refine(start,
		func(p prob3) none { return none{} },
		func(none) none { return none{} },
		func(p prob3, _ none) prob3 {
			const k = 0.2
			return prob3{
				r: p.r - k*(p.r-uniform3.r),
				p: p.p - k*(p.p-uniform3.p),
				s: p.s - k*(p.s-uniform3.s),
			}.normalize()
		},
		func(_, next prob3) bool { return next.l1(uniform3) < 1e-6 },
		10_000,
	)

	if d := final.l1(uniform3); d >= 1e-6 {
		t.Fatalf("did not converge: %+v (l1=%g)", final, d)
	}
}

// 2. Multiplicative weights with uniform mutation on RPSLS reaches uniform play.
func TestRefine_RPSLSMultiplicativeWeights(t *testing.T) {
	a := [5][5]float64{
		{0, -1, 1, 1, -1},
		{1, 0, -1, -1, 1},
		{-1, 1, 0, 1, -1},
		{-1, 1, -1, 0, 1},
		{1, -1, 1, -1, 0},
	}
	const eta, mu = 0.2, 0.02
	l1 := func(p [5]float64) float64 {
		var sum float64
		for _, v := range p {
			sum += math.Abs(v - 0.2)
		}
		return sum
	}

	final := Refine([5]float64{0.85, 0.05, 0.04, 0.03, 0.03},
		func(p [5]float64) [5]float64 {
			var u [5]float64
			for i := range u {
				for j := range p {
					u[i] += a[i][j] * p[j]
				}
			}
			return u
		},
		passThrough[[5]float64],
		func(p [5]float64, u [5]float64) [5]float64 {
			var w [5]float64
			var sum float64
			for i := range w {
				w[i] = p[i] * math.Exp(eta*u[i])
				sum += w[i]
			}
			if sum == 0 {
				return [5]float64{0.2, 0.2, 0.2, 0.2, 0.2}
			}
			for i := range w {
				w[i] = (1-mu)*(w[i]/sum) + mu*0.2
			}
			return w
		},
		func(_, next [5]float64) bool { return l1(next) < 1e-4 },
		100_000,
	)

	if d := l1(final); d >= 1e-4 {
		t.Fatalf("did not converge: %v (l1=%g)", final, d)
	}
}

// 3. TTK window: stats react to metrics measured from the previous stats.
func TestRefine_TTKWindow(t *testing.T) {
	type opp struct{ hp, dps float64 }
	type metrics struct{ avgTTK, avgTTD float64 }
	type unit struct {
		hp, dps float64
		met     metrics
	}
	opponents := []opp{{500, 50}, {800, 40}, {1200, 80}}
	const target = 8.0

	final := Refine(unit{hp: 600, dps: 60},
		func(u unit) metrics {
			var ttk, ttd float64
			for _, o := range opponents {
				ttk += o.hp / math.Max(u.dps, 1e-6)
				ttd += u.hp / math.Max(o.dps, 1e-6)
			}
			n := float64(len(opponents))
			return metrics{avgTTK: ttk / n, avgTTD: ttd / n}
		},
		passThrough[metrics],
		func(u unit, m metrics) unit {
			hp := u.hp - 10*(m.avgTTD-target)
			dps := u.dps + 5*(m.avgTTK-target)
			return unit{
				hp:  math.Min(math.Max(hp, 100), 10_000),
				dps: math.Min(math.Max(dps, 5), 5_000),
				met: m,
			}
		},
		func(_, next unit) bool {
			return math.Abs(next.met.avgTTK-target) < 1e-3 && math.Abs(next.met.avgTTD-target) < 1e-3
		},
		200_000,
	)

	if math.Abs(final.met.avgTTK-target) >= 1e-3 {
		t.Errorf("avg ttk not at target: %f", final.met.avgTTK)
	}
	if math.Abs(final.met.avgTTD-target) >= 1e-3 {
		t.Errorf("avg ttd not at target: %f", final.met.avgTTD)
	}
	if math.IsNaN(final.hp) || math.IsInf(final.hp, 0) || math.IsNaN(final.dps) || math.IsInf(final.dps, 0) {
		t.Errorf("non-finite params: %+v", final)
	}
}

// 4. Exhaustion returns the last θ silently.
func TestRefine_ExhaustionReturnsLastTheta(t *testing.T) {
	calls := 0
	final := Refine(0,
		func(p int) int { calls++; return p },
		passThrough[int],
		func(p int, _ int) int { return p + 1 },
		func(_, _ int) bool { return false },
		7,
	)
	if final != 7 {
		t.Fatalf("expected last theta 7, got %d", final)
	}
	if calls != 7 {
		t.Fatalf("expected 7 simulate calls, got %d", calls)
	}
}

// 5. Zero iterations never touches the stages.
func TestRefine_ZeroIterations(t *testing.T) {
	final := Refine(42,
		func(int) int { t.Fatal("simulate called"); return 0 },
		passThrough[int],
		func(int, int) int { t.Fatal("update called"); return 0 },
		func(_, _ int) bool { t.Fatal("converged called"); return false },
		0,
	)
	if final != 42 {
		t.Fatalf("expected theta0 back, got %d", final)
	}
}

// 6. Convergence returns θ_next, not θ_prev, and stops immediately.
func TestRefine_ReturnsNextOnConvergence(t *testing.T) {
	updates := 0
	final := Refine(10,
		passThrough[int],
		passThrough[int],
		func(p int, _ int) int { updates++; return p / 2 },
		func(prev, next int) bool { return prev-next <= 1 },
		100,
	)
	// 10 -> 5 -> 2 -> 1 (2-1 <= 1 stops)
	if final != 1 {
		t.Fatalf("expected 1, got %d", final)
	}
	if updates != 3 {
		t.Fatalf("expected 3 updates, got %d", updates)
	}
}
