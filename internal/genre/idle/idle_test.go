package idle

import (
	"strings"

	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

// observeCounter counts the iterations it took part in.
type observeCounter struct {
	production.Nop
	calls int
}

func (c *observeCounter) OnObserve(production.Obs, production.Params, production.Env, production.Targets) {
	c.calls++
}

var _ = Describe("Balance", func() {
	var (
		envs Envs
		tgt  Targets
		cfg  Config
	)

	BeforeEach(func() {
		envs = DefaultEnvs()
		tgt = DefaultTargets()
		cfg = DefaultConfig()
		cfg.MaxItersPerSystem = 5_000
	})

	Context("without hooks", func() {
		It("should run exactly OuterIters passes and end converged", func() {
			out := Balance(envs, tgt, cfg, Hooks{})

			Expect(out.Passes).To(HaveLen(2))
			Expect(out.Passes[0].Index).To(Equal(0))
			Expect(out.Passes[1].Index).To(Equal(1))
			Expect(out.Converged()).To(BeTrue())

			last, ok := out.Last()
			Expect(ok).To(BeTrue())
			Expect(last.Core.Obs.Util).To(BeNumerically("~", 0.90, 0.01))
			Expect(last.Curve.Obs.TTUMean).To(BeNumerically(">=", 7.5))
			Expect(last.Curve.Obs.TTUMean).To(BeNumerically("<=", 9.5))
			Expect(last.Prestige.Obs.CycleMins).To(BeNumerically("~", 20, 1))
			Expect(last.Offline.Obs.Retain).To(BeNumerically("~", 0.70, 0.02))
		})

		It("should resume every system from the previous pass", func() {
			out := Balance(envs, tgt, cfg, Hooks{})

			// already at equilibrium, the second pass needs a single iteration each
			Expect(out.Passes[1].Core.Iters).To(Equal(1))
			Expect(out.Passes[1].Curve.Iters).To(Equal(1))
			Expect(out.Passes[1].Prestige.Iters).To(Equal(1))
			Expect(out.Passes[1].Offline.Iters).To(Equal(1))
		})

		It("should forward the fresh production income between passes", func() {
			cfg.OuterIters = 3
			out := Balance(envs, tgt, cfg, Hooks{})

			// pass 0 has no incoming signal and uses its own income
			Expect(out.Passes[0].RefIncome).To(Equal(out.Passes[0].Core.Theta.Income()))
			Expect(out.Passes[1].RefIncome).To(Equal(out.Passes[0].Core.Theta.Income()))
			Expect(out.Passes[2].RefIncome).To(Equal(out.Passes[1].Core.Theta.Income()))
			Expect(out.Signals.RefIncome).To(Equal(out.Passes[2].Core.Theta.Income()))
		})

		It("should be deterministic", func() {
			Expect(Balance(envs, tgt, cfg, Hooks{})).To(Equal(Balance(envs, tgt, cfg, Hooks{})))
		})
	})

	Context("with zero passes", func() {
		It("should return no outcomes", func() {
			cfg.OuterIters = 0
			out := Balance(envs, tgt, cfg, Hooks{})

			Expect(out.Passes).To(BeEmpty())
			Expect(out.Converged()).To(BeFalse())
			Expect(out.Signals.RefIncome).To(BeZero())
			_, ok := out.Last()
			Expect(ok).To(BeFalse())
		})
	})

	Context("with injected production hooks", func() {
		It("should apply them on the first pass only", func() {
			counter := &observeCounter{}
			hooks := Hooks{Core: []production.Mechanic{production.IncomeMult{Mult: 1.5}, counter}}
			cfg.OuterIters = 3

			out := Balance(envs, tgt, cfg, hooks)

			// pass 0 carries the hook effect
			Expect(out.Passes[0].Core.Converged).To(BeFalse())
			Expect(out.Passes[0].Core.Obs.Util).To(BeNumerically("~", 0.6, 0.01))

			// later passes fall back to the un-hooked equilibrium
			for _, p := range out.Passes[1:] {
				Expect(p.Core.Converged).To(BeTrue())
				Expect(p.Core.Obs.Util).To(BeNumerically("~", 0.90, 0.01))
			}

			// the hook saw pass 0 and nothing after it
			Expect(counter.calls).To(Equal(out.Passes[0].Core.Iters))
		})
	})

	Context("with a logger", func() {
		It("should log one line per pass and one per system at V(1)", func() {
			var lines []string
			cfg.Logger = funcr.New(func(prefix, args string) {
				lines = append(lines, prefix+" "+args)
			}, funcr.Options{Verbosity: 1})

			Balance(envs, tgt, cfg, Hooks{})

			var passes, systems int
			for _, l := range lines {
				Expect(l).To(HavePrefix("idle"))
				switch {
				case strings.Contains(l, `"pass complete"`):
					passes++
				case strings.Contains(l, `"system balanced"`):
					systems++
				}
			}
			Expect(passes).To(Equal(2))
			Expect(systems).To(Equal(8))
		})
	})
})
