package idle

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/draft"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
)

var _ = Describe("CorePool", func() {
	It("should build a new mechanic on every pick", func() {
		pool := CorePool()
		Expect(pool).NotTo(BeEmpty())

		for _, c := range pool {
			Expect(c.New).NotTo(BeNil(), c.Name)
			Expect(c.New()).NotTo(BeNil(), c.Name)
		}

		// stateful cards must not share instances
		for _, c := range pool {
			if c.Name != "fee_boost" {
				continue
			}
			a, b := c.New(), c.New()
			Expect(a).NotTo(BeIdenticalTo(b))
		}
	})

	It("should offer only pool cards and feed a run", func() {
		pool := CorePool()
		cfg := draft.DefaultConfig()
		st := draft.NewState(cfg, len(pool), 12345)

		offer := draft.MakeOffer(pool, cfg, st)
		Expect(offer).NotTo(BeEmpty())
		Expect(len(offer)).To(BeNumerically("<=", cfg.OptionsPerRoll))

		names := map[string]bool{}
		for _, c := range pool {
			names[c.Name] = true
		}
		for _, o := range offer {
			Expect(names).To(HaveKey(o.Name))
		}

		picked := draft.Instantiate(pool, offer[0])
		run := DefaultConfig()
		run.MaxItersPerSystem = 5_000
		out := Balance(DefaultEnvs(), DefaultTargets(), run, Hooks{Core: []production.Mechanic{picked}})
		Expect(out.Passes).To(HaveLen(2))
	})
})

var _ = Describe("AuditFields", func() {
	It("should pass for a balanced run", func() {
		run := DefaultConfig()
		run.MaxItersPerSystem = 5_000
		out := Balance(DefaultEnvs(), DefaultTargets(), run, Hooks{})
		last, ok := out.Last()
		Expect(ok).To(BeTrue())

		fields := AuditFields(last)
		Expect(fields).To(HaveLen(12))

		res := audit.Check(fields)
		Expect(res.Passed).To(BeTrue(), res.Reason)
	})

	It("should flag a zero pass as out of bounds", func() {
		res := audit.Check(AuditFields(Pass{}))
		Expect(res.Passed).To(BeFalse())
		Expect(res.Violations).NotTo(BeEmpty())
	})
})
