package upgradecurve

import (
	"math"
	"testing"
)

// income of a converged production run under the idle defaults
const refIncome = 983_635.0

func curveTargets() Targets {
	return Targets{BandLo: 7.5, BandHi: 9.5, SlopePref: 1.15}
}

func TestBalance_ConvergesUnderReferenceIncome(t *testing.T) {
	env := Env{Levels: 10, GainPerLevel: 0.05, RefIncome: refIncome}
	out := Balance(Seed(), env, curveTargets(), SoftBounds(), DefaultGains(), nil, 120_000)

	if !out.Converged {
		t.Fatalf("expected convergence, got %+v", out)
	}
	if out.Obs.TTUMean < 7.5 || out.Obs.TTUMean > 9.5 {
		t.Errorf("mean ttu outside band: %f", out.Obs.TTUMean)
	}
	if math.Abs(out.Obs.TTUSlope-1.15) > 0.05 {
		t.Errorf("slope too far from 1.15: %f", out.Obs.TTUSlope)
	}
}

func TestSimulate_SlopeEqualsGrowth(t *testing.T) {
	env := Env{Levels: 5, RefIncome: 1e6}
	o := simulate(Params{Base: 100, Growth: 1.3, TrackMult: 1}, env, curveTargets(), nil)
	if math.Abs(o.TTUSlope-1.3) > 1e-9 {
		t.Fatalf("expected slope 1.3, got %f", o.TTUSlope)
	}
	// costs 100·1.3^l over savings of 1e5/s
	want := 0.0
	for l := 0; l < 5; l++ {
		want += 100 * math.Pow(1.3, float64(l)) / 1e5
	}
	want /= 5
	if math.Abs(o.TTUMean-want) > 1e-12 {
		t.Fatalf("expected mean %g, got %g", want, o.TTUMean)
	}
}

func TestSimulate_Degenerate(t *testing.T) {
	// zero levels is neutral, not NaN
	o := simulate(Seed(), Env{Levels: 0, RefIncome: refIncome}, curveTargets(), nil)
	if o.TTUMean != 0 || o.TTUSlope != 1 {
		t.Fatalf("expected neutral obs, got %+v", o)
	}

	// a single level has no slope to measure
	o = simulate(Seed(), Env{Levels: 1, RefIncome: refIncome}, curveTargets(), nil)
	if o.TTUSlope != 1 {
		t.Fatalf("expected slope 1 for one level, got %f", o.TTUSlope)
	}
}

func TestBalance_NoIncomeStaysFinite(t *testing.T) {
	env := Env{Levels: 10, GainPerLevel: 0.05, RefIncome: 0}
	b := SoftBounds()
	out := Balance(Seed(), env, curveTargets(), b, DefaultGains(), nil, 500)

	if out.Converged {
		t.Fatal("no income cannot reach the band")
	}
	for _, f := range AuditFields(out.Theta, b) {
		if math.IsNaN(f.Value) || f.Value < f.Lo || f.Value > f.Hi {
			t.Fatalf("%s invalid: %f", f.Name, f.Value)
		}
	}
}
