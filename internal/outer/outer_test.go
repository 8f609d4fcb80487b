package outer

import "testing"

func TestRun_ExactPassCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		calls := 0
		final, outs := Run(Signals{RefIncome: 1}, n, func(pass int, s Signals) (Signals, bool) {
			if pass != calls {
				t.Fatalf("expected pass %d, got %d", calls, pass)
			}
			calls++
			// every pass reports converged; Run must not stop early
			return Signals{RefIncome: s.RefIncome * 2}, true
		})
		if calls != n {
			t.Fatalf("n=%d: expected %d calls, got %d", n, n, calls)
		}
		if len(outs) != n {
			t.Fatalf("n=%d: expected %d outcomes, got %d", n, n, len(outs))
		}
		want := 1.0
		for i := 0; i < n; i++ {
			want *= 2
		}
		if final.RefIncome != want {
			t.Fatalf("n=%d: expected ref income %f, got %f", n, want, final.RefIncome)
		}
	}
}

func TestRun_NoRetryOnFailure(t *testing.T) {
	calls := 0
	_, outs := Run(0, 3, func(_ int, s int) (int, bool) {
		calls++
		return s + 1, false
	})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	for i, ok := range outs {
		if ok {
			t.Fatalf("outcome %d should be false", i)
		}
	}
}

func TestRun_OutcomesInOrder(t *testing.T) {
	final, outs := Run(10, 4, func(pass int, s int) (int, int) {
		return s + pass, s
	})
	want := []int{10, 10, 11, 13}
	for i := range want {
		if outs[i] != want[i] {
			t.Fatalf("outcome %d: expected %d, got %d", i, want[i], outs[i])
		}
	}
	if final != 16 {
		t.Fatalf("expected final 16, got %d", final)
	}
}
