package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type effect struct{ name string }

func card(name string, tier Tier, p float64, pity *PitySpec) Card[*effect] {
	return Card[*effect]{
		Name:  name,
		Tier:  tier,
		BaseP: p,
		Pity:  pity,
		New:   func() *effect { return &effect{name: name} },
	}
}

func names(offer []Offered) []string {
	out := make([]string, 0, len(offer))
	for _, o := range offer {
		out = append(out, o.Name)
	}
	return out
}

func TestMakeOffer_EmptyPool(t *testing.T) {
	st := NewState(DefaultConfig(), 0, 1)
	offer := MakeOffer[*effect](nil, DefaultConfig(), st)
	assert.Empty(t, offer)
	assert.Empty(t, st.LastOffered())
}

func TestMakeOffer_FallbackToFirstCommon(t *testing.T) {
	pool := []Card[*effect]{
		card("rare", Rare, 0, nil),
		card("common", Common, 0, nil),
		card("common-2", Common, 0, nil),
	}
	st := NewState(DefaultConfig(), len(pool), 9)

	offer := MakeOffer(pool, DefaultConfig(), st)
	require.Len(t, offer, 1)
	assert.Equal(t, 1, offer[0].PoolIdx)
	assert.Equal(t, "common", offer[0].Name)
}

func TestMakeOffer_FallbackToFirstCard(t *testing.T) {
	pool := []Card[*effect]{
		card("epic", Epic, 0, nil),
		card("rare", Rare, 0, nil),
	}
	st := NewState(DefaultConfig(), len(pool), 9)

	offer := MakeOffer(pool, DefaultConfig(), st)
	require.Len(t, offer, 1)
	assert.Equal(t, 0, offer[0].PoolIdx)
}

func TestMakeOffer_TierPriorityAndTruncation(t *testing.T) {
	pool := []Card[*effect]{
		card("c", Common, 1, nil),
		card("e", Epic, 1, nil),
		card("u", Uncommon, 1, nil),
		card("r", Rare, 1, nil),
	}
	cfg := Config{OptionsPerRoll: 2, PrioritizeTier: true}
	st := NewState(cfg, len(pool), 3)

	offer := MakeOffer(pool, cfg, st)
	assert.Equal(t, []string{"e", "r"}, names(offer))
	assert.Equal(t, []int{1, 3}, st.LastOffered())
}

func TestMakeOffer_AtLeastOneOption(t *testing.T) {
	pool := []Card[*effect]{card("a", Common, 1, nil), card("b", Common, 1, nil)}
	cfg := Config{OptionsPerRoll: 0}
	offer := MakeOffer(pool, cfg, NewState(cfg, len(pool), 5))
	assert.Len(t, offer, 1)
}

func TestMakeOffer_SeedDeterminism(t *testing.T) {
	pool := []Card[*effect]{
		card("a", Common, 0.5, nil),
		card("b", Common, 0.5, nil),
		card("c", Uncommon, 0.5, nil),
		card("d", Rare, 0.5, nil),
		card("e", Rare, 0.5, nil),
	}
	cfg := Config{OptionsPerRoll: 3, PrioritizeTier: false}
	a := NewState(cfg, len(pool), 12345)
	b := NewState(cfg, len(pool), 12345)

	for i := 0; i < 10; i++ {
		assert.Equal(t, MakeOffer(pool, cfg, a), MakeOffer(pool, cfg, b), "offer %d", i)
	}
}

func TestMakeOffer_PityForcesUnshownCard(t *testing.T) {
	pool := []Card[*effect]{
		card("filler", Common, 1, nil),
		card("jackpot", Epic, 0, &PitySpec{Cap: 1, K: 1}),
	}
	cfg := Config{OptionsPerRoll: 1, PrioritizeTier: true}
	st := NewState(cfg, len(pool), 77)

	first := MakeOffer(pool, cfg, st)
	assert.Equal(t, []string{"filler"}, names(first))
	assert.Equal(t, 1.0, st.Pity(1), "unshown card drifts to its cap")

	second := MakeOffer(pool, cfg, st)
	assert.Equal(t, []string{"jackpot"}, names(second))
	assert.Equal(t, 0.0, st.Pity(1), "shown card resets")
}

func TestReroll_Budget(t *testing.T) {
	pool := []Card[*effect]{card("a", Common, 1, nil)}
	cfg := Config{OptionsPerRoll: 1, RerollsPerDraft: 1}
	st := NewState(cfg, len(pool), 1)

	offer, ok := Reroll(pool, cfg, st)
	require.True(t, ok)
	assert.Len(t, offer, 1)
	assert.Equal(t, 0, st.RerollsLeft)

	offer, ok = Reroll(pool, cfg, st)
	assert.False(t, ok)
	assert.Nil(t, offer)
}

func TestInstantiate_FreshHookEachTime(t *testing.T) {
	pool := []Card[*effect]{card("a", Common, 1, nil)}
	offered := Offered{PoolIdx: 0, Name: "a"}

	h1 := Instantiate(pool, offered)
	h2 := Instantiate(pool, offered)
	assert.Equal(t, "a", h1.name)
	assert.NotSame(t, h1, h2)
}

func TestNotifyPicked_ResetsPity(t *testing.T) {
	pool := []Card[*effect]{
		card("filler", Common, 1, nil),
		card("slow", Rare, 0, &PitySpec{Cap: 0.4, K: 0.5}),
	}
	cfg := Config{OptionsPerRoll: 1, PrioritizeTier: false}
	st := NewState(cfg, len(pool), 2)

	MakeOffer(pool, cfg, st)
	require.InDelta(t, 0.2, st.Pity(1), 1e-12)

	NotifyPicked(pool, st, []Offered{{PoolIdx: 1, Name: "slow"}}, 0)
	assert.Equal(t, 0.0, st.Pity(1))

	// out-of-range picks are ignored
	NotifyPicked(pool, st, nil, 3)
}

func TestResizePool(t *testing.T) {
	st := NewState(DefaultConfig(), 2, 1)
	st.ResizePool(4)
	assert.Equal(t, 0.0, st.Pity(3))
	st.ResizePool(1)
	assert.Equal(t, 0.0, st.Pity(1), "truncated entries read as zero")
	st.ResizePool(-1)
	assert.Equal(t, 0.0, st.Pity(0))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "epic", Epic.String())
	assert.Equal(t, "unknown", Tier(9).String())
}

func TestOffered_YAMLTierByName(t *testing.T) {
	out, err := yaml.Marshal(Offered{PoolIdx: 3, Name: "fee_boost", Tier: Rare})
	require.NoError(t, err)
	assert.Equal(t, "pool_idx: 3\nname: fee_boost\ntier: rare\n", string(out))
}
