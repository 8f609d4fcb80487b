package draft

// #region tier
// Tier ranks cards; higher tiers sort first when Config.PrioritizeTier is set.
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	Epic
)

func (t Tier) String() string {
	switch t {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the tier by name.
func (t Tier) MarshalYAML() (any, error) {
	return t.String(), nil
}

// #endregion tier

// #region card
// PitySpec raises a card's draw chance while it goes unshown.
type PitySpec struct {
	// Cap is the largest boost the card can accumulate.
	Cap float64
	// K is the per-offer drift toward Cap, in [0, 1].
	K float64
}

// Card is one entry of the draft pool. New builds a fresh hook every time
// the card is picked; hooks themselves are never copied.
type Card[H any] struct {
	Name  string
	Tier  Tier
	BaseP float64
	Pity  *PitySpec
	New   func() H
}

// Offered is what a player sees: a reference into the pool, not the hook.
type Offered struct {
	PoolIdx int    `yaml:"pool_idx"`
	Name    string `yaml:"name"`
	Tier    Tier   `yaml:"tier"`
}

// #endregion card

// #region config
// Config shapes each offer.
type Config struct {
	OptionsPerRoll  int
	RerollsPerDraft int
	PrioritizeTier  bool
}

// DefaultConfig offers two options with one reroll, best tiers first.
func DefaultConfig() Config {
	return Config{OptionsPerRoll: 2, RerollsPerDraft: 1, PrioritizeTier: true}
}

// #endregion config
