package domain

import "sort"

// CardCombinationType represents the type of card combination.
type CardCombinationType int

const (
	Pass CardCombinationType = iota
	Single
	Pair
	Straight       // Five or more consecutive singles
	DoubleStraight // Three or more consecutive pairs
	Triplet
	TripletWithSingle
	TripletWithPair
	Bomb
	QuadWithSingles
	QuadWithPairs
	Plane // Two or more consecutive triplets
	PlaneWithSingles
	PlaneWithPairs
	QuadChain // Two or more consecutive quads
	QuadChainWithSingles
	QuadChainWithPairs
	Rocket // Both jokers
	Invalid
)

var comboTypeNames = [...]string{
	"pass", "single", "pair", "straight", "double_straight", "triplet", "triplet_single",
	"triplet_pair", "bomb", "quad_singles", "quad_pairs", "plane", "plane_singles",
	"plane_pairs", "quad_chain", "quad_chain_singles", "quad_chain_pairs", "rocket", "invalid",
}

func (t CardCombinationType) String() string {
	if t < 0 || int(t) >= len(comboTypeNames) {
		return "unknown"
	}
	return comboTypeNames[t]
}

// IsChain reports whether the type is built from consecutive main packs.
func (t CardCombinationType) IsChain() bool {
	switch t {
	case Straight, DoubleStraight, Plane, PlaneWithSingles, PlaneWithPairs,
		QuadChain, QuadChainWithSingles, QuadChainWithPairs:
		return true
	}
	return false
}

// CardPack is a level together with how many cards of it a combination holds.
type CardPack struct {
	Level Level
	Count int
}

// CardCombination represents a classified set of cards.
type CardCombination struct {
	Type  CardCombinationType
	Cards []Card
	Packs []CardPack // Ordered by count, then level, both descending
	Level Level      // Level of the most numerous pack; compares same-type combinations
}

// PassCombination is the empty play.
var PassCombination = CardCombination{Type: Pass}

// Valid reports whether the combination is a real play (not pass, not invalid).
func (c CardCombination) Valid() bool {
	return c.Type != Pass && c.Type != Invalid
}

// Count returns the number of cards in the combination.
func (c CardCombination) Count() int {
	return len(c.Cards)
}

// MaxSeq returns the length of the run of equal-count packs, each one level below
// the previous, that starts at the first pack.
func (c CardCombination) MaxSeq() int {
	for i := 1; i < len(c.Packs); i++ {
		if c.Packs[i].Count != c.Packs[0].Count || c.Packs[i].Level != c.Packs[i-1].Level-1 {
			return i
		}
	}
	return len(c.Packs)
}

// HighestLevel returns the highest level present in the combination.
func (c CardCombination) HighestLevel() Level {
	top := Level(-1)
	for _, p := range c.Packs {
		if p.Level > top {
			top = p.Level
		}
	}
	return top
}

func sortPacks(packs []CardPack) {
	sort.Slice(packs, func(i, j int) bool {
		if packs[i].Count == packs[j].Count {
			return packs[i].Level > packs[j].Level
		}
		return packs[i].Count > packs[j].Count
	})
}

// shapeSummary is the count-of-counts view that drives classification.
type shapeSummary struct {
	ofCount  [5]int // how many levels hold exactly k cards
	kinds    []int  // the k values present, ascending
	run      int
	top      Level
	rocket   bool
	overfull bool
}

// chainRule describes a family whose main packs may stand alone or chain.
type chainRule struct {
	main     int
	minChain int
	alone    CardCombinationType
	chained  CardCombinationType
}

// kickerRule describes a triplet or quad family carrying attachments.
type kickerRule struct {
	main    int
	kicker  int
	perMain int
	alone   CardCombinationType
	chained CardCombinationType
}

var chainRules = map[int]chainRule{
	1: {main: 1, minChain: 5, alone: Single, chained: Straight},
	2: {main: 2, minChain: 3, alone: Pair, chained: DoubleStraight},
	3: {main: 3, minChain: 2, alone: Triplet, chained: Plane},
	4: {main: 4, minChain: 2, alone: Bomb, chained: QuadChain},
}

var kickerRules = []kickerRule{
	{main: 3, kicker: 1, perMain: 1, alone: TripletWithSingle, chained: PlaneWithSingles},
	{main: 3, kicker: 2, perMain: 1, alone: TripletWithPair, chained: PlaneWithPairs},
	{main: 4, kicker: 1, perMain: 2, alone: QuadWithSingles, chained: QuadChainWithSingles},
	{main: 4, kicker: 2, perMain: 2, alone: QuadWithPairs, chained: QuadChainWithPairs},
}

func summarize(combo CardCombination) shapeSummary {
	s := shapeSummary{run: combo.MaxSeq(), top: combo.Packs[0].Level}
	for _, p := range combo.Packs {
		if p.Count > 4 {
			s.overfull = true
			continue
		}
		s.ofCount[p.Count]++
	}
	for k := 1; k <= 4; k++ {
		if s.ofCount[k] > 0 {
			s.kinds = append(s.kinds, k)
		}
	}
	s.rocket = len(combo.Packs) == 2 && combo.Packs[0].Count == 1 && combo.Packs[1].Level == LevelLesserJoker
	return s
}

// chains reports whether n main packs form one run that stays below the 2.
func (s shapeSummary) chains(n int) bool {
	return s.run == n && s.top.Chainable()
}

func (s shapeSummary) classify() CardCombinationType {
	if s.overfull {
		return Invalid
	}
	switch len(s.kinds) {
	case 1:
		k := s.kinds[0]
		n := s.ofCount[k]
		if k == 1 && n == 2 && s.rocket {
			return Rocket
		}
		rule := chainRules[k]
		if n == 1 {
			return rule.alone
		}
		if n >= rule.minChain && s.chains(n) {
			return rule.chained
		}
	case 2:
		main, kicker := s.kinds[1], s.kinds[0]
		n, attached := s.ofCount[main], s.ofCount[kicker]
		for _, rule := range kickerRules {
			if rule.main != main || rule.kicker != kicker {
				continue
			}
			if n == 1 && attached == rule.perMain {
				return rule.alone
			}
			if attached == n*rule.perMain && s.chains(n) {
				return rule.chained
			}
		}
	}
	return Invalid
}

// IdentifyCombination classifies an unordered set of cards. An empty set is a pass.
func IdentifyCombination(cards []Card) CardCombination {
	if len(cards) == 0 {
		return PassCombination
	}

	combo := CardCombination{Cards: append([]Card(nil), cards...)}
	counts := CountLevels(cards)
	for l := Level(0); l < MaxLevel; l++ {
		if counts[l] > 0 {
			combo.Packs = append(combo.Packs, CardPack{Level: l, Count: counts[l]})
		}
	}
	sortPacks(combo.Packs)

	// The most numerous pack always decides the comparison.
	combo.Level = combo.Packs[0].Level
	combo.Type = summarize(combo).classify()
	return combo
}

// IsValidSet checks if the cards form a legal combination.
func IsValidSet(cards []Card) bool {
	return IdentifyCombination(cards).Valid()
}

// CanBeat determines if next may be played on top of prev.
// The rocket beats everything, a bomb beats any non-bomb, and otherwise
// type, card count and a strictly higher level must line up.
func CanBeat(prev, next CardCombination) bool {
	if prev.Type == Invalid || next.Type == Invalid || next.Type == Pass {
		return false
	}
	if prev.Type == Pass {
		return true
	}
	if next.Type == Rocket {
		return true
	}
	if next.Type == Bomb {
		switch prev.Type {
		case Rocket:
			return false
		case Bomb:
			return next.Level > prev.Level
		default:
			return true
		}
	}
	return next.Type == prev.Type && len(next.Cards) == len(prev.Cards) && next.Level > prev.Level
}
