package internal

import (
	"landlord/internal/domain"
)

// DefaultMaxKickerCombos bounds the attachment choices tried for one window.
const DefaultMaxKickerCombos = 4096

// Archetype is one entry of the free-lead catalogue: a shape with a fixed
// main-pack count, width and number of attachments.
type Archetype struct {
	Type        domain.CardCombinationType
	MinCards    int
	Length      int // consecutive main levels
	Width       int // cards per main level
	Kickers     int // attachment levels
	KickerWidth int // cards per attachment level
}

// Archetypes lists every shape a free lead may open with.
var Archetypes = []Archetype{
	{Type: domain.Single, MinCards: 1, Length: 1, Width: 1},
	{Type: domain.Pair, MinCards: 2, Length: 1, Width: 2},
	{Type: domain.Triplet, MinCards: 3, Length: 1, Width: 3},
	{Type: domain.Bomb, MinCards: 4, Length: 1, Width: 4},
	{Type: domain.TripletWithSingle, MinCards: 4, Length: 1, Width: 3, Kickers: 1, KickerWidth: 1},
	{Type: domain.TripletWithPair, MinCards: 5, Length: 1, Width: 3, Kickers: 1, KickerWidth: 2},
	{Type: domain.Straight, MinCards: 5, Length: 5, Width: 1},
	{Type: domain.Straight, MinCards: 6, Length: 6, Width: 1},
	{Type: domain.Straight, MinCards: 7, Length: 7, Width: 1},
	{Type: domain.Straight, MinCards: 8, Length: 8, Width: 1},
	{Type: domain.Straight, MinCards: 9, Length: 9, Width: 1},
	{Type: domain.Straight, MinCards: 10, Length: 10, Width: 1},
	{Type: domain.Straight, MinCards: 11, Length: 11, Width: 1},
	{Type: domain.Straight, MinCards: 12, Length: 12, Width: 1},
	{Type: domain.DoubleStraight, MinCards: 6, Length: 3, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 8, Length: 4, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 10, Length: 5, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 12, Length: 6, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 14, Length: 7, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 16, Length: 8, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 18, Length: 9, Width: 2},
	{Type: domain.DoubleStraight, MinCards: 20, Length: 10, Width: 2},
	{Type: domain.Plane, MinCards: 6, Length: 2, Width: 3},
	{Type: domain.Plane, MinCards: 9, Length: 3, Width: 3},
	{Type: domain.Plane, MinCards: 12, Length: 4, Width: 3},
	{Type: domain.Plane, MinCards: 15, Length: 5, Width: 3},
	{Type: domain.Plane, MinCards: 18, Length: 6, Width: 3},
	{Type: domain.PlaneWithSingles, MinCards: 8, Length: 2, Width: 3, Kickers: 2, KickerWidth: 1},
	{Type: domain.PlaneWithPairs, MinCards: 10, Length: 2, Width: 3, Kickers: 2, KickerWidth: 2},
	{Type: domain.PlaneWithSingles, MinCards: 12, Length: 3, Width: 3, Kickers: 3, KickerWidth: 1},
	{Type: domain.PlaneWithPairs, MinCards: 15, Length: 3, Width: 3, Kickers: 3, KickerWidth: 2},
	{Type: domain.PlaneWithSingles, MinCards: 16, Length: 4, Width: 3, Kickers: 4, KickerWidth: 1},
	{Type: domain.PlaneWithPairs, MinCards: 20, Length: 4, Width: 3, Kickers: 4, KickerWidth: 2},
	{Type: domain.PlaneWithSingles, MinCards: 20, Length: 5, Width: 3, Kickers: 5, KickerWidth: 1},
	{Type: domain.QuadChainWithSingles, MinCards: 12, Length: 2, Width: 4, Kickers: 4, KickerWidth: 1},
	{Type: domain.QuadChainWithSingles, MinCards: 18, Length: 3, Width: 4, Kickers: 6, KickerWidth: 1},
	{Type: domain.QuadChainWithPairs, MinCards: 16, Length: 2, Width: 4, Kickers: 4, KickerWidth: 2},
	{Type: domain.QuadChain, MinCards: 8, Length: 2, Width: 4},
	{Type: domain.QuadChain, MinCards: 12, Length: 3, Width: 4},
	{Type: domain.QuadChain, MinCards: 16, Length: 4, Width: 4},
	{Type: domain.QuadWithSingles, MinCards: 6, Length: 1, Width: 4, Kickers: 2, KickerWidth: 1},
	{Type: domain.QuadWithPairs, MinCards: 8, Length: 1, Width: 4, Kickers: 2, KickerWidth: 2},
}

// ValidMove represents a possible legal play and the cards it leaves behind.
type ValidMove struct {
	Cards     []domain.Card
	Combo     domain.CardCombination
	Remaining []domain.Card
}

// levelInRange reports whether a main pack of the given type may sit at l.
func levelInRange(t domain.CardCombinationType, l domain.Level) bool {
	switch {
	case t == domain.Single:
		return l < domain.MaxLevel
	case t.IsChain():
		return l.Chainable()
	default:
		return l < domain.LevelLesserJoker
	}
}

// Generator enumerates candidate plays for a hand.
type Generator struct {
	hand      []domain.Card
	counts    domain.LevelCounts
	maxCombos int
}

// NewGenerator prepares candidate enumeration over hand.
func NewGenerator(hand []domain.Card, maxKickerCombos int) *Generator {
	if maxKickerCombos <= 0 {
		maxKickerCombos = DefaultMaxKickerCombos
	}
	sorted := append([]domain.Card(nil), hand...)
	domain.SortHand(sorted)
	return &Generator{hand: sorted, counts: domain.CountLevels(sorted), maxCombos: maxKickerCombos}
}

// GetLeadMoves returns every catalogue play the hand supports, in catalogue
// order, then by ascending window, then by attachment choice.
func (g *Generator) GetLeadMoves() []ValidMove {
	distinct := g.counts.Distinct()
	var moves []ValidMove
	for _, a := range Archetypes {
		if len(g.hand) < a.MinCards || distinct < a.Length+a.Kickers {
			continue
		}
		for low := domain.Level(0); ; low++ {
			if !levelInRange(a.Type, low+domain.Level(a.Length)-1) {
				break
			}
			mains := make([]domain.CardPack, 0, a.Length)
			for l := low; l < low+domain.Level(a.Length); l++ {
				mains = append(mains, domain.CardPack{Level: l, Count: a.Width})
			}
			if !g.holds(mains) {
				continue
			}
			g.expand(mains, a.Kickers, a.KickerWidth, func(m ValidMove) {
				if m.Combo.Type == a.Type {
					moves = append(moves, m)
				}
			})
		}
	}
	return moves
}

// GetBeatingMoves returns the plays of prev's exact form that beat it, by
// ascending window. Bombs and the rocket are left to GetBombMoves.
// A single is only answered from a level the hand holds exactly once.
func (g *Generator) GetBeatingMoves(prev domain.CardCombination) []ValidMove {
	if !prev.Valid() || prev.Type == domain.Rocket || prev.Type == domain.Bomb {
		return nil
	}
	if len(g.hand) < prev.Count() || g.counts.Distinct() < len(prev.Packs) {
		return nil
	}

	run := prev.MaxSeq()
	kickers := len(prev.Packs) - run
	kickerWidth := 0
	if kickers > 0 {
		kickerWidth = prev.Packs[run].Count
	}

	var moves []ValidMove
	for shift := domain.Level(1); ; shift++ {
		mains := make([]domain.CardPack, 0, run)
		inRange := true
		for _, p := range prev.Packs[:run] {
			l := p.Level + shift
			if !levelInRange(prev.Type, l) {
				inRange = false
				break
			}
			mains = append(mains, domain.CardPack{Level: l, Count: p.Count})
		}
		if !inRange {
			break
		}
		if !g.holds(mains) {
			continue
		}
		if prev.Type == domain.Single && g.counts[mains[0].Level] != 1 {
			continue
		}
		g.expand(mains, kickers, kickerWidth, func(m ValidMove) {
			if domain.CanBeat(prev, m.Combo) {
				moves = append(moves, m)
			}
		})
	}
	return moves
}

// GetBombMoves returns every bomb in the hand that beats prev, lowest first,
// followed by the rocket when held and prev is not the rocket.
func (g *Generator) GetBombMoves(prev domain.CardCombination) []ValidMove {
	var moves []ValidMove
	for l := domain.Level(0); l < domain.LevelLesserJoker; l++ {
		if g.counts[l] != 4 {
			continue
		}
		m := g.split([]domain.CardPack{{Level: l, Count: 4}})
		if domain.CanBeat(prev, m.Combo) {
			moves = append(moves, m)
		}
	}
	if m, ok := g.RocketMove(); ok && prev.Type != domain.Rocket {
		moves = append(moves, m)
	}
	return moves
}

// RocketMove returns the rocket when the hand holds both jokers.
func (g *Generator) RocketMove() (ValidMove, bool) {
	if g.counts[domain.LevelLesserJoker] == 0 || g.counts[domain.LevelGreaterJoker] == 0 {
		return ValidMove{}, false
	}
	return g.split([]domain.CardPack{
		{Level: domain.LevelLesserJoker, Count: 1},
		{Level: domain.LevelGreaterJoker, Count: 1},
	}), true
}

func (g *Generator) holds(packs []domain.CardPack) bool {
	for _, p := range packs {
		if g.counts[p.Level] < p.Count {
			return false
		}
	}
	return true
}

// expand emits the main packs together with every choice of attachment levels.
// Attachment levels lie outside the main window and hold at least width cards.
func (g *Generator) expand(mains []domain.CardPack, kickers, width int, emit func(ValidMove)) {
	if kickers == 0 {
		if m := g.split(mains); m.Combo.Valid() {
			emit(m)
		}
		return
	}

	var inMain [domain.MaxLevel]bool
	for _, p := range mains {
		inMain[p.Level] = true
	}
	var aux []domain.Level
	for l := domain.Level(0); l < domain.MaxLevel; l++ {
		if !inMain[l] && g.counts[l] >= width {
			aux = append(aux, l)
		}
	}
	if len(aux) < kickers {
		return
	}

	packs := make([]domain.CardPack, len(mains), len(mains)+kickers)
	copy(packs, mains)
	forEachCombination(len(aux), kickers, g.maxCombos, func(pick []int) {
		packs = packs[:len(mains)]
		for _, i := range pick {
			packs = append(packs, domain.CardPack{Level: aux[i], Count: width})
		}
		if m := g.split(packs); m.Combo.Valid() {
			emit(m)
		}
	})
}

// split takes the requested packs out of the hand, lowest card identities first.
func (g *Generator) split(packs []domain.CardPack) ValidMove {
	var need domain.LevelCounts
	for _, p := range packs {
		need[p.Level] += p.Count
	}
	chosen := make([]domain.Card, 0, len(g.hand))
	rest := make([]domain.Card, 0, len(g.hand))
	for _, c := range g.hand {
		if need[c.Level()] > 0 {
			need[c.Level()]--
			chosen = append(chosen, c)
			continue
		}
		rest = append(rest, c)
	}
	return ValidMove{Cards: chosen, Combo: domain.IdentifyCombination(chosen), Remaining: rest}
}

// forEachCombination calls fn with each k-subset of 0..n-1 in lexicographic
// order, stopping after limit subsets.
func forEachCombination(n, k, limit int, fn func([]int)) {
	if k > n {
		return
	}
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	for emitted := 0; emitted < limit; emitted++ {
		fn(pick)
		i := k - 1
		for i >= 0 && pick[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
