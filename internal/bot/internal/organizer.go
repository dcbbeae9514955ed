package internal

import (
	"sort"

	"landlord/internal/domain"
)

// BossChecker decides whether a combination can still be topped by the
// opponents with a higher instance of the same form.
type BossChecker interface {
	IsBoss(combo domain.CardCombination) bool
}

// Valuation constants of the decomposition engine.
const (
	MoveWeight = 5.0

	residualOffset     = 7.0  // residual single or pair: level - offset
	tripletOffset      = 7.0  // triplet: level - offset
	adjacentTripletCut = 0.1  // move discount for a triplet right above another
	quadOffset         = 7.0  // quad: level + offset
	chainOffset        = 6.0  // straight and double straight: top - offset
	doubleChainCost    = 0.1  // extra moves per double straight card
	twoBonus           = 5.0  // one or two 2s kept apart
	rocketBonus        = 20.0 // both jokers
	lesserJokerBonus   = 6.0
	greaterJokerBonus  = 7.0
	minStraightLength  = 5
	minDoubleStraight  = 3
)

// DefaultMaxAssignments bounds the role assignments tried for one hand.
const DefaultMaxAssignments = 1 << 16

// Decomposition is the best partition found for a hand.
type Decomposition struct {
	Value float64
	Moves float64
	// Weak counts components of the partition that an opponent could still top.
	Weak       int
	Components []domain.CardCombination
}

// Score is the objective the engine maximizes.
func (d Decomposition) Score() float64 {
	return d.Value - MoveWeight*d.Moves
}

// Roles a pool member can take.
const (
	pairAsSingles = iota
	pairKept
)

const (
	tripletAsSingles = iota
	tripletAsPairAndSingle
	tripletKept
)

const (
	quadAsSingles = iota
	quadAsPairAndSingles
	quadAsPairs
	quadAsTripletAndSingle
	quadKept
)

// partition is one role assignment after chain extraction, expressed in levels.
type partition struct {
	singles         []domain.Level
	pairs           []domain.Level
	triplets        []domain.Level
	quads           []domain.Level
	straights       [][]domain.Level
	doubleStraights [][]domain.Level
	value           float64
	moves           float64
}

func (p *partition) score() float64 {
	return p.value - MoveWeight*p.moves
}

// Organizer decomposes hands. It holds no state between calls.
type Organizer struct {
	Boss           BossChecker
	MaxAssignments int
}

// NewOrganizer returns an organizer using the given boss checker.
func NewOrganizer(boss BossChecker, maxAssignments int) *Organizer {
	if maxAssignments <= 0 {
		maxAssignments = DefaultMaxAssignments
	}
	return &Organizer{Boss: boss, MaxAssignments: maxAssignments}
}

// Decompose partitions hand into singles, pairs, triplets, quads, straights and
// double straights, choosing the assignment with the best Score. The first
// assignment tried is kept unless a later one is strictly better.
func (o *Organizer) Decompose(hand []domain.Card) Decomposition {
	counts := domain.CountLevels(hand)

	var pools [5][]domain.Level
	for l := domain.Level(0); l <= domain.MaxStraightLevel; l++ {
		if n := min(counts[l], 4); n > 0 {
			pools[n] = append(pools[n], l)
		}
	}
	twos := counts[domain.LevelTwo]
	jokers := counts[domain.LevelLesserJoker] + counts[domain.LevelGreaterJoker]

	radices := make([]int, 0, len(pools[2])+len(pools[3])+len(pools[4]))
	for range pools[2] {
		radices = append(radices, 2)
	}
	for range pools[3] {
		radices = append(radices, 3)
	}
	for range pools[4] {
		radices = append(radices, 5)
	}

	total := 1
	for _, r := range radices {
		total *= r
		if total > o.MaxAssignments {
			total = o.MaxAssignments
			break
		}
	}

	var best *partition
	roles := make([]int, len(radices))
	for idx := 0; idx < total; idx++ {
		rem := idx
		for i := len(radices) - 1; i >= 0; i-- {
			roles[i] = rem % radices[i]
			rem /= radices[i]
		}

		p := assign(pools, roles)
		p.extractChains()
		p.valuate(twos, counts)
		if best == nil || p.score() > best.score() {
			best = p
		}
	}

	return o.result(best, hand, counts, twos, jokers)
}

// assign rebuilds the working pools for one role assignment.
func assign(pools [5][]domain.Level, roles []int) *partition {
	p := &partition{singles: append([]domain.Level(nil), pools[1]...)}
	k := 0
	for _, l := range pools[2] {
		if roles[k] == pairKept {
			p.pairs = append(p.pairs, l)
		} else {
			p.singles = append(p.singles, l, l)
		}
		k++
	}
	for _, l := range pools[3] {
		switch roles[k] {
		case tripletAsSingles:
			p.singles = append(p.singles, l, l, l)
		case tripletAsPairAndSingle:
			p.singles = append(p.singles, l)
			p.pairs = append(p.pairs, l)
		case tripletKept:
			p.triplets = append(p.triplets, l)
		}
		k++
	}
	for _, l := range pools[4] {
		switch roles[k] {
		case quadAsSingles:
			p.singles = append(p.singles, l, l, l, l)
		case quadAsPairAndSingles:
			p.singles = append(p.singles, l, l)
			p.pairs = append(p.pairs, l)
		case quadAsPairs:
			p.pairs = append(p.pairs, l, l)
		case quadAsTripletAndSingle:
			p.singles = append(p.singles, l)
			p.triplets = append(p.triplets, l)
		case quadKept:
			p.quads = append(p.quads, l)
		}
		k++
	}
	sortLevels(p.singles)
	sortLevels(p.pairs)
	return p
}

func (p *partition) extractChains() {
	p.straights, p.singles = extractRuns(p.singles, minStraightLength)
	p.doubleStraights, p.pairs = extractRuns(p.pairs, minDoubleStraight)
}

// extractRuns scans sorted levels left to right, cutting runs of exactly
// minLen consecutive levels, then grows each run with leftovers sitting right
// above it and finally joins runs that touch. It returns the runs and the
// levels left over.
func extractRuns(levels []domain.Level, minLen int) ([][]domain.Level, []domain.Level) {
	used := make([]bool, len(levels))
	var runs [][]domain.Level

	for i := range levels {
		if used[i] {
			continue
		}
		picked := []int{i}
		for j := i + 1; j < len(levels) && len(picked) < minLen; j++ {
			if used[j] {
				continue
			}
			last := levels[picked[len(picked)-1]]
			if levels[j] == last {
				continue
			}
			if levels[j] != last+1 {
				break
			}
			picked = append(picked, j)
		}
		if len(picked) < minLen {
			continue
		}
		run := make([]domain.Level, 0, minLen)
		for _, j := range picked {
			used[j] = true
			run = append(run, levels[j])
		}
		runs = append(runs, run)
	}

	for i, l := range levels {
		if used[i] {
			continue
		}
		for r := range runs {
			if l == runs[r][len(runs[r])-1]+1 {
				runs[r] = append(runs[r], l)
				used[i] = true
				break
			}
		}
	}

	for i := range runs {
		for j := range runs {
			if i == j || len(runs[i]) == 0 || len(runs[j]) == 0 {
				continue
			}
			if runs[i][len(runs[i])-1] == runs[j][0]-1 {
				runs[i] = append(runs[i], runs[j]...)
				runs[j] = nil
			}
		}
	}

	merged := runs[:0]
	for _, r := range runs {
		if len(r) > 0 {
			merged = append(merged, r)
		}
	}

	var left []domain.Level
	for i, l := range levels {
		if !used[i] {
			left = append(left, l)
		}
	}
	return merged, left
}

// valuate scores the partition. Residual singles and pairs first serve as
// attachments for the triplets; only the highest of the rest are scored.
func (p *partition) valuate(twos int, counts domain.LevelCounts) {
	if twos == 3 {
		p.triplets = append(p.triplets, domain.LevelTwo)
	}
	if twos == 4 {
		p.quads = append(p.quads, domain.LevelTwo)
	}
	sortLevels(p.triplets)

	residual := make([]domain.Level, 0, len(p.singles)+len(p.pairs))
	residual = append(residual, p.singles...)
	residual = append(residual, p.pairs...)
	sortLevels(residual)

	scored := max(0, len(residual)-len(p.triplets))
	for i := len(residual) - scored; i < len(residual); i++ {
		p.value += float64(residual[i]) - residualOffset
	}

	p.moves = float64(scored + len(p.straights) + len(p.doubleStraights) + len(p.triplets) + len(p.quads))

	for i, l := range p.triplets {
		p.value += float64(l) - tripletOffset
		if i > 0 && l-p.triplets[i-1] == 1 {
			p.moves -= adjacentTripletCut
		}
	}
	for _, l := range p.quads {
		p.value += float64(l) + quadOffset
	}
	for _, run := range p.straights {
		p.value += float64(run[len(run)-1]) - chainOffset
	}
	for _, run := range p.doubleStraights {
		p.value += float64(run[len(run)-1]) - chainOffset
		p.moves += doubleChainCost * float64(2*len(run))
	}

	if twos == 1 || twos == 2 {
		p.moves++
		p.value += twoBonus
	}

	lesser, greater := counts[domain.LevelLesserJoker] > 0, counts[domain.LevelGreaterJoker] > 0
	switch {
	case lesser && greater:
		p.moves++
		p.value += rocketBonus
	case lesser:
		p.moves++
		p.value += lesserJokerBonus
	case greater:
		p.moves++
		p.value += greaterJokerBonus
	}
}

// result turns the winning partition into concrete card combinations and
// counts its weak components.
func (o *Organizer) result(p *partition, hand []domain.Card, counts domain.LevelCounts, twos, jokers int) Decomposition {
	d := Decomposition{Value: p.value, Moves: p.moves}
	if len(hand) == 0 {
		return d
	}

	deal := newDealer(hand)
	weakResidual := 0
	for _, l := range p.singles {
		c := deal.combo(l, 1)
		d.Components = append(d.Components, c)
		if !o.isBoss(c) {
			weakResidual++
		}
	}
	for _, l := range p.pairs {
		c := deal.combo(l, 2)
		d.Components = append(d.Components, c)
		if !o.isBoss(c) {
			weakResidual++
		}
	}
	d.Weak = max(0, weakResidual-len(p.triplets))

	addWeak := func(c domain.CardCombination) {
		d.Components = append(d.Components, c)
		if !o.isBoss(c) {
			d.Weak++
		}
	}
	for _, l := range p.triplets {
		addWeak(deal.combo(l, 3))
	}
	for _, l := range p.quads {
		addWeak(deal.combo(l, 4))
	}
	for _, run := range p.straights {
		addWeak(deal.run(run, 1))
	}
	for _, run := range p.doubleStraights {
		addWeak(deal.run(run, 2))
	}
	if twos == 1 || twos == 2 {
		d.Components = append(d.Components, deal.combo(domain.LevelTwo, twos))
	}
	if jokers > 0 {
		var cards []domain.Card
		for _, l := range []domain.Level{domain.LevelLesserJoker, domain.LevelGreaterJoker} {
			if counts[l] > 0 {
				cards = append(cards, deal.take(l, 1)...)
			}
		}
		addWeak(domain.IdentifyCombination(cards))
	}
	return d
}

func (o *Organizer) isBoss(c domain.CardCombination) bool {
	if o.Boss == nil {
		return false
	}
	return o.Boss.IsBoss(c)
}

// dealer hands out the concrete cards of each level in ascending order.
type dealer struct {
	byLevel [domain.MaxLevel][]domain.Card
}

func newDealer(hand []domain.Card) *dealer {
	sorted := append([]domain.Card(nil), hand...)
	domain.SortHand(sorted)
	d := &dealer{}
	for _, c := range sorted {
		d.byLevel[c.Level()] = append(d.byLevel[c.Level()], c)
	}
	return d
}

func (d *dealer) take(l domain.Level, n int) []domain.Card {
	cards := d.byLevel[l][:n]
	d.byLevel[l] = d.byLevel[l][n:]
	return cards
}

func (d *dealer) combo(l domain.Level, n int) domain.CardCombination {
	return domain.IdentifyCombination(d.take(l, n))
}

func (d *dealer) run(levels []domain.Level, width int) domain.CardCombination {
	cards := make([]domain.Card, 0, len(levels)*width)
	for _, l := range levels {
		cards = append(cards, d.take(l, width)...)
	}
	return domain.IdentifyCombination(cards)
}

func sortLevels(levels []domain.Level) {
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
}
