package brain

import (
	"landlord/internal/domain"
)

// IsBoss reports whether no opponent could answer combo with a higher
// instance of the same form, given the cards still unseen. Attachments are
// ignored; only the main packs decide. Bombs from a different form are not
// considered here, see CanBeTopped.
func (m *CardMemory) IsBoss(combo domain.CardCombination) bool {
	if !combo.Valid() {
		return false
	}
	if combo.Type == domain.Rocket {
		return true
	}
	return isBossWith(m.Counts(), combo)
}

func isBossWith(counts domain.LevelCounts, combo domain.CardCombination) bool {
	run := combo.MaxSeq()
	need := combo.Packs[0].Count
	lowest := combo.Packs[run-1].Level

	top := domain.MaxLevel - 1
	if combo.Type.IsChain() {
		if combo.Level >= domain.MaxStraightLevel {
			return true
		}
		top = domain.MaxStraightLevel
	}

	for start := lowest + 1; start+domain.Level(run)-1 <= top; start++ {
		fits := true
		for l := start; l < start+domain.Level(run); l++ {
			if counts[l] < need {
				fits = false
				break
			}
		}
		if fits {
			return false
		}
	}
	return true
}

// OpponentBombLevels returns the levels whose four copies are all unseen.
func (m *CardMemory) OpponentBombLevels() []domain.Level {
	counts := m.Counts()
	var levels []domain.Level
	for l := domain.Level(0); l <= domain.LevelTwo; l++ {
		if counts[l] == 4 {
			levels = append(levels, l)
		}
	}
	return levels
}

// MayHoldRocket reports whether both jokers are unseen.
func (m *CardMemory) MayHoldRocket() bool {
	counts := m.Counts()
	return counts[domain.LevelLesserJoker] == 1 && counts[domain.LevelGreaterJoker] == 1
}

// CanBeTopped reports whether an opponent could possibly answer combo with
// anything at all: a higher instance of the same form, a bomb or the rocket.
func (m *CardMemory) CanBeTopped(combo domain.CardCombination) bool {
	if combo.Type == domain.Rocket {
		return false
	}
	if m.MayHoldRocket() {
		return true
	}
	if combo.Type == domain.Bomb {
		return !m.IsBoss(combo)
	}
	return !m.IsBoss(combo) || len(m.OpponentBombLevels()) > 0
}
