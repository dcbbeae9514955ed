package internal

import "landlord/internal/domain"

// Weights tune the situational adjustments applied on top of the remainder
// valuation of a candidate play.
type Weights struct {
	// BossBonus rewards a play nobody can top when the rest of the hand is
	// one combination or has at most one weak component.
	BossBonus float64
	// AttachmentDiscount removes moves per card played on a free lead.
	AttachmentDiscount float64

	// FeedAllyBonus rewards the first farmer leading a low single while the
	// second farmer holds a single card.
	FeedAllyBonus    float64
	FeedAllyMaxLevel domain.Level

	// ExactCountPenalty hits a short lead whose size matches an opponent's
	// hand; ExactCountLevelBonus gives back some of it per level for singles and pairs.
	ExactCountPenalty    float64
	ExactCountMaxCards   int
	ExactCountLevelBonus float64

	// PassPenalty and ThreatPenalty lower the pass baseline; the latter only
	// when an opponent is down to ThreatCards or fewer.
	PassPenalty   float64
	ThreatPenalty float64
	ThreatCards   int

	// LevelPivot is the level around which the must-beat adjustments turn.
	LevelPivot float64

	BombFeedBonus     float64
	BombAllyPenalty   float64
	RocketThreatBonus float64
	RocketThreatCards int
	RocketFeedBonus   float64
	RocketAllyPenalty float64
}

// ScoredMove holds a move with its computed value and move cost.
type ScoredMove struct {
	Move      ValidMove
	Value     float64
	Moves     float64
	Remainder Decomposition
}

// Score is the value-minus-cost objective the search maximizes.
func (m ScoredMove) Score() float64 {
	return m.Value - MoveWeight*m.Moves
}

// Scorer values candidate plays for one decision.
type Scorer struct {
	Weights   Weights
	Organizer *Organizer
	Table     domain.Table
}

// NewScorer builds a scorer for the given table.
func NewScorer(weights Weights, organizer *Organizer, table domain.Table) *Scorer {
	return &Scorer{Weights: weights, Organizer: organizer, Table: table}
}

// Baseline is the score of passing: the whole hand kept, minus the pass penalty.
func (s *Scorer) Baseline(hand []domain.Card) ScoredMove {
	own := s.Organizer.Decompose(hand)
	m := ScoredMove{
		Move:      ValidMove{Combo: domain.PassCombination, Remaining: hand},
		Value:     own.Value - s.Weights.PassPenalty,
		Moves:     own.Moves,
		Remainder: own,
	}
	if !s.Table.Status.IsLead() && s.Table.MinOpponentCards() <= s.Weights.ThreatCards {
		m.Value -= s.Weights.ThreatPenalty
	}
	return m
}

// remainder evaluates what a move leaves behind.
func (s *Scorer) remainder(move ValidMove) ScoredMove {
	rem := s.Organizer.Decompose(move.Remaining)
	return ScoredMove{Move: move, Value: rem.Value, Moves: rem.Moves, Remainder: rem}
}

func (s *Scorer) addBossBonus(m *ScoredMove) {
	if !s.Organizer.isBoss(m.Move.Combo) {
		return
	}
	if m.Remainder.Weak <= 1 || domain.IsValidSet(m.Move.Remaining) {
		m.Value += s.Weights.BossBonus
	}
}

// exactCount applies the penalty for a short play whose size equals an
// opponent's remaining card count.
func (s *Scorer) exactCount(m *ScoredMove, opponents ...int) {
	size := m.Move.Combo.Count()
	if size > s.Weights.ExactCountMaxCards {
		return
	}
	for _, n := range opponents {
		if size != n {
			continue
		}
		m.Value -= s.Weights.ExactCountPenalty
		if size <= 2 {
			m.Value += float64(m.Move.Combo.HighestLevel()) * s.Weights.ExactCountLevelBonus
		}
		return
	}
}

// ScoreLead values a free-lead candidate.
func (s *Scorer) ScoreLead(move ValidMove) ScoredMove {
	m := s.remainder(move)
	s.addBossBonus(&m)

	w, t := s.Weights, s.Table
	combo := move.Combo
	if t.Status == domain.StatusFirstFarmerLead && t.Cards[domain.SecondFarmer] == 1 &&
		combo.Type == domain.Single && combo.Level <= w.FeedAllyMaxLevel {
		m.Value += w.FeedAllyBonus
	}
	m.Moves -= float64(combo.Count()) * w.AttachmentDiscount

	switch t.Status {
	case domain.StatusLandlordLead:
		s.exactCount(&m, t.Cards[domain.FirstFarmer], t.Cards[domain.SecondFarmer])
	case domain.StatusFirstFarmerLead, domain.StatusSecondFarmerLead:
		s.exactCount(&m, t.Cards[domain.Landlord])
	}
	return m
}

// ScoreBeat values a same-form answer to prev.
func (s *Scorer) ScoreBeat(move ValidMove, prev domain.CardCombination) ScoredMove {
	m := s.remainder(move)
	s.addBossBonus(&m)

	w, t := s.Weights, s.Table
	combo := move.Combo
	if t.Status.FeedsLandlord() && combo.Count() == t.Cards[domain.Landlord] {
		m.Value += float64(combo.HighestLevel()) - w.LevelPivot
	}
	if t.Status.AllyOnTable() {
		m.Value -= float64(prev.Level+combo.Level) - w.LevelPivot
	}
	return m
}

// ScoreBomb values answering prev with a bomb.
func (s *Scorer) ScoreBomb(move ValidMove, prev domain.CardCombination) ScoredMove {
	m := s.remainder(move)
	w, t := s.Weights, s.Table
	if t.Status.FeedsLandlord() && t.Cards[domain.Landlord] == prev.Count() {
		m.Value += w.BombFeedBonus
	}
	if t.Status.AllyOnTable() {
		m.Value -= w.BombAllyPenalty
	}
	return m
}

// ScoreRocket values answering prev with the rocket.
func (s *Scorer) ScoreRocket(move ValidMove, prev domain.CardCombination) ScoredMove {
	m := s.remainder(move)
	w, t := s.Weights, s.Table
	if t.Status == domain.StatusLandlordFollow &&
		(t.Cards[domain.FirstFarmer] <= w.RocketThreatCards || t.Cards[domain.SecondFarmer] <= w.RocketThreatCards) {
		m.Value += w.RocketThreatBonus
	}
	if t.Status.FeedsLandlord() && t.Cards[domain.Landlord] == prev.Count() {
		m.Value += w.RocketFeedBonus
	}
	if t.Status.AllyOnTable() {
		m.Value -= w.RocketAllyPenalty
	}
	return m
}
