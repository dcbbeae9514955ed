package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"landlord/internal/bot/brain"
	"landlord/internal/domain"
)

// Errors returned while reading a judge log.
var (
	ErrEmptyRequests    = errors.New("no requests in input")
	ErrMalformedRequest = errors.New("malformed request")
	ErrUnknownLandlord  = errors.New("play history before the landlord is known")
)

func wrapMalformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
}

// Stage of the deal the bot is asked to act in.
type Stage int

const (
	StageBidding Stage = iota
	StagePlaying
)

func (s Stage) String() string {
	if s == StagePlaying {
		return "playing"
	}
	return "bidding"
}

// State is everything the bot knows at its turn, rebuilt from the match log.
type State struct {
	Stage    Stage
	Position domain.Position
	Landlord domain.Position
	// LandlordKnown is false while the auction is still running.
	LandlordKnown bool
	Hand          []domain.Card
	Bids          []int
	FinalBid      int
	PublicCards   []domain.Card
	// Cards holds the remaining card count of each absolute position.
	Cards [domain.NumSeats]int
	// LastPlay is the combination to beat, or a pass when the bot leads.
	LastPlay domain.CardCombination
	Memory   *brain.CardMemory
}

// BuildState replays the match log into a State.
func BuildState(in Input) (*State, error) {
	if len(in.Requests) == 0 {
		return nil, ErrEmptyRequests
	}

	first := in.Requests[0]
	if err := checkCards(first.Own); err != nil {
		return nil, err
	}
	s := &State{
		Position: domain.Position(len(first.Bid)),
		Hand:     append([]domain.Card(nil), first.Own...),
		Bids:     append([]int(nil), first.Bid...),
		LastPlay: domain.PassCombination,
		Memory:   brain.NewMemory(),
	}
	for p := range s.Cards {
		s.Cards[p] = InitialHandSize
	}

	for i, req := range in.Requests {
		if len(req.PublicCard) > 0 {
			if err := s.takePublicCards(req); err != nil {
				return nil, err
			}
		}
		if len(req.History) == 0 {
			continue
		}
		if !s.LandlordKnown {
			return nil, ErrUnknownLandlord
		}
		s.Stage = StagePlaying
		if err := s.replayHistory(req.History); err != nil {
			return nil, err
		}

		if i < len(in.Requests)-1 {
			if i >= len(in.Responses) {
				return nil, fmt.Errorf("%w: missing response %d", ErrMalformedRequest, i)
			}
			if err := s.replayOwn(in.Responses[i]); err != nil {
				return nil, err
			}
		}
	}

	if !s.Position.Valid() {
		return nil, fmt.Errorf("%w: position %d", ErrMalformedRequest, s.Position)
	}
	s.Memory.MarkMine(s.Hand)
	return s, nil
}

func (s *State) takePublicCards(req Request) error {
	if req.Landlord == nil || req.Pos == nil {
		return fmt.Errorf("%w: public cards without landlord or position", ErrMalformedRequest)
	}
	if err := checkCards(req.PublicCard); err != nil {
		return err
	}
	s.Landlord = domain.Position(*req.Landlord)
	s.Position = domain.Position(*req.Pos)
	if !s.Landlord.Valid() || !s.Position.Valid() {
		return fmt.Errorf("%w: landlord %d, position %d", ErrMalformedRequest, s.Landlord, s.Position)
	}
	if req.FinalBid != nil {
		s.FinalBid = *req.FinalBid
	}
	s.LandlordKnown = true
	s.PublicCards = append(s.PublicCards, req.PublicCard...)
	s.Cards[s.Landlord] += len(req.PublicCard)
	if s.Landlord == s.Position {
		s.Hand = append(s.Hand, req.PublicCard...)
		if err := checkCards(s.Hand); err != nil {
			return err
		}
	}
	return nil
}

// replayHistory records the two actions taken since the bot's last move.
func (s *State) replayHistory(history [][]domain.Card) error {
	if len(history) != domain.NumSeats-1 {
		return fmt.Errorf("%w: history holds %d actions", ErrMalformedRequest, len(history))
	}
	passes := 0
	seat := s.Position
	for _, cards := range history {
		seat = seat.Next()
		if err := s.checkPlay(cards); err != nil {
			return err
		}
		s.Memory.RecordPlay(domain.RoleOf(seat, s.Landlord), cards)
		s.Cards[seat] -= len(cards)
		if len(cards) == 0 {
			passes++
			continue
		}
		s.LastPlay = domain.IdentifyCombination(cards)
	}
	if passes == len(history) {
		s.LastPlay = domain.PassCombination
	}
	return nil
}

// replayOwn records one of the bot's earlier plays.
func (s *State) replayOwn(raw json.RawMessage) error {
	var cards []domain.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return wrapMalformed(err)
	}
	if err := s.checkPlay(cards); err != nil {
		return err
	}
	s.Memory.RecordPlay(s.Role(), cards)
	s.Cards[s.Position] -= len(cards)
	s.Hand = domain.RemoveCards(s.Hand, cards)
	return nil
}

// checkPlay rejects a play holding a card that already left the game.
func (s *State) checkPlay(cards []domain.Card) error {
	if err := checkCards(cards); err != nil {
		return err
	}
	for _, c := range cards {
		if s.Memory.IsPlayed(c) {
			return fmt.Errorf("%w: card %d played twice", ErrMalformedRequest, int(c))
		}
	}
	return nil
}

// checkCards rejects cards outside the deck and repeated card identities.
func checkCards(cards []domain.Card) error {
	var seen [domain.DeckSize]bool
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d", ErrMalformedRequest, int(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: card %d repeated", ErrMalformedRequest, int(c))
		}
		seen[c] = true
	}
	return nil
}

// Role returns the bot's role. It is only meaningful once the landlord is known.
func (s *State) Role() domain.Role {
	return domain.RoleOf(s.Position, s.Landlord)
}

// MaxBid returns the highest bid placed before the bot, or -1.
func (s *State) MaxBid() int {
	best := -1
	for _, b := range s.Bids {
		best = max(best, b)
	}
	return best
}

// Relation derives who acted last relative to the bot.
func (s *State) Relation() domain.TurnRelation {
	r := domain.TurnRelation{
		Role:             s.Role(),
		FirstFarmerTurns: s.Memory.Seats[domain.FirstFarmer].Turns,
	}
	for role, seat := range s.Memory.Seats {
		r.Passed[role] = seat.LastPassed
	}
	return r
}

// Table returns the view of the other seats the search works from.
func (s *State) Table() domain.Table {
	t := domain.Table{Status: s.Relation().Status()}
	for role := range t.Cards {
		t.Cards[role] = s.Cards[domain.PositionOf(domain.Role(role), s.Landlord)]
	}
	return t
}
