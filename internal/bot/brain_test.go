package bot

import (
	"errors"
	"testing"

	"landlord/internal/bot/brain"
	"landlord/internal/domain"
	"landlord/internal/domain/domaintest"
)

func combo(levels ...domain.Level) domain.CardCombination {
	return domain.IdentifyCombination(domaintest.CardsOfLevels(levels...))
}

// freshMemory knows only the deciding hand.
func freshMemory(hand []domain.Card) *brain.CardMemory {
	m := brain.NewMemory()
	m.MarkMine(hand)
	return m
}

// exhaustedMemory has seen every card outside hand played.
func exhaustedMemory(hand []domain.Card) *brain.CardMemory {
	m := freshMemory(hand)
	for _, c := range domain.NewDeck() {
		if m.DeckStatus[c] == brain.StatusUnknown {
			m.MarkPlayed([]domain.Card{c})
		}
	}
	return m
}

var (
	landlordLead   = domain.Table{Status: domain.StatusLandlordLead, Cards: [3]int{5, 17, 17}}
	landlordFollow = domain.Table{Status: domain.StatusLandlordFollow, Cards: [3]int{5, 17, 17}}
)

func TestDecidePlay_Lead(t *testing.T) {
	e := NewEngine(0, 0)

	tests := []struct {
		name     string
		hand     []domain.Level
		exhaust  bool
		wantType domain.CardCombinationType
		wantLvl  domain.Level
	}{
		{name: "bomb held back while it can be topped", hand: []domain.Level{2, 2, 2, 2, 6}, wantType: domain.Single, wantLvl: 6},
		{name: "bomb finishes when nothing tops it", hand: []domain.Level{2, 2, 2, 2, 6}, exhaust: true, wantType: domain.Bomb, wantLvl: 2},
		{name: "whole hand bomb", hand: []domain.Level{2, 2, 2, 2}, wantType: domain.Bomb, wantLvl: 2},
		{name: "whole hand straight", hand: []domain.Level{0, 1, 2, 3, 4}, wantType: domain.Straight, wantLvl: 4},
		{name: "rocket leaves a valid remainder", hand: []domain.Level{13, 14, 5, 5}, wantType: domain.Rocket, wantLvl: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := domaintest.CardsOfLevels(tt.hand...)
			mem := freshMemory(hand)
			if tt.exhaust {
				mem = exhaustedMemory(hand)
			}
			got := e.DecidePlay(hand, domain.PassCombination, landlordLead, mem)
			if got.Type != tt.wantType || got.Level != tt.wantLvl {
				t.Fatalf("DecidePlay() = %v@%v, want %v@%v", got.Type, got.Level, tt.wantType, tt.wantLvl)
			}
		})
	}
}

func TestDecidePlay_LeadAlwaysPlays(t *testing.T) {
	e := NewEngine(0, 0)
	hand := domaintest.CardsOfLevels(0, 1, 3, 3, 5, 7, 7, 7, 9, 10, 12, 13)
	got := e.DecidePlay(hand, domain.PassCombination, landlordLead, freshMemory(hand))
	if !got.Valid() {
		t.Fatalf("DecidePlay() on a free lead returned %v", got.Type)
	}
	if len(domain.RemoveCards(hand, got.Cards)) != len(hand)-len(got.Cards) {
		t.Fatalf("DecidePlay() played cards outside the hand: %s", domain.FormatCards(got.Cards))
	}
}

func TestDecidePlay_Follow(t *testing.T) {
	e := NewEngine(0, 0)

	tests := []struct {
		name     string
		hand     []domain.Level
		prev     domain.CardCombination
		wantType domain.CardCombinationType
		wantLvl  domain.Level
	}{
		{name: "cheapest useful single", hand: []domain.Level{2, 10}, prev: combo(1), wantType: domain.Single, wantLvl: 2},
		{name: "pair is not split for a single", hand: []domain.Level{6, 6}, prev: combo(0), wantType: domain.Pass},
		{name: "whole hand beats", hand: []domain.Level{8, 8}, prev: combo(3, 3), wantType: domain.Pair, wantLvl: 8},
		{name: "finishing triplet with kicker", hand: []domain.Level{5, 5, 5, 2}, prev: combo(3, 3, 3, 0), wantType: domain.TripletWithSingle, wantLvl: 5},
		{name: "bomb with a valid remainder", hand: []domain.Level{3, 3, 3, 3, 0, 0}, prev: combo(5), wantType: domain.Bomb, wantLvl: 3},
		{name: "rocket answers a bomb", hand: []domain.Level{13, 14}, prev: combo(12, 12, 12, 12), wantType: domain.Rocket, wantLvl: 14},
		{name: "nothing answers the rocket", hand: []domain.Level{12, 12, 12, 12}, prev: combo(13, 14), wantType: domain.Pass},
		{name: "lower bomb cannot answer", hand: []domain.Level{1, 1, 1, 1, 0}, prev: combo(4, 4, 4, 4), wantType: domain.Pass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := domaintest.CardsOfLevels(tt.hand...)
			got := e.DecidePlay(hand, tt.prev, landlordFollow, freshMemory(hand))
			if got.Type != tt.wantType {
				t.Fatalf("DecidePlay() = %v, want %v", got.Type, tt.wantType)
			}
			if got.Type != domain.Pass && got.Level != tt.wantLvl {
				t.Fatalf("DecidePlay() level = %v, want %v", got.Level, tt.wantLvl)
			}
			if got.Type != domain.Pass && !domain.CanBeat(tt.prev, got) {
				t.Fatalf("DecidePlay() = %v does not beat %v", got.Type, tt.prev.Type)
			}
		})
	}
}

func TestDecidePlay_FollowBySeat(t *testing.T) {
	e := NewEngine(0, 0)
	hand := domaintest.CardsOfLevels(11, 4, 4)
	prev := combo(9)

	tests := []struct {
		name     string
		table    domain.Table
		wantType domain.CardCombinationType
	}{
		{name: "first farmer tops the landlord", table: domain.Table{Status: domain.StatusFirstFarmerVsLandlord, Cards: [3]int{17, 3, 17}}, wantType: domain.Single},
		{name: "first farmer lets the ally run", table: domain.Table{Status: domain.StatusFirstFarmerVsAlly, Cards: [3]int{17, 3, 17}}, wantType: domain.Pass},
		{name: "second farmer lets the ally run", table: domain.Table{Status: domain.StatusSecondFarmerVsAlly, Cards: [3]int{17, 17, 3}}, wantType: domain.Pass},
		{name: "second farmer stops a one-card landlord", table: domain.Table{Status: domain.StatusSecondFarmerVsLandlord, Cards: [3]int{1, 17, 3}}, wantType: domain.Single},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.DecidePlay(hand, prev, tt.table, freshMemory(hand))
			if got.Type != tt.wantType {
				t.Fatalf("DecidePlay() = %v, want %v", got.Type, tt.wantType)
			}
			if got.Type == domain.Single && got.Level != 11 {
				t.Fatalf("DecidePlay() level = %v, want 11", got.Level)
			}
		})
	}
}

func TestDecidePlay_NilTracker(t *testing.T) {
	e := NewEngine(0, 0)
	hand := domaintest.CardsOfLevels(2, 10)
	got := e.DecidePlay(hand, combo(1), landlordFollow, nil)
	if got.Type != domain.Single {
		t.Fatalf("DecidePlay() = %v, want single", got.Type)
	}
}

func TestCalculateMove(t *testing.T) {
	e := NewEngine(0, 0)

	if _, err := e.CalculateMove(TurnView{Prev: domain.PassCombination}); !errors.Is(err, ErrEmptyHand) {
		t.Fatalf("CalculateMove() on empty hand error = %v, want ErrEmptyHand", err)
	}

	hand := domaintest.CardsOfLevels(5, 9)
	if _, err := e.CalculateMove(TurnView{Hand: hand, Prev: combo(0, 1)}); !errors.Is(err, ErrInvalidPrevious) {
		t.Fatalf("CalculateMove() with an invalid prev error = %v, want ErrInvalidPrevious", err)
	}

	pair := domaintest.CardsOfLevels(6, 6)
	move, err := e.CalculateMove(TurnView{Hand: pair, Prev: combo(0), Table: landlordFollow, Cards: freshMemory(pair)})
	if err != nil || !move.Pass {
		t.Fatalf("CalculateMove() = %+v, %v, want pass", move, err)
	}

	move, err = e.CalculateMove(TurnView{Hand: hand, Prev: domain.PassCombination, Table: landlordLead, Cards: freshMemory(hand)})
	if err != nil || move.Pass || len(move.Cards) == 0 {
		t.Fatalf("CalculateMove() on a lead = %+v, %v", move, err)
	}
}

func TestEvaluateBid(t *testing.T) {
	e := NewEngine(0, 0)

	tests := []struct {
		name string
		hand []domain.Level
		want float64
	}{
		{name: "rocket", hand: []domain.Level{13, 14}, want: 15},
		{name: "greater joker", hand: []domain.Level{14}, want: 2},
		{name: "lesser joker", hand: []domain.Level{13}, want: 1},
		{name: "low single", hand: []domain.Level{0}, want: -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := domaintest.CardsOfLevels(tt.hand...)
			got := e.EvaluateBid(hand, freshMemory(hand))
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("EvaluateBid() = %v, want %v", got, tt.want)
			}
		})
	}

	strong := domaintest.CardsOfLevels(13, 14, 12, 12, 11, 11, 11, 11)
	weak := domaintest.CardsOfLevels(0, 1, 3, 5, 7, 8)
	if e.EvaluateBid(strong, nil) <= e.EvaluateBid(weak, nil) {
		t.Fatal("EvaluateBid() ranks a rocket-and-bomb hand below scattered low cards")
	}
}
