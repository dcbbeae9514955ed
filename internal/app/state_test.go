package app

import (
	"encoding/json"
	"testing"

	"landlord/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardRange(from, to int) []domain.Card {
	cards := make([]domain.Card, 0, to-from)
	for c := from; c < to; c++ {
		cards = append(cards, domain.Card(c))
	}
	return cards
}

func intPtr(v int) *int { return &v }

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestBuildState_Bidding(t *testing.T) {
	in := Input{Requests: []Request{{Own: cardRange(0, 17), Bid: []int{1}}}}

	s, err := BuildState(in)
	require.NoError(t, err)
	assert.Equal(t, StageBidding, s.Stage)
	assert.Equal(t, domain.Position(1), s.Position)
	assert.Equal(t, 1, s.MaxBid())
	assert.Len(t, s.Hand, 17)
	assert.Equal(t, 0, s.Memory.Remaining(0))
}

func TestBuildState_LandlordOpens(t *testing.T) {
	in := Input{
		Requests: []Request{
			{Own: cardRange(0, 17), Bid: []int{}},
			{History: [][]domain.Card{{}, {}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(0), Pos: intPtr(0), FinalBid: intPtr(3)},
		},
		Responses: []json.RawMessage{raw(t, 3)},
	}

	s, err := BuildState(in)
	require.NoError(t, err)
	assert.Equal(t, StagePlaying, s.Stage)
	assert.Equal(t, domain.Landlord, s.Role())
	assert.Equal(t, 3, s.FinalBid)
	assert.Len(t, s.Hand, 20)
	assert.Equal(t, domain.Pass, s.LastPlay.Type)
	assert.Equal(t, [3]int{20, 17, 17}, s.Cards)

	table := s.Table()
	assert.Equal(t, domain.StatusLandlordLead, table.Status)
	assert.Equal(t, [3]int{20, 17, 17}, table.Cards)
}

func TestBuildState_FarmerReplay(t *testing.T) {
	own := append(cardRange(0, 16), 40)
	in := Input{
		Requests: []Request{
			{Own: own, Bid: []int{3}},
			// Seat 2 has not acted yet; the landlord opened with a single 8.
			{History: [][]domain.Card{{}, {20}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(0), Pos: intPtr(1), FinalBid: intPtr(3)},
			// The ally topped the bot's king with an ace and the landlord passed.
			{History: [][]domain.Card{{44}, {}}},
		},
		Responses: []json.RawMessage{raw(t, 0), raw(t, []int{40})},
	}

	s, err := BuildState(in)
	require.NoError(t, err)
	assert.Equal(t, domain.FirstFarmer, s.Role())
	assert.Equal(t, cardRange(0, 16), s.Hand)
	assert.Equal(t, [3]int{19, 16, 16}, s.Cards)

	assert.Equal(t, domain.Single, s.LastPlay.Type)
	assert.Equal(t, domain.Level(11), s.LastPlay.Level)

	table := s.Table()
	assert.Equal(t, domain.StatusFirstFarmerVsAlly, table.Status)
	assert.Equal(t, [3]int{19, 16, 16}, table.Cards)

	assert.Equal(t, 3, s.Memory.Remaining(5))
	assert.Equal(t, 3, s.Memory.Remaining(10))
	assert.Equal(t, 0, s.Memory.Remaining(0))
	assert.True(t, s.Memory.IsPlayed(44))
	assert.Equal(t, 2, s.Memory.Seats[domain.SecondFarmer].Turns)
}

func TestBuildState_TwoPassesClearTheTable(t *testing.T) {
	in := Input{
		Requests: []Request{
			{Own: cardRange(0, 17), Bid: []int{3, 0}},
			{History: [][]domain.Card{{}, {20}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(1), Pos: intPtr(2)},
			{History: [][]domain.Card{{}, {}}},
		},
		Responses: []json.RawMessage{raw(t, 0), raw(t, []int{16})},
	}

	s, err := BuildState(in)
	require.NoError(t, err)
	assert.Equal(t, domain.Pass, s.LastPlay.Type)
	assert.Equal(t, domain.FirstFarmer, s.Role())
	assert.Equal(t, domain.StatusFirstFarmerLead, s.Table().Status)
}

func TestBuildState_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{name: "no requests", in: Input{}, want: ErrEmptyRequests},
		{name: "history before landlord", in: Input{Requests: []Request{{Own: cardRange(0, 17)}, {History: [][]domain.Card{{}, {}}}}}, want: ErrUnknownLandlord},
		{name: "card out of range", in: Input{Requests: []Request{{Own: []domain.Card{54}}}}, want: ErrMalformedRequest},
		{name: "public cards without landlord", in: Input{Requests: []Request{{Own: cardRange(0, 17)}, {PublicCard: []domain.Card{51, 52, 53}}}}, want: ErrMalformedRequest},
		{
			name: "short history",
			in: Input{Requests: []Request{
				{Own: cardRange(0, 17)},
				{History: [][]domain.Card{{}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(0), Pos: intPtr(0)},
			}},
			want: ErrMalformedRequest,
		},
		{
			name: "card played twice",
			in: Input{
				Requests: []Request{
					{Own: cardRange(0, 17)},
					{History: [][]domain.Card{{}, {20}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(0), Pos: intPtr(1)},
					{History: [][]domain.Card{{20}, {}}},
				},
				Responses: []json.RawMessage{raw(t, 0), raw(t, []int{})},
			},
			want: ErrMalformedRequest,
		},
		{
			name: "public cards overlap own",
			in: Input{Requests: []Request{
				{Own: cardRange(0, 17)},
				{History: [][]domain.Card{{}, {}}, PublicCard: []domain.Card{15, 16, 17}, Landlord: intPtr(0), Pos: intPtr(0)},
			}},
			want: ErrMalformedRequest,
		},
		{
			name: "missing response",
			in: Input{Requests: []Request{
				{Own: cardRange(0, 17)},
				{History: [][]domain.Card{{}, {}}, PublicCard: []domain.Card{51, 52, 53}, Landlord: intPtr(0), Pos: intPtr(0)},
				{History: [][]domain.Card{{}, {}}},
			}},
			want: ErrMalformedRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildState(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseInput(t *testing.T) {
	in, err := ParseInput([]byte(`{"requests":[{"own":[0,1,2],"bid":[2]}],"responses":[]}`))
	require.NoError(t, err)
	require.Len(t, in.Requests, 1)
	assert.Equal(t, []int{2}, in.Requests[0].Bid)

	_, err = ParseInput([]byte(`{"requests":[]}`))
	assert.ErrorIs(t, err, ErrEmptyRequests)

	_, err = ParseInput([]byte(`{"requests":`))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}
