package app

// InitialHandSize is how many cards every seat is dealt before the landlord
// takes the public cards.
const InitialHandSize = 17

// MaxBid is the highest bid the judge accepts.
const MaxBid = 3
