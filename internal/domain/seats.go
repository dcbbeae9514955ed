package domain

// NumSeats is the number of players at a table.
const NumSeats = 3

// Position is an absolute seat index, 0..2.
type Position int

// Valid reports whether p names one of the seats.
func (p Position) Valid() bool { return p >= 0 && p < NumSeats }

// Next returns the seat that acts after p.
func (p Position) Next() Position { return (p + 1) % NumSeats }

// Role is a seat's part relative to the landlord. Play order is
// Landlord, FirstFarmer, SecondFarmer.
type Role int

const (
	Landlord Role = iota
	FirstFarmer
	SecondFarmer
)

func (r Role) String() string {
	switch r {
	case Landlord:
		return "landlord"
	case FirstFarmer:
		return "farmer1"
	case SecondFarmer:
		return "farmer2"
	}
	return "unknown"
}

// RoleOf returns the role of pos when landlord sits at the given position.
func RoleOf(pos, landlord Position) Role {
	return Role((pos - landlord + NumSeats) % NumSeats)
}

// PositionOf returns the absolute seat holding role.
func PositionOf(role Role, landlord Position) Position {
	return (landlord + Position(role)) % NumSeats
}

// TurnStatus condenses who acted last relative to the deciding seat.
// The numeric values are stable and appear in decision logs.
type TurnStatus int

const (
	StatusLandlordLead            TurnStatus = iota // landlord to move, both farmers passed
	StatusLandlordFollow                            // landlord to move against a farmer's play
	StatusFirstFarmerLead                           // first farmer to move, the other two passed
	StatusSecondFarmerLead                          // second farmer to move, the other two passed
	StatusFirstFarmerVsLandlord                     // first farmer answering the landlord
	StatusFirstFarmerVsAlly                         // first farmer, landlord passed on the ally's play
	StatusSecondFarmerVsAllyAgain                   // second farmer, ally played again after a full round of passes
	StatusSecondFarmerVsAlly                        // second farmer answering the ally
	StatusSecondFarmerVsLandlord                    // second farmer, ally passed on the landlord's play
)

// Role returns the deciding seat's role.
func (s TurnStatus) Role() Role {
	switch s {
	case StatusLandlordLead, StatusLandlordFollow:
		return Landlord
	case StatusFirstFarmerLead, StatusFirstFarmerVsLandlord, StatusFirstFarmerVsAlly:
		return FirstFarmer
	}
	return SecondFarmer
}

// IsLead reports whether the deciding seat plays onto an empty table.
func (s TurnStatus) IsLead() bool {
	return s == StatusLandlordLead || s == StatusFirstFarmerLead || s == StatusSecondFarmerLead
}

// AllyOnTable reports whether the play to answer came from the deciding farmer's ally.
func (s TurnStatus) AllyOnTable() bool {
	return s == StatusFirstFarmerVsAlly || s == StatusSecondFarmerVsAllyAgain || s == StatusSecondFarmerVsAlly
}

// FeedsLandlord reports whether the landlord acts right after the deciding seat
// while a play is on the table.
func (s TurnStatus) FeedsLandlord() bool {
	return s == StatusSecondFarmerVsAllyAgain || s == StatusSecondFarmerVsAlly || s == StatusSecondFarmerVsLandlord
}

// TurnRelation is the explicit record behind a TurnStatus.
type TurnRelation struct {
	Role Role
	// Passed holds whether each role's latest action was a pass. Seats that
	// have not acted yet count as passed.
	Passed [NumSeats]bool
	// FirstFarmerTurns is how many actions the first farmer has recorded.
	FirstFarmerTurns int
}

// Status derives the status code from the relation.
func (r TurnRelation) Status() TurnStatus {
	switch r.Role {
	case Landlord:
		if r.Passed[FirstFarmer] && r.Passed[SecondFarmer] {
			return StatusLandlordLead
		}
		return StatusLandlordFollow
	case FirstFarmer:
		if r.Passed[SecondFarmer] && r.Passed[Landlord] {
			return StatusFirstFarmerLead
		}
		if r.Passed[Landlord] {
			return StatusFirstFarmerVsAlly
		}
		return StatusFirstFarmerVsLandlord
	default:
		if r.Passed[FirstFarmer] && r.Passed[Landlord] {
			return StatusSecondFarmerLead
		}
		if r.Passed[FirstFarmer] {
			return StatusSecondFarmerVsLandlord
		}
		if r.FirstFarmerTurns > 1 && r.Passed[Landlord] && r.Passed[SecondFarmer] {
			return StatusSecondFarmerVsAllyAgain
		}
		return StatusSecondFarmerVsAlly
	}
}

// Table is what the search needs to know about the other seats.
type Table struct {
	Status TurnStatus
	// Cards holds the remaining card count of each role.
	Cards [NumSeats]int
}

// MinOpponentCards returns the smallest hand among the deciding seat's opponents.
func (t Table) MinOpponentCards() int {
	if t.Status.Role() == Landlord {
		return min(t.Cards[FirstFarmer], t.Cards[SecondFarmer])
	}
	return t.Cards[Landlord]
}
