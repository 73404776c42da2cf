package model

// Role is the position code of a player as written in the spreadsheet.
// Codes other than the known ones are kept as they are.
type Role string

const (
	RoleGoalkeeper Role = "P"
	RoleDefender   Role = "D"
	RoleMidfielder Role = "C"
	RoleForward    Role = "A"
	RoleCoach      Role = "ALL"
)

// IsKnown reports whether r is one of the documented role codes
func (r Role) IsKnown() bool {
	switch r {
	case RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward, RoleCoach:
		return true
	default:
		return false
	}
}

// Team is one club block of a votes spreadsheet. Players keep roster order.
type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Player holds the performance of a player in a single fixture
type Player struct {
	ID   int    `json:"id"` // assigned by fantacalcio.it
	Role Role   `json:"role"`
	Name string `json:"name"`
	// Vote is nil when the player was not rated
	Vote *float64 `json:"vote"`
	// VoteRaw is the cell text when the vote was written as text, e.g. "6*"
	VoteRaw string `json:"vote_raw,omitempty"`

	GF  int `json:"gf"`  // goals scored
	GS  int `json:"gs"`  // goals conceded
	RP  int `json:"rp"`  // penalties saved
	RS  int `json:"rs"`  // penalties missed
	RF  int `json:"rf"`  // penalties scored
	AU  int `json:"au"`  // own goals
	Amm int `json:"amm"` // yellow cards
	Esp int `json:"esp"` // red cards
	Ass int `json:"ass"` // assists
}
