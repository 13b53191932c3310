package entity

// Record is the cumulative score of a player against the automated side.
type Record struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

// Register counts a finished round. Ongoing states are ignored.
func (that *Record) Register(state GameState) {
	switch {
	case state.WonBy(Human):
		that.Wins++
	case state.WonBy(Automated):
		that.Losses++
	case state.IsDraw():
		that.Draws++
	}
}

func (that *Record) Played() int {
	return that.Wins + that.Losses + that.Draws
}
