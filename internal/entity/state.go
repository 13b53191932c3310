package entity

// Outcome is the kind of a GameState.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Win
	Draw
)

// GameState is derived from a Board and never stored. Winner is set only for Win.
type GameState struct {
	Outcome Outcome
	Winner  Side
}

func WinFor(side Side) GameState {
	return GameState{Outcome: Win, Winner: side}
}

func (s GameState) IsWin() bool {
	return s.Outcome == Win
}

func (s GameState) IsDraw() bool {
	return s.Outcome == Draw
}

func (s GameState) IsOngoing() bool {
	return s.Outcome == Ongoing
}

// IsFinished reports a Win or a Draw.
func (s GameState) IsFinished() bool {
	return s.Outcome != Ongoing
}

// WonBy reports whether side won.
func (s GameState) WonBy(side Side) bool {
	return s.Outcome == Win && s.Winner == side
}

func (s GameState) String() string {
	switch s.Outcome {
	case Win:
		return "win:" + s.Winner.String()
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
