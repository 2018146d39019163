package entity

// GameRecord is what the ledger remembers about one game.
type GameRecord struct {
	ID      string `json:"id"`
	RuleSet string `json:"ruleset,omitempty"`
	Color   string `json:"color,omitempty"`
	Status  string `json:"status"`
}

type Stats struct {
	Started int64 `json:"started"`
	Won     int64 `json:"won"`
	Lost    int64 `json:"lost"`
}

func NewGameRecord(game Game, color string) *GameRecord {
	return &GameRecord{
		ID:      game.ID,
		RuleSet: game.RuleSet.Name,
		Color:   color,
		Status:  StatusStarted,
	}
}

func ResultStatus(won bool) string {
	if won {
		return StatusWon
	}
	return StatusLost
}

func (that *GameRecord) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusLost
}
