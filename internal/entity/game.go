package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gladiatur-starter/internal/apperror"
)

const (
	StatusStarted = "started"
	StatusWon     = "won"
	StatusLost    = "lost"
)

type Game struct {
	ID      string  `json:"id"`
	RuleSet RuleSet `json:"ruleset"`
}

type RuleSet struct {
	Name            string        `json:"name"`
	TokensPerPlayer int           `json:"tokens_per_player"`
	ScoreToWin      int           `json:"score_to_win"`
	SpecialFields   SpecialFields `json:"special_fields"`
	TurnTimeoutMs   int           `json:"turn_timeout_ms"`
}

type SpecialFields struct {
	Target int   `json:"target"`
	Reroll []int `json:"reroll"`
	Save   []int `json:"save"`
}

// Move is a legal move as offered by the game server. It is never interpreted.
type Move = json.RawMessage

// Notice is the body the game server sends to /start, /turn and /end.
type Notice struct {
	Game     Game             `json:"game"`
	Color    string           `json:"color"`
	Board    map[string][]int `json:"board,omitempty"`
	Score    map[string]int   `json:"score,omitempty"`
	DiceRoll int              `json:"dice_roll,omitempty"`
	Moveable []Move           `json:"moveable,omitempty"`
	Winner   string           `json:"winner,omitempty"`
}

type StartResponse struct {
	Accept bool `json:"accept"`
}

type MoveResponse struct {
	Move Move `json:"move"`
}

// Won - reports whether the bot's color is the winning one.
func (that *Notice) Won() bool {
	return that.Color != "" && that.Color == that.Winner
}

func (that *Notice) ValidateStart() error {
	return that.requireGameID()
}

func (that *Notice) ValidateTurn() error {
	if len(that.Moveable) == 0 {
		return fmt.Errorf("%w: game %q", apperror.ErrNoMoveableTokens, that.Game.ID)
	}

	return nil
}

func (that *Notice) ValidateEnd() error {
	return that.requireGameID()
}

func (that *Notice) requireGameID() error {
	if that.Game.ID == "" {
		return apperror.ErrMissingGameID
	}

	return nil
}
