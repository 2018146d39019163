package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/gladiatur-starter/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const turnPayload = `{
	"game": {
		"id": "g1",
		"ruleset": {
			"name": "classic",
			"tokens_per_player": 4,
			"score_to_win": 4,
			"special_fields": {"target": 40, "reroll": [5, 12], "save": [0]},
			"turn_timeout_ms": 2000
		}
	},
	"color": "red",
	"board": {"red": [0, 3], "blue": [7]},
	"score": {"red": 1, "blue": 0},
	"dice_roll": 6,
	"moveable": [3, {"token": 0}, "a"]
}`

func TestNotice_Decode(t *testing.T) {
	// Given: a full turn payload from the game server
	var notice Notice

	// When: decoding it
	err := json.Unmarshal([]byte(turnPayload), &notice)

	// Then: every field is populated and moves are kept verbatim
	require.NoError(t, err)
	assert.Equal(t, "g1", notice.Game.ID)
	assert.Equal(t, "classic", notice.Game.RuleSet.Name)
	assert.Equal(t, []int{5, 12}, notice.Game.RuleSet.SpecialFields.Reroll)
	assert.Equal(t, 6, notice.DiceRoll)
	assert.Equal(t, []int{0, 3}, notice.Board["red"])
	require.Len(t, notice.Moveable, 3)
	assert.JSONEq(t, `3`, string(notice.Moveable[0]))
	assert.JSONEq(t, `{"token": 0}`, string(notice.Moveable[1]))
	assert.JSONEq(t, `"a"`, string(notice.Moveable[2]))
}

func TestNotice_Won(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		winner string
		want   bool
	}{
		{name: "same color wins", color: "red", winner: "red", want: true},
		{name: "other color loses", color: "red", winner: "blue", want: false},
		{name: "no winner loses", color: "red", winner: "", want: false},
		{name: "no color never wins", color: "", winner: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := &Notice{Color: tt.color, Winner: tt.winner}
			assert.Equal(t, tt.want, notice.Won())
		})
	}
}

func TestNotice_Validate(t *testing.T) {
	t.Run("Start requires a game id", func(t *testing.T) {
		notice := &Notice{}
		require.ErrorIs(t, notice.ValidateStart(), apperror.ErrMissingGameID)

		notice.Game.ID = "g1"
		require.NoError(t, notice.ValidateStart())
	})

	t.Run("End requires a game id", func(t *testing.T) {
		notice := &Notice{Color: "red", Winner: "red"}
		require.ErrorIs(t, notice.ValidateEnd(), apperror.ErrMissingGameID)
	})

	t.Run("Turn requires at least one moveable token", func(t *testing.T) {
		// Given: a notice with an empty moveable list
		notice := &Notice{Game: Game{ID: "g1"}, Moveable: []Move{}}

		// When: validating it for a turn
		err := notice.ValidateTurn()

		// Then: ErrNoMoveableTokens is returned
		require.ErrorIs(t, err, apperror.ErrNoMoveableTokens)
	})

	t.Run("Turn does not require a game id", func(t *testing.T) {
		notice := &Notice{Moveable: []Move{Move(`1`)}}
		require.NoError(t, notice.ValidateTurn())
	})
}

func TestGameRecord(t *testing.T) {
	// Given: a started game
	record := NewGameRecord(Game{ID: "g1", RuleSet: RuleSet{Name: "classic"}}, "red")

	// Then: it is not finished until a result is set
	assert.Equal(t, StatusStarted, record.Status)
	assert.False(t, record.IsFinished())

	record.Status = ResultStatus(true)
	assert.Equal(t, StatusWon, record.Status)
	assert.True(t, record.IsFinished())

	assert.Equal(t, StatusLost, ResultStatus(false))
}
