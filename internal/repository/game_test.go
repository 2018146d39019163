package repository

import (
	"testing"

	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
	"github.com/rocketscienceinc/gladiatur-starter/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_SaveStarted(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game the bot has just joined
	game := entity.Game{ID: "g1", RuleSet: entity.RuleSet{Name: "classic"}}

	// When: SaveStarted is called
	err := gameRepo.SaveStarted(ctx, game, "red")

	// Then: the record is stored as started and counted
	require.NoError(t, err)

	record, err := gameRepo.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, &entity.GameRecord{ID: "g1", RuleSet: "classic", Color: "red", Status: entity.StatusStarted}, record)

	stats, err := gameRepo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{Started: 1}, stats)
}

func TestGameRepository_SaveResult(t *testing.T) {
	t.Run("SaveResult_KnownGame", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a started game
		require.NoError(t, gameRepo.SaveStarted(ctx, entity.Game{ID: "g1"}, "red"))

		// When: the game is won
		err := gameRepo.SaveResult(ctx, "g1", true)

		// Then: the record keeps its color and is marked won
		require.NoError(t, err)

		record, err := gameRepo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "red", record.Color)
		assert.Equal(t, entity.StatusWon, record.Status)
	})

	t.Run("SaveResult_UnknownGame", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: a result arrives for a game that was never started
		err := gameRepo.SaveResult(ctx, "g2", false)

		// Then: a bare record is created
		require.NoError(t, err)

		record, err := gameRepo.GetByID(ctx, "g2")
		require.NoError(t, err)
		assert.Equal(t, &entity.GameRecord{ID: "g2", Status: entity.StatusLost}, record)
	})

	t.Run("SaveResult_CountsOutcomes", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, gameRepo.SaveStarted(ctx, entity.Game{ID: "g1"}, "red"))
		require.NoError(t, gameRepo.SaveStarted(ctx, entity.Game{ID: "g2"}, "blue"))
		require.NoError(t, gameRepo.SaveResult(ctx, "g1", true))
		require.NoError(t, gameRepo.SaveResult(ctx, "g2", false))

		stats, err := gameRepo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{Started: 2, Won: 1, Lost: 1}, stats)
	})
}

func TestGameRepository_GetByID_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// When: GetByID is called with a non-existent ID
	record, err := gameRepo.GetByID(ctx, "9999999")

	// Then: an ErrGameNotFound error should be returned
	require.ErrorIs(t, err, ErrGameNotFound)
	assert.Nil(t, record)
}

func TestGameRepository_Stats_Empty(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	stats, err := gameRepo.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{}, stats)
}
