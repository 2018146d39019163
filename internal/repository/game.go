package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gladiatur-starter/internal/apperror"
	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
)

const (
	gameKeyPrefix   = "game:"
	statsStartedKey = "stats:started"
	statsWonKey     = "stats:won"
	statsLostKey    = "stats:lost"
)

var ErrGameNotFound = apperror.ErrGameNotFound

type GameRepository interface {
	SaveStarted(ctx context.Context, game entity.Game, color string) error
	SaveResult(ctx context.Context, gameID string, won bool) error

	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) SaveStarted(ctx context.Context, game entity.Game, color string) error {
	gameJSON, err := json.Marshal(entity.NewGameRecord(game, color))
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKeyPrefix+game.ID, gameJSON, 0)
		pipe.Incr(ctx, statsStartedKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save started game: %w", err)
	}

	return nil
}

// SaveResult - stores the outcome of a game. A game the ledger never saw start is
// recorded with its id only.
func (that *dbGame) SaveResult(ctx context.Context, gameID string, won bool) error {
	record, err := that.GetByID(ctx, gameID)
	if errors.Is(err, ErrGameNotFound) {
		record = &entity.GameRecord{ID: gameID}
	} else if err != nil {
		return err
	}

	record.Status = entity.ResultStatus(won)

	gameJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	counterKey := statsLostKey
	if won {
		counterKey = statsWonKey
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKeyPrefix+gameID, gameJSON, 0)
		pipe.Incr(ctx, counterKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

func (that *dbGame) Stats(ctx context.Context) (*entity.Stats, error) {
	values, err := that.client.MGet(ctx, statsStartedKey, statsWonKey, statsLostKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	counters := make([]int64, len(values))
	for i, value := range values {
		// unset counters come back as nil
		raw, ok := value.(string)
		if !ok {
			continue
		}

		if counters[i], err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse counter: %w", err)
		}
	}

	return &entity.Stats{
		Started: counters[0],
		Won:     counters[1],
		Lost:    counters[2],
	}, nil
}
