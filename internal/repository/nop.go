package repository

import (
	"context"

	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
)

type nopGame struct{}

// NewNopGameRepository - a ledger that remembers nothing, used when redis is disabled.
func NewNopGameRepository() GameRepository {
	return nopGame{}
}

func (nopGame) SaveStarted(context.Context, entity.Game, string) error {
	return nil
}

func (nopGame) SaveResult(context.Context, string, bool) error {
	return nil
}

func (nopGame) GetByID(context.Context, string) (*entity.GameRecord, error) {
	return nil, ErrGameNotFound
}

func (nopGame) Stats(context.Context) (*entity.Stats, error) {
	return &entity.Stats{}, nil
}
