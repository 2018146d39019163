package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
)

type WebhookUseCase interface {
	Start(ctx context.Context, notice *entity.Notice) (*entity.StartResponse, error)
	Turn(ctx context.Context, notice *entity.Notice) (*entity.MoveResponse, error)
	End(ctx context.Context, notice *entity.Notice) error

	GetGame(ctx context.Context, id string) (*entity.GameRecord, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type botService interface {
	AcceptInvitation(notice *entity.Notice) bool
	ChooseMove(notice *entity.Notice) (entity.Move, error)
}

type gameRepo interface {
	SaveStarted(ctx context.Context, game entity.Game, color string) error
	SaveResult(ctx context.Context, gameID string, won bool) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type webhookUseCase struct {
	logger *slog.Logger

	bot      botService
	gameRepo gameRepo
}

func NewWebhookUseCase(logger *slog.Logger, bot botService, gameRepo gameRepo) WebhookUseCase {
	return &webhookUseCase{
		logger:   logger.With("component", "webhook"),
		bot:      bot,
		gameRepo: gameRepo,
	}
}

func (that *webhookUseCase) Start(ctx context.Context, notice *entity.Notice) (*entity.StartResponse, error) {
	if err := notice.ValidateStart(); err != nil {
		return nil, fmt.Errorf("invalid start notice: %w", err)
	}

	log := that.logger.With("game_id", notice.Game.ID)
	log.Info("started new game "+notice.Game.ID,
		"color", notice.Color,
		"ruleset", notice.Game.RuleSet.Name,
	)

	accept := that.bot.AcceptInvitation(notice)
	if accept {
		// the ledger is informational, a failure here must not cost us the game
		if err := that.gameRepo.SaveStarted(ctx, notice.Game, notice.Color); err != nil {
			log.Error("could not save started game", "error", err)
		}
	}

	return &entity.StartResponse{Accept: accept}, nil
}

func (that *webhookUseCase) Turn(_ context.Context, notice *entity.Notice) (*entity.MoveResponse, error) {
	move, err := that.bot.ChooseMove(notice)
	if err != nil {
		return nil, fmt.Errorf("could not choose move: %w", err)
	}

	that.logger.Debug("chose move",
		"game_id", notice.Game.ID,
		"dice_roll", notice.DiceRoll,
		"moveable", len(notice.Moveable),
		"move", string(move),
	)

	return &entity.MoveResponse{Move: move}, nil
}

func (that *webhookUseCase) End(ctx context.Context, notice *entity.Notice) error {
	if err := notice.ValidateEnd(); err != nil {
		return fmt.Errorf("invalid end notice: %w", err)
	}

	won := notice.Won()

	log := that.logger.With("game_id", notice.Game.ID)
	if won {
		log.Info("won game "+notice.Game.ID, "color", notice.Color)
	} else {
		log.Info("lost game "+notice.Game.ID, "color", notice.Color, "winner", notice.Winner)
	}

	if err := that.gameRepo.SaveResult(ctx, notice.Game.ID, won); err != nil {
		log.Error("could not save game result", "error", err)
	}

	return nil
}

func (that *webhookUseCase) GetGame(ctx context.Context, id string) (*entity.GameRecord, error) {
	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get game %q: %w", id, err)
	}

	return record, nil
}

func (that *webhookUseCase) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.gameRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get stats: %w", err)
	}

	return stats, nil
}
