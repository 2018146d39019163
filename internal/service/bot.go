package service

import (
	"fmt"

	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
)

type BotService interface {
	AcceptInvitation(notice *entity.Notice) bool
	ChooseMove(notice *entity.Notice) (entity.Move, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// AcceptInvitation - the starter joins every game it is invited to.
func (that *botService) AcceptInvitation(_ *entity.Notice) bool {
	return true
}

// ChooseMove - picks the first moveable token in the order the server offered them.
func (that *botService) ChooseMove(notice *entity.Notice) (entity.Move, error) {
	if err := notice.ValidateTurn(); err != nil {
		return nil, fmt.Errorf("bot failed to choose move: %w", err)
	}

	return notice.Moveable[0], nil
}
