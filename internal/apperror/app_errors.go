package apperror

import "errors"

var (
	ErrMalformedNotice  = errors.New("malformed notice")
	ErrMissingGameID    = errors.New("game id is missing")
	ErrNoMoveableTokens = errors.New("no moveable tokens offered")
	ErrGameNotFound     = errors.New("game not found")
)
