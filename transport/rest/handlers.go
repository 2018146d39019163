package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gladiatur-starter/internal/apperror"
	"github.com/rocketscienceinc/gladiatur-starter/internal/entity"
)

const maxNoticeBytes = 1 << 20

type Handlers interface {
	StartHandler(w http.ResponseWriter, r *http.Request)
	TurnHandler(w http.ResponseWriter, r *http.Request)
	EndHandler(w http.ResponseWriter, r *http.Request)

	GameHandler(w http.ResponseWriter, r *http.Request)
	StatsHandler(w http.ResponseWriter, r *http.Request)
}

type webhookUseCase interface {
	Start(ctx context.Context, notice *entity.Notice) (*entity.StartResponse, error)
	Turn(ctx context.Context, notice *entity.Notice) (*entity.MoveResponse, error)
	End(ctx context.Context, notice *entity.Notice) error

	GetGame(ctx context.Context, id string) (*entity.GameRecord, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type handlers struct {
	logger  *slog.Logger
	webhook webhookUseCase
}

func NewHandlers(logger *slog.Logger, webhook webhookUseCase) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		webhook: webhook,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) StartHandler(w http.ResponseWriter, r *http.Request) {
	notice, err := that.decodeNotice(w, r)
	if err != nil {
		that.writeError(w, "start", err)
		return
	}

	response, err := that.webhook.Start(r.Context(), notice)
	if err != nil {
		that.writeError(w, "start", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, response)
}

func (that *handlers) TurnHandler(w http.ResponseWriter, r *http.Request) {
	notice, err := that.decodeNotice(w, r)
	if err != nil {
		that.writeError(w, "turn", err)
		return
	}

	response, err := that.webhook.Turn(r.Context(), notice)
	if err != nil {
		that.writeError(w, "turn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, response)
}

func (that *handlers) EndHandler(w http.ResponseWriter, r *http.Request) {
	notice, err := that.decodeNotice(w, r)
	if err != nil {
		that.writeError(w, "end", err)
		return
	}

	if err = that.webhook.End(r.Context(), notice); err != nil {
		that.writeError(w, "end", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (that *handlers) GameHandler(w http.ResponseWriter, r *http.Request) {
	record, err := that.webhook.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "game", err)
		return
	}

	that.writeJSON(w, http.StatusOK, record)
}

func (that *handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := that.webhook.Stats(r.Context())
	if err != nil {
		that.writeError(w, "stats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *handlers) decodeNotice(w http.ResponseWriter, r *http.Request) (*entity.Notice, error) {
	var notice entity.Notice

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxNoticeBytes)).Decode(&notice); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedNotice, err)
	}

	return &notice, nil
}

func (that *handlers) writeError(w http.ResponseWriter, route string, err error) {
	var status int

	switch {
	case errors.Is(err, apperror.ErrMalformedNotice), errors.Is(err, apperror.ErrMissingGameID):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNoMoveableTokens):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	that.logger.Error("request failed", "route", route, "status", status, "error", err)

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	responseBytes, err := json.Marshal(body)
	if err != nil {
		that.logger.Error("failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err = w.Write(responseBytes); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
