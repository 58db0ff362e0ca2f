package api

import (
	"errors"
	"net/http"

	"lucky888_backend/internal/game"
	"lucky888_backend/internal/service"
	"lucky888_backend/pkg/resp"

	"go.uber.org/zap"
)

type apiError struct {
	target error
	status int
	code   string
}

// Порядок важен: более конкретные ошибки раньше ErrInvalidWager
var apiErrors = []apiError{
	{service.ErrNoSession, http.StatusUnauthorized, "unauthorized"},
	{service.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
	{game.ErrRoundInProgress, http.StatusConflict, "round_in_progress"},
	{game.ErrInsufficientBalance, http.StatusUnprocessableEntity, "insufficient_balance"},
	{game.ErrInvalidCustomNumber, http.StatusUnprocessableEntity, "invalid_custom_number"},
	{game.ErrNoWagerPlaced, http.StatusUnprocessableEntity, "no_wager_placed"},
	{game.ErrInvalidWager, http.StatusBadRequest, "invalid_wager"},
}

// WriteError отдает ошибку сервиса с подходящим статусом
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	for _, e := range apiErrors {
		if errors.Is(err, e.target) {
			resp.WriteError(w, e.status, e.code, err.Error())
			return
		}
	}

	log.Error("request failed", zap.Error(err))
	resp.WriteError(w, http.StatusInternalServerError, "internal", "internal error")
}

// WriteBadRequest некорректное тело запроса
func WriteBadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
}
