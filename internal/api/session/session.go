package session

import (
	"net/http"

	"lucky888_backend/internal/api"
	"lucky888_backend/internal/converter"
	"lucky888_backend/internal/service"
	"lucky888_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SessionService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SessionService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Create открывает новую сессию и возвращает access_token
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Create(r.Context())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCreateSessionResponse(*data))
}
