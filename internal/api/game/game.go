package game

import (
	"net/http"
	"strconv"

	"lucky888_backend/internal/api"
	dto "lucky888_backend/internal/api/dto/game"
	"lucky888_backend/internal/converter"
	"lucky888_backend/internal/service"
	"lucky888_backend/pkg/req"
	"lucky888_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.GameService
	Log  *zap.Logger
}

type Handler struct {
	serv service.GameService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOddsResponse(h.serv.Odds()))
}

func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Settings()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.State(r.Context())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*view))
}

// PlaceWager {category, amount} или {category, all_in: true}
func (h *Handler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WagerRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	view, err := h.serv.PlaceWager(r.Context(), converter.ToWager(payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*view))
}

func (h *Handler) ClearWagers(w http.ResponseWriter, r *http.Request) {
	refunded, view, err := h.serv.ClearWagers(r.Context())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ClearResponse{
		Refunded: refunded,
		State:    converter.ToStateResponse(*view),
	})
}

func (h *Handler) SetTarget(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.TargetRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	view, err := h.serv.SetTargetNumber(r.Context(), payload.Target)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*view))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	response := converter.ToSpinResponse(*result, h.serv.Settings().SpinDuration)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

// History ?limit=n, по умолчанию и максимум - history_limit
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	items, err := h.serv.History(r.Context(), limit)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(items))
}
