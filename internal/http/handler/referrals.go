package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"refstats/internal/core"
	"refstats/internal/http/handler/middleware"
	"refstats/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetData       = "GET /referrals/data"
	PostRefresh   = "POST /referrals/refresh"
	GetDuplicates = "GET /referrals/duplicates"
)

type ReferralHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	referrals        ReferralService
}

func NewReferralHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, referralService ReferralService) *ReferralHandler {
	return &ReferralHandler{
		logs:             logger,
		requestValidator: requestValidator,
		referrals:        referralService,
	}
}

func (h *ReferralHandler) HandleGetData(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFrom(r)

	req, err := h.requestValidator.DecodeAndValidateDataRequest(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Invalid request",
			Error:   fmt.Errorf("invalid query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate query parameters",
			"error", err,
			"handler", GetData,
			"request_id", requestId)
		return
	}

	h.logs.Infow("data request received",
		"mode", req.Mode,
		"search", req.Search,
		"sort", req.Sort,
		"direction", req.Direction,
		"handler", GetData,
		"request_id", requestId)

	resp := DataResponse{
		Success: true,
		Mode:    req.Mode,
		Cached:  true,
	}

	switch req.Mode {
	case payload.ModeDetailed:
		view, err := h.referrals.Detailed(r.Context(), req.ToQuery())
		if err != nil {
			h.respondLoadError(w, err, requestId)
			return
		}
		resp.Data = view.Transactions
		resp.RunStats = view.RunStats
	default:
		view, err := h.referrals.Aggregated(r.Context(), req.ToQuery())
		if err != nil {
			h.respondLoadError(w, err, requestId)
			return
		}
		resp.Data = view.Rows
		resp.RunStats = view.RunStats
	}

	if req.Duplicates {
		resp.Duplicates = h.referrals.Duplicates()
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ReferralHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFrom(r)

	err := h.referrals.StartRefresh(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrRefreshInProgress) {
			h.respond(w, Response{
				Message: "Refresh already running",
				Error:   err.Error(),
			}, http.StatusConflict,
				requestId)
			h.logs.Infow("refresh rejected, another run is in progress",
				"handler", PostRefresh,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not start refresh",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to start refresh",
			"error", err,
			"handler", PostRefresh,
			"request_id", requestId)
		return
	}

	h.logs.Infow("refresh started",
		"handler", PostRefresh,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Message: "Refresh started",
	}, http.StatusAccepted,
		requestId)
}

func (h *ReferralHandler) HandleGetDuplicates(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFrom(r)

	resp := map[string]any{
		"success":    true,
		"duplicates": h.referrals.Duplicates(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ReferralHandler) respondLoadError(w http.ResponseWriter, err error, requestId string) {
	if errors.Is(err, core.ErrNeedsRefresh) {
		h.respond(w, Response{
			Error:        "No cached data available. Please refresh to fetch new data.",
			NeedsRefresh: true,
		}, http.StatusNotFound,
			requestId)
		h.logs.Infow("no snapshot available",
			"handler", GetData,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Request failed",
		Error:   "Failed to load data",
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("failed to load snapshot",
		"error", err,
		"handler", GetData,
		"request_id", requestId)
}

func (h *ReferralHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestIDFrom(r *http.Request) string {
	if requestId, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return requestId
	}
	return ""
}
