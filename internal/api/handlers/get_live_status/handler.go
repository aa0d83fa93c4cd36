package get_live_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	getLiveStatus "github.com/playgrid/PGC-StationService/internal/usecase/get_live_status"
)

const (
	msgInvalidCafeID = "некорректный ID кафе"
	msgCafeNotFound  = "кафе не найдено"
)

type Handler struct {
	useCase LiveStatusUseCase
	logger  Logger
}

func NewHandler(useCase LiveStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/live-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/live-status - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), cafeID)
	if err != nil {
		if errors.Is(err, getLiveStatus.ErrCafeNotFound) {
			h.logger.Warn("GET /cafes/{id}/live-status - Cafe not found: cafe_id=%d", cafeID)
			handlers.RespondNotFound(w, msgCafeNotFound)
			return
		}
		h.logger.Error("GET /cafes/{id}/live-status - Failed to build snapshot: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cafes/{id}/live-status - Snapshot served: cafe_id=%d, station_groups=%d", cafeID, len(resp.Stations))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
