package get_active_timers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
)

const msgInvalidCafeID = "некорректный ID кафе"

type Handler struct {
	service TimerService
	logger  Logger
}

func NewHandler(service TimerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/timers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/timers - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	resp, err := h.service.ListActive(r.Context(), cafeID)
	if err != nil {
		h.logger.Error("GET /cafes/{id}/timers - Failed to list timers: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cafes/{id}/timers - Listed timers: cafe_id=%d, count=%d", cafeID, len(resp.Timers))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
