package stop_timer

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/service/timers"
)

const (
	msgInvalidTimerID = "некорректный ID таймера"
	msgTimerNotFound  = "таймер не найден"
	msgAlreadyStopped = "таймер уже остановлен"
)

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

// Handle PATCH /api/v1/timers/{timerId}/stop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timerID := vars["timerId"]
	if _, err := uuid.Parse(timerID); err != nil {
		h.logger.Warn("PATCH /timers/{id}/stop - Invalid timer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimerID)
		return
	}

	resp, err := h.service.Stop(r.Context(), timerID)
	if err != nil {
		switch {
		case errors.Is(err, timers.ErrTimerNotFound):
			h.logger.Warn("PATCH /timers/{id}/stop - Timer not found: timer_id=%s", timerID)
			handlers.RespondNotFound(w, msgTimerNotFound)

		case errors.Is(err, timers.ErrTimerAlreadyStopped):
			h.logger.Warn("PATCH /timers/{id}/stop - Timer already stopped: timer_id=%s", timerID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyStopped)

		default:
			h.logger.Error("PATCH /timers/{id}/stop - Failed to stop timer: timer_id=%s, error=%v", timerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /timers/{id}/stop - Timer stopped: timer_id=%s, elapsed_minutes=%d", timerID, resp.ElapsedMinutes)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
