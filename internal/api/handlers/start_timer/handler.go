package start_timer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/api/middleware"
	"github.com/playgrid/PGC-StationService/internal/service/timers"
	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

const (
	msgInvalidCafeID      = "некорректный ID кафе"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные таймера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCafeNotFound       = "кафе не найдено"
	msgMemberNotFound     = "участник не найден"
	msgMembershipInactive = "членство неактивно"
	msgUnitOutOfRange     = "номер станции вне диапазона"
	msgUnitOccupied       = "станция занята другим таймером"
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

// Handle POST /api/v1/cafes/{cafeId}/timers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /cafes/{id}/timers - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /cafes/{id}/timers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.StartTimerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cafes/{id}/timers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Кафе берется из пути, тело его не переопределяет
	req.CafeID = cafeID

	resp, err := h.service.Start(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timers.ErrCafeNotFound):
			h.logger.Warn("POST /cafes/{id}/timers - Cafe not found: cafe_id=%d", req.CafeID)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, timers.ErrMemberNotFound):
			h.logger.Warn("POST /cafes/{id}/timers - Member not found: member_id=%d", req.MemberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, timers.ErrMembershipInactive):
			h.logger.Warn("POST /cafes/{id}/timers - Membership inactive: member_id=%d", req.MemberID)
			handlers.RespondForbidden(w, msgMembershipInactive)

		case errors.Is(err, timers.ErrUnitOutOfRange):
			h.logger.Warn("POST /cafes/{id}/timers - Unit out of range: cafe_id=%d, unit=%d", req.CafeID, req.UnitNumber)
			handlers.RespondBadRequest(w, msgUnitOutOfRange)

		case errors.Is(err, timers.ErrUnitOccupied):
			h.logger.Warn("POST /cafes/{id}/timers - Unit occupied: cafe_id=%d, unit=%d", req.CafeID, req.UnitNumber)
			handlers.RespondError(w, http.StatusConflict, msgUnitOccupied)

		case errors.Is(err, timers.ErrInvalidInput):
			h.logger.Warn("POST /cafes/{id}/timers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cafes/{id}/timers - Failed to start timer: cafe_id=%d, error=%v", req.CafeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cafes/{id}/timers - Timer started: timer_id=%s, cafe_id=%d, operator_id=%d", resp.ID, resp.CafeID, operatorID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
