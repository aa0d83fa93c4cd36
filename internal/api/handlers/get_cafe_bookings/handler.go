package get_cafe_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/service/reservations"
	"github.com/playgrid/PGC-StationService/internal/service/reservations/models"
)

const (
	msgInvalidCafeID = "некорректный ID кафе"
	msgMissingDate   = "не указана дата"
	msgInvalidFilter = "некорректный фильтр бронирований"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/bookings?date=&stationType=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/bookings - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /cafes/{id}/bookings - Missing date: cafe_id=%d", cafeID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetCafeReservationsRequest{
		CafeID: cafeID,
		Date:   date,
	}
	if stationType := query.Get("stationType"); stationType != "" {
		req.StationType = &stationType
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	resp, err := h.service.GetCafeReservations(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /cafes/{id}/bookings - Invalid filter: cafe_id=%d, error=%v", cafeID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /cafes/{id}/bookings - Failed to list reservations: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cafes/{id}/bookings - Listed reservations: cafe_id=%d, date=%s, count=%d", cafeID, date, len(resp.Reservations))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
