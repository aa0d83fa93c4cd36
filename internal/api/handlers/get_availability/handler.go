package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/domain"
	getAvailability "github.com/playgrid/PGC-StationService/internal/usecase/get_availability"
)

const (
	msgInvalidCafeID   = "некорректный ID кафе"
	msgInvalidQuery    = "некорректные параметры запроса"
	msgInvalidTime     = "некорректное время начала"
	msgCafeNotFound    = "кафе не найдено"
	msgStationNotOffer = "кафе не предлагает станции этого типа"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/availability?stationType=&date=&startTime=&durationMinutes=&quantity=&playerCount=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/availability - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	req, err := parseRequest(cafeID, r)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/availability - Invalid query: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCafeNotFound):
			h.logger.Warn("GET /cafes/{id}/availability - Cafe not found: cafe_id=%d", cafeID)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, getAvailability.ErrStationNotOffered):
			h.logger.Warn("GET /cafes/{id}/availability - Station type not offered: cafe_id=%d, station_type=%s", cafeID, req.StationType)
			handlers.RespondBadRequest(w, msgStationNotOffer)

		case errors.Is(err, getAvailability.ErrInvalidTime):
			h.logger.Warn("GET /cafes/{id}/availability - Invalid start time: cafe_id=%d, start_time=%s", cafeID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cafes/{id}/availability - Invalid input: cafe_id=%d, error=%v", cafeID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /cafes/{id}/availability - Failed to check availability: cafe_id=%d, error=%v", cafeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cafes/{id}/availability - Checked: cafe_id=%d, station_type=%s, available=%t, remaining=%d",
		cafeID, req.StationType, resp.Available, resp.Remaining)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

// parseRequest собирает usecase запрос из query параметров
func parseRequest(cafeID int64, r *http.Request) (*getAvailability.Request, error) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		return nil, err
	}

	// Количество станций и игроков по умолчанию 1
	quantity := 1
	if raw := query.Get("quantity"); raw != "" {
		if quantity, err = strconv.Atoi(raw); err != nil {
			return nil, err
		}
	}
	playerCount := 1
	if raw := query.Get("playerCount"); raw != "" {
		if playerCount, err = strconv.Atoi(raw); err != nil {
			return nil, err
		}
	}

	return &getAvailability.Request{
		CafeID:          cafeID,
		StationType:     query.Get("stationType"),
		Date:            date,
		StartTime:       query.Get("startTime"),
		DurationMinutes: duration,
		Quantity:        quantity,
		PlayerCount:     playerCount,
	}, nil
}
