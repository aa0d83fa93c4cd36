package create_booking

import (
	"errors"
	"net/http"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/api/middleware"
	createBooking "github.com/playgrid/PGC-StationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени начала, ожидается h:mm am/pm или HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgCafeNotFound        = "кафе не найдено"
	msgStationNotOffered   = "в этом кафе нет станций выбранного типа"
	msgOutsideWorkingHours = "выбранное время выходит за часы работы кафе"
	msgCapacityExceeded    = "недостаточно свободных станций на выбранное время"
	msgConcurrentConflict  = "бронирование конфликтует с параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var capErr *createBooking.CapacityError
		switch {
		case errors.As(err, &capErr):
			h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, cafe_id=%d, available=%d",
				userID, req.CafeID, capErr.Available)
			handlers.RespondConflict(w, CapacityConflictResponse{
				Error:         msgCapacityExceeded,
				Available:     capErr.Available,
				NextAvailable: capErr.NextAvailable,
			})

		case errors.Is(err, createBooking.ErrCafeNotFound):
			h.logger.Warn("POST /bookings - Cafe not found: cafe_id=%d", req.CafeID)
			handlers.RespondNotFound(w, msgCafeNotFound)

		case errors.Is(err, createBooking.ErrStationNotOffered):
			h.logger.Warn("POST /bookings - Station type not offered: cafe_id=%d, type=%s", req.CafeID, req.StationType)
			handlers.RespondBadRequest(w, msgStationNotOffered)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: cafe_id=%d, time=%s", req.CafeID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /bookings - Invalid start time: %q", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrConcurrentConflict):
			h.logger.Warn("POST /bookings - Concurrent conflict: user_id=%d, cafe_id=%d", userID, req.CafeID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, cafe_id=%d: %v", userID, req.CafeID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, cafe_id=%d, error=%v",
				userID, req.CafeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, cafe_id=%d",
		result.ID, userID, req.CafeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
