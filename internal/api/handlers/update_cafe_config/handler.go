package update_cafe_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/api/middleware"
	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig"
	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig/models"
)

const (
	msgInvalidCafeID      = "некорректный ID кафе"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация кафе"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/cafes/{cafeId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /cafes/{id}/config - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /cafes/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cafes/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), cafeID, &req)
	if err != nil {
		if errors.Is(err, cafeconfig.ErrInvalidInput) {
			h.logger.Warn("PUT /cafes/{id}/config - Invalid config: cafe_id=%d, error=%v", cafeID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)
			return
		}
		h.logger.Error("PUT /cafes/{id}/config - Failed to update config: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /cafes/{id}/config - Config updated: cafe_id=%d, user_id=%d", cafeID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
