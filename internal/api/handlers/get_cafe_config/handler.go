package get_cafe_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/PGC-StationService/internal/api/handlers"
	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig"
)

const (
	msgInvalidCafeID  = "некорректный ID кафе"
	msgConfigNotFound = "конфигурация кафе не найдена"
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

// Handle GET /api/v1/cafes/{cafeId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cafes/{id}/config - Invalid cafe ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	resp, err := h.service.Get(r.Context(), cafeID)
	if err != nil {
		if errors.Is(err, cafeconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /cafes/{id}/config - Config not found: cafe_id=%d", cafeID)
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /cafes/{id}/config - Failed to fetch config: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cafes/{id}/config - Config served: cafe_id=%d", cafeID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
