package remove_from_basket

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgCorruptBasket    = "корзина повреждена, очистите её и выберите сессии заново"
)

type Handler struct {
	service BasketService
	logger  Logger
}

func NewHandler(service BasketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/basket/sessions/{sessionId}
// Удаление сессии, которой нет в корзине, не считается ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil || sessionID <= 0 {
		h.logger.Warn("DELETE /basket/sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /basket/sessions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Remove(r.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, basket.ErrCorruptBasketData):
			h.logger.Warn("DELETE /basket/sessions/{id} - Corrupt basket: user_id=%d", userID)
			handlers.RespondConflict(w, msgCorruptBasket)

		default:
			h.logger.Error("DELETE /basket/sessions/{id} - Failed to remove session: request_id=%s, user_id=%d, session_id=%d, error=%v",
				middleware.GetRequestID(r.Context()), userID, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /basket/sessions/{id} - Session removed: user_id=%d, session_id=%d, sessions=%d",
		userID, sessionID, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBasket(result, 0))
}
