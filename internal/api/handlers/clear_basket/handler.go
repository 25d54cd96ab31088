package clear_basket

import (
	"net/http"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle DELETE /api/v1/basket
// Очистка перезаписывает и повреждённую корзину
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /basket - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Clear(r.Context(), userID)
	if err != nil {
		h.logger.Error("DELETE /basket - Failed to clear basket: request_id=%s, user_id=%d, error=%v",
			middleware.GetRequestID(r.Context()), userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /basket - Basket cleared: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBasket(result, 0))
}
