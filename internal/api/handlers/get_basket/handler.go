package get_basket

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgCorruptBasket = "корзина повреждена, очистите её и выберите сессии заново"
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

// Handle GET /api/v1/basket
// Истёкшие сессии удаляются при чтении, их количество возвращается в removedCount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /basket - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Current(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, basket.ErrCorruptBasketData):
			h.logger.Warn("GET /basket - Corrupt basket: user_id=%d", userID)
			handlers.RespondConflict(w, msgCorruptBasket)

		default:
			h.logger.Error("GET /basket - Failed to get basket: request_id=%s, user_id=%d, error=%v",
				middleware.GetRequestID(r.Context()), userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /basket - Basket retrieved successfully: user_id=%d, sessions=%d, removed=%d",
		userID, len(result.Basket), result.RemovedCount)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBasket(result.Basket, result.RemovedCount))
}
