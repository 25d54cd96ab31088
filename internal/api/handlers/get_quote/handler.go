package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	getQuote "github.com/m04kA/SMC-BayBooking/internal/usecase/get_quote"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgCorruptBasket = "корзина повреждена, очистите её и выберите сессии заново"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/basket/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /basket/quote - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrCorruptBasket):
			h.logger.Warn("GET /basket/quote - Corrupt basket: user_id=%d", userID)
			handlers.RespondConflict(w, msgCorruptBasket)

		default:
			h.logger.Error("GET /basket/quote - Failed to price basket: request_id=%s, user_id=%d, error=%v",
				middleware.GetRequestID(r.Context()), userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /basket/quote - Quote calculated: user_id=%d, total=%s, degraded=%t",
		userID, result.Quote.Total.StringFixed(2), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
