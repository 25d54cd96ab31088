package add_to_basket

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BayBooking/internal/service/basket"
	addToBasket "github.com/m04kA/SMC-BayBooking/internal/usecase/add_to_basket"
)

const (
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры сессии"
	msgSessionNotAvailable = "сессия больше недоступна"
	msgDuplicate           = "сессия уже в корзине"
	msgOverlapping         = "сессия пересекается с уже выбранной"
	msgPastSlot            = "сессия уже началась"
	msgCorruptBasket       = "корзина повреждена, очистите её и выберите сессии заново"
)

type Handler struct {
	useCase  AddToBasketUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase AddToBasketUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/basket/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /basket/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddToBasketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /basket/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /basket/sessions - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addToBasket.ErrInvalidInput), errors.Is(err, basket.ErrInvalidSession):
			h.logger.Warn("POST /basket/sessions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, addToBasket.ErrSessionNotAvailable):
			h.logger.Warn("POST /basket/sessions - Session not available: user_id=%d, session_id=%d", userID, req.SessionID)
			handlers.RespondConflict(w, msgSessionNotAvailable)

		case errors.Is(err, basket.ErrDuplicateSelection):
			h.logger.Warn("POST /basket/sessions - Duplicate: user_id=%d, session_id=%d", userID, req.SessionID)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, basket.ErrOverlappingSelection):
			h.logger.Warn("POST /basket/sessions - Overlap: user_id=%d, session_id=%d, error=%v", userID, req.SessionID, err)
			handlers.RespondConflict(w, msgOverlapping)

		case errors.Is(err, basket.ErrPastSlot):
			h.logger.Warn("POST /basket/sessions - Past slot: user_id=%d, session_id=%d", userID, req.SessionID)
			handlers.RespondUnprocessable(w, msgPastSlot)

		case errors.Is(err, basket.ErrCorruptBasketData):
			h.logger.Warn("POST /basket/sessions - Corrupt basket: user_id=%d", userID)
			handlers.RespondConflict(w, msgCorruptBasket)

		default:
			h.logger.Error("POST /basket/sessions - Failed to add session: request_id=%s, user_id=%d, session_id=%d, error=%v",
				middleware.GetRequestID(r.Context()), userID, req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /basket/sessions - Session added: user_id=%d, session_id=%d, sessions=%d",
		userID, result.Added.ID, len(result.Basket))
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromBasket(result.Basket, 0))
}
