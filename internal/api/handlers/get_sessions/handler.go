package get_sessions

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	getSessions "github.com/m04kA/SMC-BayBooking/internal/usecase/get_sessions"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidParams = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, length=N, bayId=any|N"
	msgInvalidInput  = "некорректные параметры поиска сессий"
	msgPastDate      = "нельзя выбрать дату в прошлом"
	msgCorruptBasket = "корзина повреждена, очистите её и выберите сессии заново"
)

type Handler struct {
	useCase  GetSessionsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetSessionsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/sessions
// Query params: date (required, YYYY-MM-DD), length (1..max), bayId (any|N), keys (range|start)
// X-User-ID необязателен: с ним сессии отмечаются относительно корзины пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sessions - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := ToUseCaseRequest(userID, dateStr, query.Get("length"), query.Get("bayId"), query.Get("keys"), h.location)
	if err != nil {
		h.logger.Warn("GET /sessions - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSessions.ErrInvalidInput):
			h.logger.Warn("GET /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getSessions.ErrInvalidDate):
			h.logger.Warn("GET /sessions - Past date: date=%s", dateStr)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, getSessions.ErrCorruptBasket):
			h.logger.Warn("GET /sessions - Corrupt basket: user_id=%d", userID)
			handlers.RespondConflict(w, msgCorruptBasket)

		default:
			h.logger.Error("GET /sessions - Failed to get sessions: request_id=%s, date=%s, error=%v",
				middleware.GetRequestID(r.Context()), dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /sessions - Sessions retrieved successfully: date=%s, length=%d, groups=%d, user_id=%d",
		dateStr, result.SessionLength, len(result.Groups), userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
