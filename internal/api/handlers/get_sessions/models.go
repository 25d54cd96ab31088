package get_sessions

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	getSessions "github.com/m04kA/SMC-BayBooking/internal/usecase/get_sessions"
)

// SessionsResponse HTTP response model
type SessionsResponse struct {
	Date          string  `json:"date"`
	SessionLength int     `json:"length"`
	Groups        []Group `json:"groups"`
	RemovedCount  int     `json:"removedCount"`
}

// Group сессии одного временного диапазона
type Group struct {
	Key           string    `json:"key"`
	AvailableBays int       `json:"availableBays"`
	TotalBays     int       `json:"totalBays"`
	Full          bool      `json:"full"`
	Sessions      []Session `json:"sessions"`
}

// Session модель сессии
type Session struct {
	ID        int64     `json:"id"`
	BayID     int64     `json:"bayId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	SlotIDs   []int64   `json:"slotIds"`
	InBasket  bool      `json:"inBasket"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSessions.Response) *SessionsResponse {
	groups := make([]Group, len(resp.Groups))
	for i, g := range resp.Groups {
		sessions := make([]Session, len(g.Sessions))
		for j, s := range g.Sessions {
			sessions[j] = Session{
				ID:        s.ID,
				BayID:     s.BayID,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				SlotIDs:   s.SlotIDs,
				InBasket:  s.InBasket,
				Available: s.Available,
			}
		}
		groups[i] = Group{
			Key:           g.Key,
			AvailableBays: g.AvailableBays,
			TotalBays:     g.TotalBays,
			Full:          g.Full,
			Sessions:      sessions,
		}
	}

	return &SessionsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		SessionLength: resp.SessionLength,
		Groups:        groups,
		RemovedCount:  resp.RemovedCount,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая длина - domain.DefaultSessionLength, пустой или "any" бокс - все боксы
func ToUseCaseRequest(userID int64, dateStr, lengthStr, bayStr, keysStr string, loc *time.Location) (*getSessions.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	length := domain.DefaultSessionLength
	if lengthStr != "" {
		length, err = strconv.Atoi(lengthStr)
		if err != nil {
			return nil, fmt.Errorf("length: %w", err)
		}
	}

	bay := domain.AnyBay
	if bayStr != "" && bayStr != "any" {
		bayID, err := strconv.ParseInt(bayStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bayId: %w", err)
		}
		bay = domain.OnlyBay(bayID)
	}

	return &getSessions.Request{
		UserID:        userID,
		Date:          date,
		SessionLength: length,
		Bay:           bay,
		StartOnlyKeys: keysStr == "start",
	}, nil
}
