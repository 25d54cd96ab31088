package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ProfileService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMembership получает членство пользователя
// Пользователь без членства (404) - гость: возвращается nil, nil
func (c *Client) GetMembership(ctx context.Context, userID int64) (*domain.MembershipContext, error) {
	url := fmt.Sprintf("%s/internal/users/%d/membership", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var membership Membership
	if err := json.NewDecoder(resp.Body).Decode(&membership); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return membership.ToDomain(), nil
}

// GetMembershipWithGracefulDegradation получает членство пользователя с graceful degradation
// При недоступности ProfileService возвращает ErrServiceDegraded, и цена считается как для гостя
func (c *Client) GetMembershipWithGracefulDegradation(ctx context.Context, userID int64) (*domain.MembershipContext, error) {
	c.log.Info("Fetching membership for user_id=%d", userID)

	membership, err := c.GetMembership(ctx, userID)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ProfileService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	if membership == nil {
		c.log.Info("No membership for user_id=%d, pricing as guest", userID)
		return nil, nil
	}

	c.log.Info("Successfully fetched membership for user_id=%d, tier=%s, status=%s, remaining_hours=%d",
		userID, membership.Tier, membership.Status, membership.RemainingHours)
	return membership, nil
}
