package basket

import (
	"context"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

// Service операции с корзинами пользователей
type Service struct {
	factory *Factory
}

// NewService создает новый экземпляр сервиса корзин
func NewService(factory *Factory) *Service {
	return &Service{factory: factory}
}

// Current возвращает корзину пользователя без истёкших сессий
func (s *Service) Current(ctx context.Context, userID int64) (*Reconciliation, error) {
	return s.factory.ForUser(userID).Current(ctx)
}

// Add добавляет сессию в корзину пользователя
func (s *Service) Add(ctx context.Context, userID int64, session domain.Session) (domain.Basket, error) {
	return s.factory.ForUser(userID).Add(ctx, session)
}

// Remove удаляет сессию из корзины пользователя
func (s *Service) Remove(ctx context.Context, userID int64, sessionID int64) (domain.Basket, error) {
	return s.factory.ForUser(userID).Remove(ctx, sessionID)
}

// Clear очищает корзину пользователя
func (s *Service) Clear(ctx context.Context, userID int64) (domain.Basket, error) {
	return s.factory.ForUser(userID).Clear(ctx)
}
