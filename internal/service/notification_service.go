package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/logger"
)

// Publisher доставляет события подключённым клиентам (WebSocket хаб).
type Publisher interface {
	Broadcast(event string, data any) error
}

// NotificationService содержит бизнес-логику работы с уведомлениями.
type NotificationService struct {
	repo      repository.NotificationRepository
	publisher Publisher
	now       func() time.Time
}

// NewNotificationService создаёт новый сервис уведомлений. publisher может быть nil.
func NewNotificationService(repo repository.NotificationRepository, publisher Publisher) *NotificationService {
	return &NotificationService{repo: repo, publisher: publisher, now: time.Now}
}

// Notify сохраняет уведомление и рассылает его в реальном времени.
func (s *NotificationService) Notify(ctx context.Context, kind, title, message, priority, actionURL string) (*entity.Notification, error) {
	n := entity.NewNotification(kind, title, message, priority, actionURL, s.now())
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Broadcast("notification", n); err != nil {
			// уведомление остаётся в ленте
			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"notification_id": n.ID,
					"type":            kind,
				}).WithError(err).Warn("notification service: не удалось отправить уведомление")
			}
		}
	}

	return n, nil
}

// ListNotifications возвращает ленту уведомлений.
func (s *NotificationService) ListNotifications(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error) {
	return s.repo.List(ctx, unreadOnly)
}

// GetNotification возвращает уведомление по идентификатору.
func (s *NotificationService) GetNotification(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

// MarkAsRead отмечает уведомление как прочитанное.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead отмечает все уведомления как прочитанные.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

// DeleteNotification удаляет уведомление.
func (s *NotificationService) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CountUnread возвращает количество непрочитанных уведомлений.
func (s *NotificationService) CountUnread(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}
