package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// NotificationRepositoryAdapter хранит уведомления, новые идут первыми.
type NotificationRepositoryAdapter struct {
	mu            sync.RWMutex
	notifications []*entity.Notification
	limit         int
}

// NewNotificationRepositoryAdapter создаёт хранилище; limit ограничивает длину ленты (0 без ограничения).
func NewNotificationRepositoryAdapter(seed []*entity.Notification, limit int) *NotificationRepositoryAdapter {
	r := &NotificationRepositoryAdapter{limit: limit}
	for _, n := range seed {
		c := *n
		r.notifications = append(r.notifications, &c)
	}
	return r
}

func (r *NotificationRepositoryAdapter) Create(ctx context.Context, notification *entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *notification
	r.notifications = append([]*entity.Notification{&c}, r.notifications...)
	if r.limit > 0 && len(r.notifications) > r.limit {
		r.notifications = r.notifications[:r.limit]
	}
	return nil
}

func (r *NotificationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if n.ID == id {
			c := *n
			return &c, nil
		}
	}
	return nil, apperror.ErrNotificationNotFound
}

func (r *NotificationRepositoryAdapter) List(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		if unreadOnly && n.Read {
			continue
		}
		c := *n
		result = append(result, &c)
	}
	return result, nil
}

func (r *NotificationRepositoryAdapter) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return apperror.ErrNotificationNotFound
}

func (r *NotificationRepositoryAdapter) MarkAllAsRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		n.Read = true
	}
	return nil
}

func (r *NotificationRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return apperror.ErrNotificationNotFound
}

func (r *NotificationRepositoryAdapter) CountUnread(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
