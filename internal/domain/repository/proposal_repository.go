package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	// Prepend добавляет предложения в начало списка (как дубликаты в исходном списке).
	Prepend(ctx context.Context, proposals []*entity.Proposal) error
	Update(ctx context.Context, proposal *entity.Proposal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Proposal, error)
	List(ctx context.Context) ([]*entity.Proposal, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
}

type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context) ([]entity.Service, error)
	Categories(ctx context.Context) ([]entity.ServiceCategory, error)
}

type BuilderSessionRepository interface {
	Save(ctx context.Context, session *entity.BuilderSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BuilderSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// HandoffStore передаёт результат конструктора в предпросмотр.
type HandoffStore interface {
	Put(ctx context.Context, generated *entity.GeneratedProposal, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*entity.GeneratedProposal, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	List(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}
