package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

type ClientRepositoryAdapter struct {
	mu      sync.RWMutex
	clients []entity.Client
}

func NewClientRepositoryAdapter(seed []entity.Client) *ClientRepositoryAdapter {
	return &ClientRepositoryAdapter{clients: append([]entity.Client(nil), seed...)}
}

func (r *ClientRepositoryAdapter) Create(ctx context.Context, client *entity.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = append(r.clients, *client)
	return nil
}

func (r *ClientRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, apperror.ErrClientNotFound
}

func (r *ClientRepositoryAdapter) List(ctx context.Context) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Client, 0, len(r.clients))
	for i := range r.clients {
		c := r.clients[i]
		result = append(result, &c)
	}
	return result, nil
}
