package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/service"
)

// BuilderSessionRepositoryAdapter держит сессии мастера в TTL кэше.
// Каждое сохранение продлевает срок жизни сессии на ttl.
type BuilderSessionRepositoryAdapter struct {
	cache *service.CacheService
	ttl   time.Duration
}

func NewBuilderSessionRepositoryAdapter(cache *service.CacheService, ttl time.Duration) *BuilderSessionRepositoryAdapter {
	return &BuilderSessionRepositoryAdapter{cache: cache, ttl: ttl}
}

func (r *BuilderSessionRepositoryAdapter) Save(ctx context.Context, session *entity.BuilderSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.cache.Set(service.BuilderSessionCacheKey(session.ID.String()), session.Clone(), r.ttl)
	return nil
}

func (r *BuilderSessionRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuilderSession, error) {
	s, ok := r.lookup(id)
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *BuilderSessionRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.lookup(id); !ok {
		return apperror.ErrSessionNotFound
	}
	r.cache.Delete(service.BuilderSessionCacheKey(id.String()))
	return nil
}

func (r *BuilderSessionRepositoryAdapter) lookup(id uuid.UUID) (*entity.BuilderSession, bool) {
	raw, ok := r.cache.Get(service.BuilderSessionCacheKey(id.String()))
	if !ok {
		return nil, false
	}
	s, ok := raw.(*entity.BuilderSession)
	return s, ok
}

// HandoffStoreAdapter кладёт сгенерированные предложения в TTL кэш.
type HandoffStoreAdapter struct {
	cache *service.CacheService
}

func NewHandoffStoreAdapter(cache *service.CacheService) *HandoffStoreAdapter {
	return &HandoffStoreAdapter{cache: cache}
}

func (s *HandoffStoreAdapter) Put(ctx context.Context, generated *entity.GeneratedProposal, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cache.Set(service.HandoffCacheKey(generated.ID.String()), generated.Clone(), ttl)
	return nil
}

func (s *HandoffStoreAdapter) Get(ctx context.Context, id uuid.UUID) (*entity.GeneratedProposal, error) {
	raw, ok := s.cache.Get(service.HandoffCacheKey(id.String()))
	if !ok {
		return nil, apperror.ErrHandoffNotFound
	}
	generated, ok := raw.(*entity.GeneratedProposal)
	if !ok {
		return nil, apperror.ErrHandoffNotFound
	}
	return generated.Clone(), nil
}
